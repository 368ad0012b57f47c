package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/infrastructure/auth"
	"github.com/bizos/backend/internal/interfaces/http/dto"
)

// Auth context keys
const (
	OwnerIDKey    = "owner_id"
	UserEmailKey  = "user_email"
	APIKeyHeader  = "X-API-Key"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds authentication middleware configuration
type AuthConfig struct {
	// APIKeys authenticates X-API-Key credentials against stored key hashes
	APIKeys *auth.APIKeyAuthenticator
	// JWT validates bearer tokens issued by the login endpoint
	JWT *auth.JWTService
	// Logger for auth failures; nil disables logging
	Logger *zap.Logger
}

// Auth returns a middleware that authenticates every request either by API
// key or by bearer token. The resolved user's ID is stored in the context as
// the owner of all data the request touches.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		if rawKey := c.GetHeader(APIKeyHeader); rawKey != "" {
			user, err := cfg.APIKeys.Authenticate(c.Request.Context(), rawKey)
			if err != nil {
				logger.Debug("api key rejected", zap.String("path", c.Request.URL.Path))
				unauthorized(c)
				return
			}
			c.Set(OwnerIDKey, user.ID)
			c.Set(UserEmailKey, user.Email)
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			unauthorized(c)
			return
		}
		token := strings.TrimPrefix(authHeader, BearerPrefix)
		if token == "" {
			unauthorized(c)
			return
		}

		userID, claims, err := cfg.JWT.ValidateToken(token)
		if err != nil {
			logger.Debug("bearer token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			unauthorized(c)
			return
		}
		c.Set(OwnerIDKey, userID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	requestID := c.GetString(RequestIDKey)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Missing or invalid credentials", requestID))
}

// GetOwnerID returns the authenticated user's ID from the context
func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(OwnerIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
