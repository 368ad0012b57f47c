package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/interfaces/http/dto"
	"github.com/bizos/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*gin.Context)
		expected string
	}{
		{
			name: "from context",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-id")
			},
			expected: "ctx-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
			},
			expected: "header-id",
		},
		{
			name: "context wins over header",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-id")
				c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
			},
			expected: "ctx-id",
		},
		{
			name:     "empty when unset",
			setup:    func(c *gin.Context) {},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			tt.setup(c)
			assert.Equal(t, tt.expected, getRequestID(c))
		})
	}
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.Success(c, gin.H{"name": "test"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.SuccessWithMeta(c, []string{"a", "b"}, 42, 2, 20)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(42), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   string
	}{
		{
			name:         "domain not found",
			err:          shared.ErrNotFound,
			expectStatus: http.StatusNotFound,
			expectCode:   dto.ErrCodeNotFound,
		},
		{
			name:         "domain already exists",
			err:          shared.ErrAlreadyExists,
			expectStatus: http.StatusConflict,
			expectCode:   dto.ErrCodeAlreadyExists,
		},
		{
			name:         "domain validation code",
			err:          shared.NewDomainError("INVALID_EMAIL", "Email address is not valid"),
			expectStatus: http.StatusBadRequest,
			expectCode:   dto.ErrCodeValidation,
		},
		{
			name:         "domain invalid state",
			err:          shared.ErrInvalidState,
			expectStatus: http.StatusUnprocessableEntity,
			expectCode:   dto.ErrCodeInvalidState,
		},
		{
			name:         "flow empty output",
			err:          &aiflow.Error{Kind: aiflow.KindEmptyOutput, Flow: "forecast", Err: errors.New("no candidates")},
			expectStatus: http.StatusInternalServerError,
			expectCode:   dto.ErrCodeEmptyGeneration,
		},
		{
			name:         "flow provider error",
			err:          &aiflow.Error{Kind: aiflow.KindProviderError, Flow: "forecast", Err: errors.New("quota")},
			expectStatus: http.StatusInternalServerError,
			expectCode:   dto.ErrCodeUpstream,
		},
		{
			name:         "flow invalid input",
			err:          &aiflow.Error{Kind: aiflow.KindInvalidInput, Flow: "forecast", Err: errors.New("metric is required")},
			expectStatus: http.StatusBadRequest,
			expectCode:   dto.ErrCodeValidation,
		},
		{
			name:         "unknown error stays generic",
			err:          errors.New("pq: connection refused"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   dto.ErrCodeInternal,
		},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorHidesInternalDetails(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.HandleError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

func TestBindingErrorFieldDetails(t *testing.T) {
	type payload struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"omitempty,email"`
	}

	engine := gin.New()
	h := &BaseHandler{}
	engine.POST("/", func(c *gin.Context) {
		var req payload
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
		h.Success(c, req)
	})

	t.Run("missing and malformed fields produce details", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "is required", fields["name"])
		assert.Equal(t, "must be a valid email address", fields["email"])
	})

	t.Run("malformed JSON is not a validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})
}
