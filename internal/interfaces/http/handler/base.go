// Package handler implements the HTTP API endpoints.
package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/logger"
	"github.com/bizos/backend/internal/interfaces/http/dto"
	"github.com/bizos/backend/internal/interfaces/http/middleware"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireFieldName)
	}
}

// wireFieldName reports the name a struct field has on the wire, so
// validation details reference the json/form key the caller sent rather
// than the Go field name.
func wireFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// getOwnerID extracts the authenticated user's ID set by the auth middleware
func getOwnerID(c *gin.Context) (uuid.UUID, error) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return uuid.Nil, errors.New("owner ID not found in context")
	}
	return ownerID, nil
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// ValidationError sends a 400 validation error response with field details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// BindingError converts a gin binding failure into a validation response
// with one detail per invalid field
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]dto.ValidationDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		h.ValidationError(c, details)
		return
	}
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body could not be parsed")
}

// validationMessage renders a short human message for one field error
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must use the " + fe.Param() + " format"
	default:
		return "is invalid"
	}
}

// HandleError converts service-layer errors to HTTP responses. Domain errors
// map through the error code table; flow errors map by kind; everything else
// is an internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := getRequestID(c)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	var flowErr *aiflow.Error
	if errors.As(err, &flowErr) {
		switch flowErr.Kind {
		case aiflow.KindInvalidInput:
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeValidation, flowErr.Err.Error(), requestID))
		case aiflow.KindEmptyOutput:
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeEmptyGeneration, "The model produced no output; try again", requestID))
		default:
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUpstream, "The generation provider failed", requestID))
		}
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}

// HandleErrorTagged is HandleError plus a server-side log line carrying an
// uppercase route tag, e.g. "[EXPENSE_CREATE]". Domain errors that map to
// 4xx are the caller's fault and are not logged.
func (h *BaseHandler) HandleErrorTagged(c *gin.Context, tag string, err error) {
	if err == nil {
		return
	}

	loggable := true
	var domainErr *shared.DomainError
	var flowErr *aiflow.Error
	switch {
	case errors.As(err, &domainErr):
		code := dto.NormalizeErrorCode(domainErr.Code)
		loggable = dto.GetHTTPStatus(code) >= http.StatusInternalServerError
	case errors.As(err, &flowErr):
		loggable = flowErr.Kind != aiflow.KindInvalidInput
	}
	if loggable {
		logger.GetGinLogger(c).Error("["+tag+"] request failed", zap.Error(err))
	}

	h.HandleError(c, err)
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
