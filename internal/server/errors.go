package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/panorama/internal/apperror"
)

type errorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Error   string `json:"error,omitempty"`
}

var (
	errInvalidBody   = apperror.New(apperror.CategoryType, "Invalid data type - please check your input fields.")
	errUnauthorized  = apperror.New(apperror.CategoryUnauthorized, "Missing or invalid bearer token")
	errRateLimited   = apperror.New(apperror.CategoryRateLimited, "Too many login attempts - please try again later.")
	errRouteNotFound = apperror.NotFound("Route not found")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError renders a categorized error. The diagnostic is only exposed when
// the error wraps a cause, which is the case for store and internal failures.
func mapError(err error) (int, errorResponse) {
	appErr, ok := apperror.As(err)
	if !ok {
		payload := errorResponse{
			Message: "Unexpected server error.",
			Type:    string(apperror.CategoryInternal),
		}
		if err != nil {
			payload.Error = err.Error()
		}
		return http.StatusInternalServerError, payload
	}

	return statusForCategory(appErr.Category), errorResponse{
		Message: appErr.Message,
		Type:    string(appErr.Category),
		Error:   appErr.Diagnostic(),
	}
}

func statusForCategory(category apperror.Category) int {
	switch category {
	case apperror.CategoryValidation,
		apperror.CategoryReference,
		apperror.CategoryDuplicate,
		apperror.CategoryType,
		apperror.CategoryConflict:
		return http.StatusBadRequest
	case apperror.CategoryNotFound:
		return http.StatusNotFound
	case apperror.CategoryInvalidInput, apperror.CategoryInvalidCredential:
		// login failures have always answered 411 and clients depend on it
		return http.StatusLengthRequired
	case apperror.CategoryUnauthorized:
		return http.StatusUnauthorized
	case apperror.CategoryRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// classifyErrorForLog feeds the request logger's error_type and error_code.
func classifyErrorForLog(err error) (string, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return string(appErr.Category), http.StatusText(statusForCategory(appErr.Category))
	}
	return string(apperror.CategoryInternal), "unhandled"
}
