package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/pkg/logger"
	"staff-roster.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Page is the envelope of every list response.
type Page struct {
	Count   int64                `json:"count"`
	Results interface{}          `json:"results"`
	Meta    utils.PaginationMeta `json:"meta"`
}

// Paginated sends a 200 list envelope.
func Paginated(c *gin.Context, results interface{}, total int64, params utils.PaginationParams) {
	c.JSON(http.StatusOK, Page{
		Count:   total,
		Results: results,
		Meta:    utils.CalculateMeta(total, params),
	})
}

// Error maps err onto an HTTP response. Validation reports are sent as the
// bare field map; everything else gets a code/message body.
func Error(c *gin.Context, err error) {
	if ve, ok := domainerrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ve.Body())
		return
	}

	var appErr *domainerrors.AppError
	switch {
	case errors.As(err, &appErr):
	case errors.Is(err, domainerrors.ErrNotFound):
		appErr = domainerrors.NotFound("Not found.")
	case errors.Is(err, domainerrors.ErrConflict):
		appErr = domainerrors.Conflict("The request conflicts with existing data.")
	case errors.Is(err, domainerrors.ErrBadRequest):
		appErr = domainerrors.BadRequest(err.Error())
	default:
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
