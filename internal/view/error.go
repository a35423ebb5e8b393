package view

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/skillswap/skillswap-backend/internal/apperror"
)

// RespondError maps a domain error to its HTTP status and writes the error
// envelope. Unknown errors become an opaque 500.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrSelfTarget), errors.Is(err, apperror.ErrInvalidState):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
	default:
		message = "internal server error"
	}

	c.JSON(status, ErrorResponse{Error: message})
}
