package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
	"github.com/codewithnuh/school-management-system-sub000/pkg/response"
)

// handleServiceError maps typed service errors onto the response envelope.
// Anything untyped is a 500 with no detail leaked to the client.
func handleServiceError(c *gin.Context, err error) {
	var (
		notFound   *apperrors.NotFoundError
		validation *apperrors.ValidationError
		conflict   *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, 14001, notFound.Error())
	case errors.As(err, &validation):
		response.BadRequest(c, 10001, validation.Error())
	case errors.As(err, &conflict):
		response.Conflict(c, 14009, conflict.Error())
	default:
		response.InternalError(c)
	}
}
