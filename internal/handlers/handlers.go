package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/rwidjojo/freelancer-directory-api/internal/errors"
	"github.com/rwidjojo/freelancer-directory-api/internal/services"
)

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service failures onto transport responses:
// not-found to 404, duplicates to 409, payload-shape failures to 400 and
// everything else to an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var duplicate *services.DuplicateError

	switch {
	case errors.As(err, &notFound):
		apierrors.NotFound(c, notFound.Error())
	case errors.As(err, &duplicate):
		apierrors.Conflict(c, duplicate.Error())
	case services.IsValidation(err):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
