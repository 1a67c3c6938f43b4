package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/service"
)

var (
	errNotAuthorized            = errors.New("user is not authorized")
	errInvalidPostID            = errors.New("invalid post ID")
	errInvalidUserID            = errors.New("invalid user ID")
	errInvalidCategoryID        = errors.New("invalid category ID")
	errLimitAndOffsetMustBeInt  = errors.New("limit and offset must be int")
	errEmailAndPasswordRequired = errors.New("email and password are required")
)

// errorResponse maps a service error kind to its HTTP status. Anything
// without a known kind is a 500 with a generic message.
func errorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		err = service.ErrInternal
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
