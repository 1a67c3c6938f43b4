package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

// authMiddleware turns the Authorization header into an authenticated
// principal. The header is "<scheme> <token>"; only the token segment is
// used, verification of it is delegated to the identity provider.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")

	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	principal, err := h.services.Auth.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		errorResponse(c, err)
		c.Abort()
		return
	}

	c.Set("principal", *principal)

	c.Next()
}
