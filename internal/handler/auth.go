package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

func (h *Handler) authRegister(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	result, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *result)
}

// authLogin accepts credentials in the JSON body, falling back to query
// parameters for callers of the older form.
func (h *Handler) authLogin(c *gin.Context) {
	var input dto.LoginRequest
	_ = c.ShouldBindJSON(&input)

	if input.Email == "" {
		input.Email = c.Query("email")
	}
	if input.Password == "" {
		input.Password = c.Query("password")
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errEmailAndPasswordRequired.Error()))
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *result)
}
