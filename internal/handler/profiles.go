package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

func (h *Handler) profilesGetByID(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	profile, err := h.services.Profile.FindByID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *profile)
}

func (h *Handler) profilesUpdate(c *gin.Context) {
	principal := h.getPrincipal(c)

	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedProfile, err := h.services.Profile.Update(c.Request.Context(), principal.ID, userID, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedProfile)
}
