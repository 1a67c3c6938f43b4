package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

func (h *Handler) websiteContentGetByPage(c *gin.Context) {
	pageName := strings.TrimSpace(c.Param("pageName"))

	content, err := h.services.WebsiteContent.FindByPage(c.Request.Context(), pageName)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *content)
}

func (h *Handler) websiteContentCreate(c *gin.Context) {
	principal := h.getPrincipal(c)

	var input dto.CreateWebsiteContentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdContent, err := h.services.WebsiteContent.Create(c.Request.Context(), principal.ID, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdContent)
}
