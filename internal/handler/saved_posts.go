package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

func (h *Handler) savedPostsSave(c *gin.Context) {
	principal := h.getPrincipal(c)

	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.SavedPost.Save(c.Request.Context(), postID, principal.ID); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "Post saved successfully"))
}

func (h *Handler) savedPostsUnsave(c *gin.Context) {
	principal := h.getPrincipal(c)

	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.SavedPost.Unsave(c.Request.Context(), postID, principal.ID); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "Post unsaved successfully"))
}

func (h *Handler) savedPostsList(c *gin.Context) {
	principal := h.getPrincipal(c)

	posts, err := h.services.SavedPost.FindUserSavedPosts(c.Request.Context(), principal.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
