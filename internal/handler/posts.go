package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/dto"
	"github.com/labhacknexus/content-gateway/internal/repository/postgrest"
)

func (h *Handler) postsList(c *gin.Context) {
	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitAndOffsetMustBeInt.Error()))
		return
	}

	filter := postgrest.PostFilter{PublishedOnly: true}
	if v := c.Query("published_only"); v != "" {
		// An unparseable value keeps the default of true.
		if publishedOnly, err := strconv.ParseBool(v); err == nil {
			filter.PublishedOnly = publishedOnly
		}
	}
	if v := c.Query("category"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCategoryID.Error()))
			return
		}
		filter.CategoryID = &categoryID
	}
	if v := c.Query("author_id"); v != "" {
		authorID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
			return
		}
		filter.AuthorID = &authorID
	}

	posts, err := h.services.Post.Find(c.Request.Context(), filter, limit, offset)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	principal := h.getPrincipal(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), principal.ID, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postsUpdate(c *gin.Context) {
	principal := h.getPrincipal(c)

	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), principal.ID, postID, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	principal := h.getPrincipal(c)

	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), principal.ID, postID); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "Post deleted successfully"))
}
