package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/dto"
)

func (h *Handler) categoriesList(c *gin.Context) {
	limit, err0 := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, err1 := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitAndOffsetMustBeInt.Error()))
		return
	}

	categories, err := h.services.Category.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) categoriesCreate(c *gin.Context) {
	principal := h.getPrincipal(c)

	var input dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdCategory, err := h.services.Category.Create(c.Request.Context(), principal.ID, input)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdCategory)
}
