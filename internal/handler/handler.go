package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/labhacknexus/content-gateway/internal/model"
	"github.com/labhacknexus/content-gateway/internal/service"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	posts := r.Group("/posts")
	{
		posts.GET("", h.postsList)
		posts.POST("", h.authMiddleware, h.postsCreate)

		post := posts.Group("/:postID")
		{
			post.GET("", h.postsGetByID)
			post.PUT("", h.authMiddleware, h.postsUpdate)
			post.DELETE("", h.authMiddleware, h.postsDelete)

			post.GET("/comments", h.commentsGet)
			post.POST("/comments", h.authMiddleware, h.commentsCreate)

			post.POST("/save", h.authMiddleware, h.savedPostsSave)
			post.DELETE("/unsave", h.authMiddleware, h.savedPostsUnsave)
		}
	}

	r.GET("/saved-posts", h.authMiddleware, h.savedPostsList)

	categories := r.Group("/categories")
	{
		categories.GET("", h.categoriesList)
		categories.POST("", h.authMiddleware, h.categoriesCreate)
	}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/:userID", h.profilesGetByID)
		profiles.PUT("/:userID", h.authMiddleware, h.profilesUpdate)
	}

	websiteContent := r.Group("/website-content")
	{
		websiteContent.GET("/:pageName", h.websiteContentGetByPage)
		websiteContent.POST("", h.authMiddleware, h.websiteContentCreate)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.authRegister)
		auth.POST("/login", h.authLogin)
	}

	return r
}

func (h *Handler) getPrincipal(c *gin.Context) *model.Profile {
	value, _ := c.Get("principal")

	principal, ok := value.(model.Profile)
	if !ok {
		return nil
	}

	return &principal
}
