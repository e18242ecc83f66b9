package routes

import (
	"chirp/api/handlers"
	"chirp/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine) *gin.RouterGroup {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	publicEndpoints := router.Group("/api/v1/")
	publicEndpoints.Use(middleware.OptionalAuthMiddleware())
	{
		publicEndpoints.POST("posts/create", handlers.CreatePost)
		publicEndpoints.GET("posts/:post_id", handlers.GetPost)
		publicEndpoints.GET("feed", handlers.GetFeed)

		// Профили
		publicEndpoints.GET("profile/:username", handlers.GetUserByUsername)
		publicEndpoints.GET("profile/:username/posts", handlers.GetUserPosts)
	}
	return publicEndpoints
}
