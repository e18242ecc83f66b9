package handlers

import (
	"net/http"

	"chirp/models"
	"chirp/services"

	"github.com/gin-gonic/gin"
)

var userDirectory services.UserDirectory

// InitProfile подключает identity-провайдера к обработчикам профиля
func InitProfile(users services.UserDirectory) {
	userDirectory = users
}

// GetUserByUsername ищет пользователя по точному username
func GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	user, err := userDirectory.ResolveByUsername(c.Request.Context(), username)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserPosts отдает последние посты автора, найденного по username
func GetUserPosts(c *gin.Context) {
	username := c.Param("username")

	posts, err := feedService.GetAuthorFeed(c.Request.Context(), username)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FeedResponse{Posts: posts})
}
