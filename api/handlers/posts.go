package handlers

import (
	"net/http"
	"strconv"

	"chirp/api/middleware"
	"chirp/models"
	"chirp/services"

	"github.com/gin-gonic/gin"
)

var feedService *services.FeedService

// Init подключает собранный в main сервис к обработчикам
func Init(feed *services.FeedService) {
	feedService = feed
}

// CreatePost создает новый пост от имени аутентифицированного автора
func CreatePost(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, ErrorCodeValidation, "Invalid request")
		return
	}

	// Пустой callerID уходит в сервис как есть: проверка аутентификации -
	// первый шаг конвейера, до нее квота лимитера не тратится
	callerID := c.GetString("user_id")

	post, err := feedService.SubmitPost(c.Request.Context(), callerID, req.Content)
	if err != nil {
		middleware.RecordPostOperation("create", "error")
		writeServiceError(c, err)
		return
	}

	middleware.RecordPostOperation("create", "ok")
	c.JSON(http.StatusCreated, post)
}

// GetFeed отдает ленту: до 100 последних постов с данными авторов
func GetFeed(c *gin.Context) {
	posts, err := feedService.GetFeed(c.Request.Context())
	if err != nil {
		middleware.RecordPostOperation("feed", "error")
		writeServiceError(c, err)
		return
	}

	middleware.RecordPostOperation("feed", "ok")
	c.JSON(http.StatusOK, models.FeedResponse{Posts: posts})
}

// GetPost отдает один пост с данными автора
func GetPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		JSONError(c, http.StatusBadRequest, ErrorCodeValidation, "Invalid post ID")
		return
	}

	post, err := feedService.GetPost(c.Request.Context(), postID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
