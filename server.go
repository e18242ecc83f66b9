package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chirp/api/handlers"
	"chirp/api/middleware"
	"chirp/api/routes"
	"chirp/config"
	"chirp/db"
	"chirp/services"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err := db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	conf := config.AppConfig
	window := time.Duration(conf.RateLimit.WindowSeconds) * time.Second

	// Лимитер: общий в Redis, если он настроен, иначе в памяти процесса
	var limiter services.Limiter
	if conf.Redis.Host != "" {
		if err := services.InitRedis(); err != nil {
			panic("Failed to connect to Redis: " + err.Error())
		}
		defer services.CloseRedis()
		limiter = services.NewRedisLimiter(services.RedisClient, conf.RateLimit.Permits, window)
	} else {
		log.Println("Redis is not configured, using in-process rate limiter")
		limiter = services.NewFixedWindowLimiter(conf.RateLimit.Permits, window)
	}

	identity := services.NewIdentityClient(conf.Identity.URL, conf.Identity.APIKey)
	feed := services.NewFeedService(services.NewPostStore(), identity, limiter)

	handlers.Init(feed)
	handlers.InitProfile(identity)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware("chirp"))

	routes.PublicApi(router)

	// Start the server
	addr := fmt.Sprintf("%s:%d", conf.Backend.Host, conf.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
