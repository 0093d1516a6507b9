package main

import (
	"log"
	"net/http"

	"matchday/frontend/internal/config"
	"matchday/frontend/internal/gameapi"
	"matchday/frontend/internal/handler"
	"matchday/frontend/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	config.LoadConfig()
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	api := gameapi.NewClient(config.AppConfig.APIBaseURL, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(logger))

	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		Secure:   config.AppConfig.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("matchday", store))
	router.Use(handler.SessionContext())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	router.SetHTMLTemplate(web.Templates())

	handler.New(api, logger).Register(router)

	logger.Info("server starting", zap.String("addr", config.AppConfig.ListenAddr))
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
