package handler

import (
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/logging"
	"gamestore/backend/internal/store"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route of the API onto a fresh gin engine.
func NewRouter(st store.Store, events *hub.Hub, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(logging.GinLogger(log), gin.Recovery(), cors.Default())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoints
	router.GET("/", Hello)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	games := NewGameHandler(st, events, log)
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", games.GetGames)
		gameRoutes.GET("/events", games.StreamEvents) // Must be before /:id
		gameRoutes.GET("/:id", games.GetGameByID)
		gameRoutes.POST("", games.CreateGame)
		gameRoutes.PUT("/:id", games.UpdateGame)
		gameRoutes.DELETE("/:id", games.DeleteGame)
	}

	genres := NewGenreHandler(st, log)
	router.GET("/genres", genres.GetGenres)

	return router
}

// Hello godoc
// @Summary  Greeting
// @Produce  plain
// @Success  200 {string} string "Hello World!"
// @Router   / [get]
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}
