// internal/handler/router.go
package handler

import (
	"cashback-cards/internal/auth"
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Store  CardStore
	Tokens *auth.TokenService
	Policy conversation.CategoryPolicy
	// Bot может быть nil: тогда /telegram не регистрируется.
	Bot UpdateHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Bot != nil {
		router.POST("/telegram", TelegramWebhook(deps.Bot))
	}

	// токены выдаёт бот командой /token: user_id подтверждает Telegram
	cards := NewCardsHandler(deps.Store, deps.Policy)
	v1 := router.Group("/api/v1")
	v1.Use(middleware.NewAuthMiddleware(deps.Tokens).RequireAuth())
	{
		v1.GET("/cards", cards.ListCards)
		v1.POST("/cards", cards.CreateCard)
		v1.GET("/best", cards.BestCard)
	}
	return router
}
