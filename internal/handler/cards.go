// internal/handler/cards.go
package handler

import (
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/domain"
	"cashback-cards/internal/middleware"
	"cashback-cards/internal/ranking"
	"cashback-cards/internal/storage"
	"cashback-cards/internal/validator"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type CardStore interface {
	storage.UserStorage
	storage.CardStorage
}

type CardsHandler struct {
	store  CardStore
	policy conversation.CategoryPolicy
}

func NewCardsHandler(store CardStore, policy conversation.CategoryPolicy) *CardsHandler {
	return &CardsHandler{store: store, policy: policy}
}

// ListCards godoc
// @Summary List cards of the current user
// @Success 200 {array} domain.Card
// @Failure 500 {object} map[string]string
// @Router /api/v1/cards [get]
func (h *CardsHandler) ListCards(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return
	}

	cards, err := h.store.GetCardsForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("GetCardsForUser failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCard godoc
// @Summary Save a card with its cashback categories
// @Accept json
// @Produce json
// @Param request body CreateCardRequest true "Card data"
// @Success 201 {object} CreateCardResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/cards [post]
func (h *CardsHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return
	}

	rates := req.rates()
	var unknown []string
	for _, r := range rates {
		if err := validator.Validate.Var(r.Category, "category"); err != nil {
			unknown = append(unknown, r.Category)
		}
	}
	if len(unknown) > 0 && h.policy == conversation.PolicyStrict {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown categories: " + strings.Join(unknown, ", ")})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.EnsureUser(ctx, userID, ""); err != nil {
		slog.Error("EnsureUser failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save card"})
		return
	}

	cardName := strings.TrimSpace(req.CardName)
	ids, err := h.store.CreateCards(ctx, userID, cardName, rates)
	if err != nil {
		slog.Error("CreateCards failed", "error", err, "user_id", userID, "card", cardName)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save card"})
		return
	}

	slog.Info("Card saved via API", "user_id", userID, "card", cardName, "categories", len(rates))
	c.JSON(http.StatusCreated, CreateCardResponse{IDs: ids, UnknownCategories: unknown})
}

// BestCard godoc
// @Summary Best card of the current user for a category
// @Param category query string true "Category code"
// @Success 200 {object} BestCardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/best [get]
func (h *CardsHandler) BestCard(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query param required"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return
	}

	cards, err := h.store.GetCardsForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("GetCardsForUser failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	best, found := ranking.BestCardForCategory(cards, category)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no cards for category"})
		return
	}
	c.JSON(http.StatusOK, BestCardResponse{Card: best, Rate: ranking.FormatRate(best.Cashback)})
}

// === DTO ===

type CreateCardRequest struct {
	CardName   string `json:"card_name" validate:"required,notblank"`
	Categories []struct {
		Category string  `json:"category" validate:"required,notblank"`
		Cashback float64 `json:"cashback" validate:"gte=0,lte=1"`
	} `json:"categories" validate:"required,min=1,dive"`
}

// rates схлопывает повторы категорий: побеждает последнее значение,
// порядок — по первому появлению.
func (r CreateCardRequest) rates() []domain.CategoryRate {
	index := make(map[string]int, len(r.Categories))
	rates := make([]domain.CategoryRate, 0, len(r.Categories))
	for _, cat := range r.Categories {
		if i, ok := index[cat.Category]; ok {
			rates[i].Cashback = cat.Cashback
			continue
		}
		index[cat.Category] = len(rates)
		rates = append(rates, domain.CategoryRate{Category: cat.Category, Cashback: cat.Cashback})
	}
	return rates
}

type CreateCardResponse struct {
	IDs               []int64  `json:"ids"`
	UnknownCategories []string `json:"unknown_categories,omitempty"`
}

type BestCardResponse struct {
	Card domain.Card `json:"card"`
	Rate string      `json:"rate"`
}
