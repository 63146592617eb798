package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/recipetext"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
)

type SuggestionHandler struct {
	suggestions *service.SuggestionService
}

func NewSuggestionHandler(suggestions *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// RegisterRoutes wires the suggestion endpoints. The generate route takes
// extra middleware so the caller can rate limit the LLM round trips.
func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	suggestions := router.Group("/suggestions")
	{
		suggestions.GET("", h.Latest)
		handlers := append(generateMiddleware, h.Generate)
		suggestions.POST("/generate", handlers...)
	}
}

func (h *SuggestionHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestions.Generate(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, recipetext.ErrEmptyInventory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "add some ingredients to your fridge first"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *SuggestionHandler) Latest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestions.Latest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSuggestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
