package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/recipetext"
)

// ErrNoSuggestions is returned when no cached generation exists for the user.
var ErrNoSuggestions = errors.New("no suggestions generated yet")

const suggestionTTL = 24 * time.Hour

// SuggestionGateway is the LLM boundary the suggestion pipeline depends on.
type SuggestionGateway interface {
	GenerateSuggestions(ctx context.Context, prompt string) (string, error)
}

// RecipeSuggestion is a parsed recipe annotated with the independently
// computed availability percentage against the pantry at generation time.
// The classification goes stale if the pantry changes afterwards; it is only
// refreshed by generating again.
type RecipeSuggestion struct {
	recipetext.ParsedRecipe
	Availability int `json:"availability"`
}

// SuggestionService runs the pipeline: pantry -> prompt -> gateway -> parse
// -> availability annotation, and keeps the last result per user in Redis.
type SuggestionService struct {
	db      *gorm.DB
	gateway SuggestionGateway
	redis   *redis.Client
	logger  *zap.Logger
}

func NewSuggestionService(db *gorm.DB, gateway SuggestionGateway, redisClient *redis.Client, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		db:      db,
		gateway: gateway,
		redis:   redisClient,
		logger:  logger,
	}
}

// Generate produces a fresh set of suggestions for the user's current pantry.
// Gateway failures surface to the caller; a response the parser cannot make
// sense of yields an empty list, not an error.
func (s *SuggestionService) Generate(ctx context.Context, userID uuid.UUID) ([]RecipeSuggestion, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	items := make([]recipetext.PantryItem, 0, len(ingredients))
	pantry := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, recipetext.PantryItem{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
		pantry = append(pantry, ing.Name)
	}

	prompt, err := recipetext.BuildPrompt(items)
	if err != nil {
		return nil, err
	}

	raw, err := s.gateway.GenerateSuggestions(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("recipe generation failed: %w", err)
	}

	recipes := recipetext.Parse(raw)
	suggestions := make([]RecipeSuggestion, 0, len(recipes))
	for _, recipe := range recipes {
		suggestions = append(suggestions, RecipeSuggestion{
			ParsedRecipe: recipe,
			Availability: recipetext.AvailabilityMatch(recipe, pantry),
		})
	}

	s.logger.Info("generated recipe suggestions",
		zap.String("user_id", userID.String()),
		zap.Int("pantry_size", len(pantry)),
		zap.Int("recipes", len(suggestions)))

	if err := s.cache(ctx, userID, suggestions); err != nil {
		// The result is still good; only the "latest" view suffers.
		s.logger.Warn("failed to cache suggestions", zap.Error(err))
	}

	return suggestions, nil
}

// Latest returns the most recently generated suggestions for the user.
func (s *SuggestionService) Latest(ctx context.Context, userID uuid.UUID) ([]RecipeSuggestion, error) {
	data, err := s.redis.Get(ctx, suggestionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSuggestions
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	var suggestions []RecipeSuggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}
	return suggestions, nil
}

func (s *SuggestionService) cache(ctx context.Context, userID uuid.UUID, suggestions []RecipeSuggestion) error {
	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, suggestionKey(userID), data, suggestionTTL).Err()
}

func suggestionKey(userID uuid.UUID) string {
	return fmt.Sprintf("suggestions:latest:%s", userID)
}
