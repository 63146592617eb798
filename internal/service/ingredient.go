package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

var ErrNegativeQuantity = errors.New("quantity cannot be negative")

// IngredientService manages the user's pantry.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	if req.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: expiry,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// BulkCreate inserts a batch of pantry items in one transaction. Receipt
// scans and order fulfillment go through here.
func (s *IngredientService) BulkCreate(ctx context.Context, userID uuid.UUID, reqs []types.CreateIngredientRequest) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(reqs))
	for _, req := range reqs {
		if req.Quantity < 0 {
			return nil, fmt.Errorf("%s: %w", req.Name, ErrNegativeQuantity)
		}
		expiry, err := parseExpiry(req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", req.Name, err)
		}
		ingredients = append(ingredients, models.Ingredient{
			ID:         uuid.New(),
			UserID:     userID,
			Name:       req.Name,
			Quantity:   req.Quantity,
			Unit:       req.Unit,
			Category:   req.Category,
			ExpiryDate: expiry,
		})
	}
	if len(ingredients) == 0 {
		return ingredients, nil
	}
	if err := s.db.WithContext(ctx).Create(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		ingredient.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			ingredient.ExpiryDate = nil
		} else {
			expiry, err := parseExpiry(*req.ExpiryDate)
			if err != nil {
				return nil, err
			}
			ingredient.ExpiryDate = expiry
		}
	}

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpiringSoon lists pantry items whose expiry date falls within the next
// `days` days, soonest first. Items without an expiry date are excluded.
func (s *IngredientService) ExpiringSoon(ctx context.Context, userID uuid.UUID, days int) ([]models.Ingredient, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, days)

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", userID, cutoff).
		Order("expiry_date").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func parseExpiry(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Accept a bare date as well.
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid expiry date %q: %w", raw, err)
		}
	}
	return &t, nil
}
