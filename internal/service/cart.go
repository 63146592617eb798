package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/recipetext"
)

// ErrNothingAdded reports a fulfillment run where every ingredient failed
// despite a non-empty request.
var ErrNothingAdded = errors.New("no ingredients could be added to the cart")

// FulfillmentFailure records why a single ingredient could not be fulfilled.
type FulfillmentFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// FulfillmentResult aggregates the per-ingredient outcomes of one run.
type FulfillmentResult struct {
	Attempted int                  `json:"attempted"`
	Added     int                  `json:"added"`
	Failures  []FulfillmentFailure `json:"failures,omitempty"`
}

// CartService handles cart lines and the fulfillment of a recipe's missing
// ingredients into cart lines.
type CartService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCartService(db *gorm.DB, logger *zap.Logger) *CartService {
	return &CartService{db: db, logger: logger}
}

func (s *CartService) List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Add puts quantity units of a product into the user's cart, incrementing an
// existing line instead of inserting a duplicate.
func (s *CartService) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	item.Product = &product
	return &item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{}).Error
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// FulfillMissing resolves each missing ingredient to a catalog product
// (creating one when no name matches) and adds one unit of it to the cart.
// Ingredients are processed sequentially and independently: one failure does
// not abort the rest. When every ingredient of a non-empty request fails the
// result is returned together with ErrNothingAdded.
func (s *CartService) FulfillMissing(ctx context.Context, userID uuid.UUID, mentions []recipetext.IngredientMention) (*FulfillmentResult, error) {
	result := &FulfillmentResult{Attempted: len(mentions)}
	if len(mentions) == 0 {
		return result, nil
	}

	for _, mention := range mentions {
		name := strings.TrimSpace(mention.Name)
		if name == "" {
			result.Failures = append(result.Failures, FulfillmentFailure{Name: mention.Name, Reason: "empty ingredient name"})
			continue
		}

		product, err := s.resolveProduct(ctx, name, mention.Unit, userID)
		if err != nil {
			s.logger.Warn("failed to resolve product for ingredient",
				zap.String("ingredient", name), zap.Error(err))
			result.Failures = append(result.Failures, FulfillmentFailure{Name: name, Reason: err.Error()})
			continue
		}

		if _, err := s.Add(ctx, userID, product.ID, 1); err != nil {
			s.logger.Warn("failed to add resolved product to cart",
				zap.String("ingredient", name), zap.Error(err))
			result.Failures = append(result.Failures, FulfillmentFailure{Name: name, Reason: err.Error()})
			continue
		}

		result.Added++
	}

	if result.Added == 0 {
		return result, ErrNothingAdded
	}
	return result, nil
}

// resolveProduct finds a catalog product whose name contains the ingredient
// name (case-insensitive, first match wins) or creates one owned by the
// user. Creation upserts on the normalized name so concurrent runs for the
// same ingredient converge on a single row.
func (s *CartService) resolveProduct(ctx context.Context, name, unit string, ownerID uuid.UUID) (*models.Product, error) {
	var product models.Product
	like := "%" + strings.ToLower(name) + "%"
	err := s.db.WithContext(ctx).Where("LOWER(name) LIKE ?", like).First(&product).Error
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if unit == "" {
		unit = "pcs"
	}
	product = models.Product{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: NormalizeProductName(name),
		Unit:           unit,
		OwnerID:        &ownerID,
		Embedding:      GenerateEmbedding(name),
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "normalized_name"}}, DoNothing: true}).
		Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Re-read by normalized name so a concurrent creator's row wins.
	if err := s.db.WithContext(ctx).Where("normalized_name = ?", product.NormalizedName).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// NormalizeProductName lower-cases and collapses whitespace for the unique
// catalog lookup key.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
