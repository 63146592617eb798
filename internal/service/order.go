package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderService turns carts into orders and restocks the pantry on placement.
type OrderService struct {
	db            *gorm.DB
	notifications *NotificationService
	logger        *zap.Logger
}

func NewOrderService(db *gorm.DB, notifications *NotificationService, logger *zap.Logger) *OrderService {
	return &OrderService{db: db, notifications: notifications, logger: logger}
}

// Place creates an order from the user's cart, clears the cart and adds the
// ordered products to the pantry. Everything except the notification runs in
// one transaction.
func (s *OrderService) Place(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: "placed",
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.Product == nil {
				return fmt.Errorf("cart item %s has no product", item.ID)
			}
			order.Items = append(order.Items, models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				Unit:      item.Product.Unit,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
			order.Total += item.Product.Price * float64(item.Quantity)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Restock the pantry with what was just ordered.
		for _, item := range items {
			ingredient := models.Ingredient{
				ID:       uuid.New(),
				UserID:   userID,
				Name:     item.Product.Name,
				Quantity: float64(item.Quantity),
				Unit:     item.Product.Unit,
				Category: item.Product.Category,
			}
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		message := fmt.Sprintf("Order placed with %d item(s), total %.2f", len(order.Items), order.Total)
		if _, err := s.notifications.Create(ctx, userID, "order", message); err != nil {
			s.logger.Warn("failed to create order notification", zap.Error(err))
		}
	}

	s.logger.Info("order placed",
		zap.String("user_id", userID.String()),
		zap.String("order_id", order.ID.String()),
		zap.Int("items", len(order.Items)))

	return &order, nil
}

func (s *OrderService) List(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
