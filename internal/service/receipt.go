package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/config"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

// ItemExtractor turns a base64 receipt image into grocery line items.
type ItemExtractor interface {
	ExtractItems(ctx context.Context, imageBase64 string) ([]ReceiptItem, error)
}

// ScanResult is the outcome of one receipt scan.
type ScanResult struct {
	ImageKey    string              `json:"image_key"`
	Items       []ReceiptItem       `json:"items"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// ReceiptService archives receipt images to S3, extracts their line items
// and stocks the pantry with the result.
type ReceiptService struct {
	s3Config    *config.S3Config
	extractor   ItemExtractor
	ingredients *IngredientService
	logger      *zap.Logger
}

func NewReceiptService(s3Config *config.S3Config, extractor ItemExtractor, ingredients *IngredientService, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		s3Config:    s3Config,
		extractor:   extractor,
		ingredients: ingredients,
		logger:      logger,
	}
}

// Scan stores the receipt image, runs extraction and creates one pantry item
// per extracted line item. The upload is best effort: a storage failure is
// logged and the scan continues without an archived image.
func (s *ReceiptService) Scan(ctx context.Context, userID uuid.UUID, imageBase64 string) (*ScanResult, error) {
	if s.extractor == nil {
		return nil, errors.New("receipt scanning is not configured")
	}

	payload := stripDataURIPrefix(imageBase64)
	imageData, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid image encoding: %w", err)
	}

	result := &ScanResult{}
	if s.s3Config != nil {
		key := fmt.Sprintf("receipts/%s/%s.jpg", userID, uuid.New())
		if err := s.upload(ctx, key, imageData); err != nil {
			s.logger.Warn("failed to archive receipt image", zap.Error(err))
		} else {
			result.ImageKey = key
		}
	}

	items, err := s.extractor.ExtractItems(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("receipt extraction failed: %w", err)
	}
	result.Items = items

	reqs := make([]types.CreateIngredientRequest, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, types.CreateIngredientRequest{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: item.Category,
		})
	}

	ingredients, err := s.ingredients.BulkCreate(ctx, userID, reqs)
	if err != nil {
		return nil, fmt.Errorf("failed to stock pantry from receipt: %w", err)
	}
	result.Ingredients = ingredients

	s.logger.Info("receipt scanned",
		zap.String("user_id", userID.String()),
		zap.Int("items", len(items)))

	return result, nil
}

func (s *ReceiptService) upload(ctx context.Context, key string, imageData []byte) error {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func stripDataURIPrefix(image string) string {
	if strings.HasPrefix(image, "data:") {
		if idx := strings.Index(image, ","); idx >= 0 {
			return image[idx+1:]
		}
	}
	return image
}
