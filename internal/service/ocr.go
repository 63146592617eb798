package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

const receiptExtractionPrompt = `Extract the grocery line items from this receipt image. ` +
	`Respond with a JSON array only, no prose, where each element is ` +
	`{"name": string, "quantity": number, "unit": string, "category": string}. ` +
	`Use an empty string for unknown units and categories.`

// ReceiptItem is one grocery line item extracted from a receipt image.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// OCRService extracts grocery items from receipt images through an
// OpenRouter-hosted vision model.
type OCRService struct {
	model  string
	client *resty.Client
}

func NewOCRService() (*OCRService, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY must be set")
	}

	baseURL := os.Getenv("OPENROUTER_API_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}

	model := os.Getenv("OPENROUTER_VISION_MODEL")
	if model == "" {
		model = "qwen/qwen2.5-vl-32b-instruct"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	return &OCRService{model: model, client: client}, nil
}

// ExtractItems sends the base64-encoded receipt image to the vision model
// and decodes the returned item list.
func (s *OCRService) ExtractItems(ctx context.Context, imageBase64 string) ([]ReceiptItem, error) {
	url := imageBase64
	if !strings.HasPrefix(imageBase64, "data:image/") {
		url = fmt.Sprintf("data:image/jpeg;base64,%s", imageBase64)
	}

	req := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": receiptExtractionPrompt},
					{"type": "image_url", "image_url": map[string]string{"url": url}},
				},
			},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	return parseReceiptItems(result.Choices[0].Message.Content)
}

// parseReceiptItems decodes the model's JSON array, tolerating a markdown
// code fence around it.
func parseReceiptItems(content string) ([]ReceiptItem, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var items []ReceiptItem
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, fmt.Errorf("failed to decode receipt items: %w", err)
	}

	filtered := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}
