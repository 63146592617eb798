package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

// CatalogService manages the shared product catalog.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Search lists products matching the query. On Postgres results combine a
// keyword match with embedding distance ordering; elsewhere it falls back to
// a plain LIKE match. An empty query lists the whole catalog.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product

	dbQuery := s.db.WithContext(ctx)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			dbQuery = dbQuery.
				Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like).
				Order(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}}})
		} else {
			dbQuery = dbQuery.
				Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like).
				Order("name")
		}
	} else {
		dbQuery = dbQuery.Order("name")
	}

	if err := dbQuery.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create adds a product to the catalog, upserting on the normalized name so
// repeated creates for the same name return the existing row.
func (s *CatalogService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateProductRequest) (*models.Product, error) {
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := models.Product{
		ID:             uuid.New(),
		Name:           req.Name,
		NormalizedName: NormalizeProductName(req.Name),
		Unit:           unit,
		Price:          req.Price,
		Category:       req.Category,
		Store:          req.Store,
		OwnerID:        &ownerID,
		Embedding:      GenerateEmbedding(req.Name),
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "normalized_name"}}, DoNothing: true}).
		Create(&product).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Where("normalized_name = ?", product.NormalizedName).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
