package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
)

// product_id欠落時の採番
type IDGenerator interface {
	NewID() string
}

// JSONフィクスチャの1商品
type seedProduct struct {
	ProductID   string   `json:"product_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int64    `json:"stock"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	IsActive    bool     `json:"is_active"`
}

// Seeder はカタログが空のときだけ初期データを投入する。
type Seeder struct {
	products repo.ProductRepository
	idGen    IDGenerator
}

// DI
func NewSeeder(products repo.ProductRepository, idGen IDGenerator) *Seeder {
	return &Seeder{
		products: products,
		idGen:    idGen,
	}
}

// Run は投入した件数を返す。既にデータがあれば0件で戻る。
func (s *Seeder) Run(ctx context.Context, path string) (int, error) {
	count, err := s.products.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedProduct
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	created := 0
	for _, e := range entries {
		if e.Name == "" {
			return created, fmt.Errorf("seed entry %d: name is required", created)
		}

		productID := e.ProductID
		if productID == "" {
			productID = s.idGen.NewID()
		}

		image := ""
		if len(e.Images) > 0 {
			image = e.Images[0]
		}

		if _, err := s.products.Create(ctx, model.Product{
			ProductID:   productID,
			Name:        e.Name,
			Description: e.Description,
			Price:       e.Price,
			Stock:       e.Stock,
			Category:    e.Category,
			Image:       image,
			Featured:    e.Featured,
			IsActive:    e.IsActive,
		}); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
