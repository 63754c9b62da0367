package repository

import (
	"context"
	"errors"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

// 商品カタログの永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByProductID(ctx context.Context, productID string) (model.Product, error)

	// シーディング用
	Create(ctx context.Context, p model.Product) (model.Product, error)
	CountAll(ctx context.Context) (int64, error)
}
