package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecase は公開カタログの読み取りロジック。
// カートはここで取れる name/price/image を追加時にスナップショットする。
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type ListProductsOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// 公開商品の一覧
func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ListProductsOutput, error) {
	if in.Page < 1 {
		return ListProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ListProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ListProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        in.Q,
		Category: in.Category,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
	})
	if err != nil {
		return ListProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ListProductsOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 商品詳細（非公開は404扱い）
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	p, err := u.productRepo.FindByProductID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return p, nil
}
