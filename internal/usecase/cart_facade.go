package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// CartView はUI側（ドロワー・チェックアウト）へ渡す読み取りモデル。
// 合計系を表示する画面は is_hydrated を見てから items/合計を信用すること。
type CartView struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int64            `json:"total_items"`
	TotalPrice int64            `json:"total_price"`
	IsHydrated bool             `json:"is_hydrated"`
}

// CartFacade はCartStoreの薄い窓口。
// 変更操作はストアへ委譲し、ドメインエラーをHTTPErrorへ写像する。
type CartFacade struct {
	store *CartStore
}

// DI
func NewCartFacade(store *CartStore) *CartFacade {
	return &CartFacade{store: store}
}

// 現在のカート全体を1つの読み取りモデルとして返す
func (f *CartFacade) View() CartView {
	return CartView{
		Items:      f.store.Items(),
		TotalItems: f.store.TotalItems(),
		TotalPrice: f.store.TotalPrice(),
		IsHydrated: f.store.IsHydrated(),
	}
}

// カートに追加して最新ビューを返す
func (f *CartFacade) AddToCart(ctx context.Context, in AddToCartInput) (CartView, error) {
	if err := f.store.AddToCart(ctx, in); err != nil {
		return CartView{}, asCartHTTPError(err)
	}
	return f.View(), nil
}

// 行を削除して最新ビューを返す
func (f *CartFacade) RemoveFromCart(ctx context.Context, productID string) (CartView, error) {
	if err := f.store.RemoveFromCart(ctx, productID); err != nil {
		return CartView{}, asCartHTTPError(err)
	}
	return f.View(), nil
}

// 数量を絶対値で変更して最新ビューを返す
func (f *CartFacade) UpdateQuantity(ctx context.Context, productID string, quantity int64) (CartView, error) {
	if err := f.store.UpdateQuantity(ctx, productID, quantity); err != nil {
		return CartView{}, asCartHTTPError(err)
	}
	return f.View(), nil
}

// カートを空にして最新ビューを返す
func (f *CartFacade) ClearCart(ctx context.Context) (CartView, error) {
	if err := f.store.ClearCart(ctx); err != nil {
		return CartView{}, asCartHTTPError(err)
	}
	return f.View(), nil
}

// ドメインエラー → HTTPError
func asCartHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidItem):
		return NewHTTPError(http.StatusBadRequest, "invalid item")
	case errors.Is(err, ErrNotHydrated):
		return NewHTTPError(http.StatusServiceUnavailable, "cart not ready")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
