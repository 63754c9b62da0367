package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
)

var (
	// addToCartの入力が不正（product_id欠落、数量が0以下など）
	ErrInvalidItem = errors.New("invalid item")

	// 復元（Hydrate）完了前の変更操作。
	// 復元前に書き込むと保存済みカートを空で上書きしかねないため拒否する。
	ErrNotHydrated = errors.New("cart not hydrated")
)

// POST /cart の入力DTO。Quantity 0 は「未指定」で1として扱う。
type AddToCartInput struct {
	ProductID string
	Name      string
	Price     int64
	Image     string
	Quantity  int64
}

// CartStore はカート状態の本体。
// 明細はメモリ上で保持し、変更のたびに全量をCartStorageへ保存する。
// 状態は Uninitialized（復元前）→ Ready（復元後）の一方向のみ。
type CartStore struct {
	mu       sync.RWMutex
	storage  repo.CartStorage
	items    []model.CartItem
	hydrated bool
}

// DI
func NewCartStore(storage repo.CartStorage) *CartStore {
	return &CartStore{
		storage: storage,
		items:   []model.CartItem{},
	}
}

// Hydrate は保存済みカートを読み込んで Ready に遷移する。プロセスで一度だけ。
// 読み込み失敗・破損は空カートで続行する（呼び出し元へは返さない）。
func (s *CartStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}

	items, found, err := s.storage.Load(ctx)
	if err != nil {
		log.Printf("cart store: restore failed, starting empty: %v", err)
		found = false
	}
	if found {
		s.items = sanitizeItems(items)
	}

	s.hydrated = true
}

// 復元直後の不変条件を保証する。
// product_id重複は数量を合算、空ID・数量0以下の行は捨てる。
func sanitizeItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 || it.Price < 0 {
			log.Printf("cart store: dropping malformed line product_id=%q", it.ProductID)
			continue
		}
		if i, ok := index[it.ProductID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(out)
		out = append(out, it)
	}

	return out
}

// AddToCart はカートに追加（同一商品は数量加算、他のスナップショット項目は据え置き）。
func (s *CartStore) AddToCart(ctx context.Context, in AddToCartInput) error {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if strings.TrimSpace(in.ProductID) == "" || qty < 1 || in.Price < 0 {
		return ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		return ErrNotHydrated
	}

	for i := range s.items {
		if s.items[i].ProductID == in.ProductID {
			// 既存行は数量のみ加算。name/price/imageは追加時のまま。
			s.items[i].Quantity += qty
			s.persist(ctx)
			return nil
		}
	}

	// 無ければ末尾に新規行（表示順＝追加順）
	s.items = append(s.items, model.CartItem{
		ProductID: in.ProductID,
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		Quantity:  qty,
	})
	s.persist(ctx)
	return nil
}

// RemoveFromCart は該当行を削除。無ければ何もしない（エラーではない）。
func (s *CartStore) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		return ErrNotHydrated
	}

	s.removeLocked(productID)
	s.persist(ctx)
	return nil
}

// UpdateQuantity は数量の絶対値セット。
// 0以下は削除と同義。存在しない商品は何もしない（行は作らない）。
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		return ErrNotHydrated
	}

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist(ctx)
		return nil
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
	return nil
}

// ClearCart は無条件で空にする（空カートを保存する）。
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		return ErrNotHydrated
	}

	s.items = []model.CartItem{}
	s.persist(ctx)
	return nil
}

// 現在の明細のコピーを返す
func (s *CartStore) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// 数量合計（毎回計算）
func (s *CartStore) TotalItems() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.TotalItems(s.items)
}

// 金額合計（毎回計算）
func (s *CartStore) TotalPrice() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.TotalPrice(s.items)
}

func (s *CartStore) IsHydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hydrated
}

// mu保持前提
func (s *CartStore) removeLocked(productID string) {
	out := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	s.items = out
}

// mu保持前提。保存失敗は警告のみで、メモリ上の状態はそのまま正とする。
func (s *CartStore) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.items); err != nil {
		log.Printf("cart store: save failed (in-memory state kept): %v", err)
	}
}
