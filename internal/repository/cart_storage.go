package repository

import (
	"context"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// カート全体の永続化だけを約束。
// バックエンド（ファイル / Redis）はここを満たせば差し替え可能。
type CartStorage interface {
	// 保存済みカートを読む。無い場合は (nil, false, nil)。
	Load(ctx context.Context) ([]model.CartItem, bool, error)

	// カート全体を上書き保存（差分ではなく全量）
	Save(ctx context.Context, items []model.CartItem) error

	// 疎通チェック
	Ping(ctx context.Context) bool
}
