package storage

import (
	"encoding/json"
	"log"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// 保存キーの固定名前空間。フロント時代の localStorage キーと同じ値。
const StorageName = "baitech-cart-storage"

// 将来のマイグレーション用に version を持たせる
const storageVersion = 1

type persistedState struct {
	Items []model.CartItem `json:"items"`
}

// 永続化のワイヤ形式: {"state":{"items":[...]},"version":1}
type envelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

// 明細一覧をワイヤ形式へシリアライズ
func encodeState(items []model.CartItem) ([]byte, error) {
	if items == nil {
		items = []model.CartItem{}
	}
	return json.Marshal(envelope{
		State:   persistedState{Items: items},
		Version: storageVersion,
	})
}

// ワイヤ形式から明細一覧を復元する。
// 壊れたデータは「保存なし」として扱い、呼び出し元へはエラーを返さない。
func decodeState(data []byte) ([]model.CartItem, bool) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Printf("cart storage: corrupt data ignored: %v", err)
		return nil, false
	}
	if env.State.Items == nil {
		log.Printf("cart storage: unexpected payload shape, treating as empty")
		return nil, false
	}
	return env.State.Items, true
}
