package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// ローカルファイル1個にカート全体をJSONで保存する既定バックエンド。
type FileCartStorage struct {
	dir  string
	path string
}

// DI
func NewFileCartStorage(dir string) *FileCartStorage {
	return &FileCartStorage{
		dir:  dir,
		path: filepath.Join(dir, StorageName+".json"),
	}
}

// 保存済みカートを読む。ファイル無し・破損は (nil, false, nil)。
func (s *FileCartStorage) Load(ctx context.Context) ([]model.CartItem, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	items, ok := decodeState(data)
	if !ok {
		// 破損は「保存なし」と同じ扱い
		return nil, false, nil
	}
	return items, true, nil
}

// カート全体を上書き保存。tmpに書いてrenameで差し替える。
func (s *FileCartStorage) Save(ctx context.Context, items []model.CartItem) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	data, err := encodeState(items)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// 保存先ディレクトリに書けるかを確認
func (s *FileCartStorage) Ping(ctx context.Context) bool {
	return os.MkdirAll(s.dir, 0o755) == nil
}
