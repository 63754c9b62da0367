package db

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect はカタログDBに接続して *gorm.DB を返す。
// databaseURL があればPostgres、無ければローカルのSQLiteファイルを使う。
func Connect(databaseURL string, sqlitePath string) (*gorm.DB, error) {
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	return ConnectSQLite(sqlitePath)
}

// ConnectSQLite はパス指定でSQLiteに接続する（テストからも使う）。
func ConnectSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
