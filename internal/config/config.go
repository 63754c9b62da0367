package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CartStorageDriver string // カート保存先の種別（file / redis）
	CartStoragePath   string // fileバックエンドの保存ディレクトリ
	RedisAddr         string // redisバックエンドの接続先

	WhatsAppNumber string // 注文送信先のWhatsApp番号（国番号込み）

	DatabaseURL string // カタログDB（指定時はPostgres）
	SQLitePath  string // カタログDB（未指定時のSQLiteファイル）
	SeedFile    string // カタログの初期データJSON
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		CartStorageDriver: getenv("CART_STORAGE_DRIVER", "file"),
		CartStoragePath:   getenv("CART_STORAGE_PATH", "data"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),

		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "data/catalog.db"),
		SeedFile:    getenv("SEED_FILE", "seed_data/products.json"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.WhatsAppNumber == "" {
		return Config{}, fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	switch cfg.CartStorageDriver {
	case "file":
		if cfg.CartStoragePath == "" {
			return Config{}, fmt.Errorf("CART_STORAGE_PATH is required")
		}
	case "redis":
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return Config{}, fmt.Errorf("CART_STORAGE_DRIVER must be file or redis")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
