package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MUNENE1212/baitech26-sub002/internal/config"
	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
	"github.com/MUNENE1212/baitech26-sub002/internal/handler"
	"github.com/MUNENE1212/baitech26-sub002/internal/infra/db"
	infraRepo "github.com/MUNENE1212/baitech26-sub002/internal/infra/repository"
	"github.com/MUNENE1212/baitech26-sub002/internal/infra/storage"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
	"github.com/MUNENE1212/baitech26-sub002/internal/seed"
	"github.com/MUNENE1212/baitech26-sub002/internal/server"
	"github.com/MUNENE1212/baitech26-sub002/internal/usecase"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	// .env（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//カタログDB接続
	gormDB, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	idGen := &uuidGenerator{}

	//カタログが空なら初期データを投入
	seeder := seed.NewSeeder(productRepo, idGen)
	if n, err := seeder.Run(context.Background(), cfg.SeedFile); err != nil {
		log.Printf("seed skipped: %v", err)
	} else if n > 0 {
		log.Printf("seeded %d products", n)
	}

	//カート永続化バックエンド選択
	var cartStorage repo.CartStorage
	switch cfg.CartStorageDriver {
	case "redis":
		cartStorage = storage.NewRedisCartStorage(cfg.RedisAddr)
	default:
		cartStorage = storage.NewFileCartStorage(cfg.CartStoragePath)
	}

	//CartStore生成 → 保存済みカートの復元（完了までは変更操作を受けない）
	store := usecase.NewCartStore(cartStorage)

	hydrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store.Hydrate(hydrateCtx)
	cancel()

	//Usecase生成
	facade := usecase.NewCartFacade(store)
	productUC := usecase.NewProductUsecase(productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(facade, cfg.WhatsAppNumber, idGen)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(facade, checkoutUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, productH, cartH, cartStorage); err != nil {
		panic(err)
	}
}
