package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MUNENE1212/baitech26-sub002/internal/handler"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
)

// New はルート登録済みのechoインスタンスを返す（テストからも使う）。
func New(productH *handler.ProductHandler, cartH *handler.CartHandler, storage repo.CartStorage) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, productH, cartH, storage)
	return e
}

func Start(addr string, productH *handler.ProductHandler, cartH *handler.CartHandler, storage repo.CartStorage) error {
	e := New(productH, cartH, storage)
	return e.Start(addr)
}
