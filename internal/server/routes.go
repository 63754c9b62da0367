package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MUNENE1212/baitech26-sub002/internal/handler"
	repo "github.com/MUNENE1212/baitech26-sub002/internal/repository"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, cartH *handler.CartHandler, storage repo.CartStorage) {
	e.GET("/healthz", func(c echo.Context) error {
		if !storage.Ping(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "storage unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
}
