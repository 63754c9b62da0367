package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MUNENE1212/baitech26-sub002/internal/usecase"
)

// /cartのHTTP
type CartHandler struct {
	facade   *usecase.CartFacade
	checkout *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(facade *usecase.CartFacade, checkout *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{
		facade:   facade,
		checkout: checkout,
	}
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /cart 配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PATCH("/:product_id", h.patchItem)
	g.DELETE("/:product_id", h.deleteItem)
	g.DELETE("", h.clearCart)
	g.GET("/checkout-url", h.checkoutURL)
}

// カートの読み取りは復元前でも200で返す。
// is_hydrated=false の間、合計系を信用するかはUI側の判断。
func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.facade.View())
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.facade.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	productID := c.Param("product_id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.facade.UpdateQuantity(c.Request().Context(), productID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	productID := c.Param("product_id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	out, err := h.facade.RemoveFromCart(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	out, err := h.facade.ClearCart(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// WhatsAppチェックアウトURLの発行。
// 注文確定後のカートクリアは呼び出し側（UI）が DELETE /cart で行う。
func (h *CartHandler) checkoutURL(c echo.Context) error {
	out, err := h.checkout.BuildOrderURL(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
