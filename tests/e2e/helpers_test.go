package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
	"github.com/MUNENE1212/baitech26-sub002/internal/handler"
	"github.com/MUNENE1212/baitech26-sub002/internal/infra/db"
	infraRepo "github.com/MUNENE1212/baitech26-sub002/internal/infra/repository"
	"github.com/MUNENE1212/baitech26-sub002/internal/infra/storage"
	"github.com/MUNENE1212/baitech26-sub002/internal/seed"
	"github.com/MUNENE1212/baitech26-sub002/internal/server"
	"github.com/MUNENE1212/baitech26-sub002/internal/usecase"
)

const testWhatsAppNumber = "254799954672"

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// newTestServer はdir配下にカタログDBとカート保存先を置いてアプリ一式を立ち上げる。
// 同じdirで呼び直すと「プロセス再起動」を再現できる（カートは復元される）。
func newTestServer(t *testing.T, dir string) (*httptest.Server, *TestClient) {
	t.Helper()

	gormDB, err := db.ConnectSQLite(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("db.ConnectSQLite failed: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	idGen := &uuidGenerator{}

	seeder := seed.NewSeeder(productRepo, idGen)
	if _, err := seeder.Run(context.Background(), "../../seed_data/products.json"); err != nil {
		t.Fatalf("seeder.Run failed: %v", err)
	}

	cartStorage := storage.NewFileCartStorage(dir)
	store := usecase.NewCartStore(cartStorage)
	store.Hydrate(context.Background())

	facade := usecase.NewCartFacade(store)
	productUC := usecase.NewProductUsecase(productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(facade, testWhatsAppNumber, idGen)

	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(facade, checkoutUC)

	srv := httptest.NewServer(server.New(productH, cartH, cartStorage))
	t.Cleanup(srv.Close)

	client := &TestClient{
		BaseURL: strings.TrimRight(srv.URL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
	return srv, client
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartItemDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

type CartViewResponse struct {
	Items      []CartItemDTO `json:"items"`
	TotalItems int64         `json:"total_items"`
	TotalPrice int64         `json:"total_price"`
	IsHydrated bool          `json:"is_hydrated"`
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

type ProductDTO struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Stock     int64  `json:"stock"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
}

type ProductListResponse struct {
	Items []ProductDTO `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type CheckoutResponse struct {
	URL        string `json:"url"`
	Message    string `json:"message"`
	OrderRef   string `json:"order_ref"`
	TotalItems int64  `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeCart(t *testing.T, body []byte) CartViewResponse {
	t.Helper()
	var v CartViewResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartViewResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProductList(t *testing.T, body []byte) ProductListResponse {
	t.Helper()
	var v ProductListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ProductListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCheckout(t *testing.T, body []byte) CheckoutResponse {
	t.Helper()
	var v CheckoutResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CheckoutResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	return data
}
