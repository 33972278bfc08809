package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type SupplierDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type SupplierListResponse struct {
	Items    []SupplierDTO `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Pages    int           `json:"pages"`
}

type ProductDTO struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	QuantitySold    int64           `json:"quantity_sold"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Revenue         decimal.Decimal `json:"revenue"`
	SupplierID      int64           `json:"supplier_id"`
}

type SupplierCreateRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ProductCreateRequest struct {
	Name            string `json:"name"`
	QuantityInStock int64  `json:"quantity_in_stock"`
	QuantitySold    int64  `json:"quantity_sold"`
	UnitPrice       string `json:"unit_price"`
	SupplierID      int64  `json:"supplier_id"`
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

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeSupplier(t *testing.T, body []byte) SupplierDTO {
	t.Helper()
	var v SupplierDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(SupplierDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeSupplierList(t *testing.T, body []byte) SupplierListResponse {
	t.Helper()
	var v SupplierListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(SupplierListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProduct(t *testing.T, body []byte) ProductDTO {
	t.Helper()
	var v ProductDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ProductDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

// 実行ごとに衝突しないemail
func uniqueEmail() string {
	return "e2e-" + uuid.NewString()[:8] + "@example.com"
}

// 仕入先を作ってDTOを返す
func createSupplier(t *testing.T, c *TestClient, ctx context.Context) SupplierDTO {
	t.Helper()

	req := SupplierCreateRequest{
		Name:    "E2E Supplier",
		Company: "E2E Co",
		Email:   uniqueEmail(),
		Phone:   "+15551234567",
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(SupplierCreateRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/suppliers", b)
	requireStatus(t, resp, http.StatusCreated, body)

	return mustDecodeSupplier(t, body)
}

// 商品を作ってDTOを返す
func createProduct(t *testing.T, c *TestClient, ctx context.Context, supplierID int64) ProductDTO {
	t.Helper()

	req := ProductCreateRequest{
		Name:            "E2E Widget",
		QuantityInStock: 100,
		QuantitySold:    40,
		UnitPrice:       "9.99",
		SupplierID:      supplierID,
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(ProductCreateRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/products", b)
	requireStatus(t, resp, http.StatusCreated, body)

	return mustDecodeProduct(t, body)
}
