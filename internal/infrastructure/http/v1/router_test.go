package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopadmin/internal/domain/audit"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/domain/reports"
	"shopadmin/internal/infrastructure/storage/memory"
	"shopadmin/internal/metadata"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/numerator"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	store := memory.New(memory.WithLogger(logger.NewNop()))
	accounts := memory.NewAccountRepo(store)
	products := memory.NewProductRepo(store)
	orders := memory.NewOrderRepo(store)

	accountSvc := account.NewService(accounts, bcrypt.MinCost)
	productSvc := product.NewService(products)
	orderSvc := order.NewService(orders, documents.NewNameResolver(accounts, products), numerator.New())
	metricSvc := metric.NewService(memory.NewMetricRepo(store))

	journal, err := memory.NewAuditJournal(0)
	require.NoError(t, err)
	audit.Track(productSvc.Hooks(), journal, "product")
	audit.Track(orderSvc.Hooks(), journal, "order")

	registry := metadata.NewRegistry()
	registry.Register(metadata.Inspect(order.Order{}, "order", metadata.TypeDocument))

	return NewHandler(RouterConfig{
		Logger:           logger.NewNop(),
		Store:            store,
		AccountService:   accountSvc,
		ProductService:   productSvc,
		OrderService:     orderSvc,
		MetricService:    metricSvc,
		ReportsService:   reports.NewService(store, orders, products, 0),
		AuditJournal:     journal,
		MetadataRegistry: registry,
	})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func seedDashboard(t *testing.T, h http.Handler) {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/v1/accounts", map[string]any{
		"username": "admin", "email": "admin@example.com", "password": "secret1", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/accounts", map[string]any{
		"username": "john", "email": "john@example.com", "password": "secret2",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Laptop Pro", "price": "1299.00", "stock": 45, "category": "Electronics",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/orders", map[string]any{
		"orderId": "#12345", "customerId": 2, "productId": 1, "amount": "1299.00", "status": "completed",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_DashboardScenario(t *testing.T) {
	h := newTestHandler(t)
	seedDashboard(t, h)

	rec := do(t, h, http.MethodGet, "/api/v1/accounts/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	acc := decode(t, rec)
	assert.EqualValues(t, 2, acc["id"])
	assert.Equal(t, "john", acc["username"])
	assert.Equal(t, account.DefaultRole, acc["role"])
	assert.NotContains(t, acc, "password")

	rec = do(t, h, http.MethodGet, "/api/v1/orders/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	o := decode(t, rec)
	assert.Equal(t, "#12345", o["orderId"])
	assert.Equal(t, "john", o["customerName"])
	assert.Equal(t, "Laptop Pro", o["productName"])
	assert.Equal(t, "1299.00", o["amount"])

	rec = do(t, h, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":2,"totalOrders":1,"totalRevenue":"1299.00","growthRate":12.5}`, rec.Body.String())
}

func TestRouter_UpdateAndDeleteOrder(t *testing.T) {
	h := newTestHandler(t)
	seedDashboard(t, h)

	rec := do(t, h, http.MethodPatch, "/api/v1/orders/1", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	o := decode(t, rec)
	assert.Equal(t, "shipped", o["status"])
	assert.Equal(t, "1299.00", o["amount"])
	assert.Equal(t, "#12345", o["orderId"])

	rec = do(t, h, http.MethodDelete, "/api/v1/orders/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/orders/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])

	rec = do(t, h, http.MethodDelete, "/api/v1/orders/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/orders/1", map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":2,"totalOrders":0,"totalRevenue":"0.00","growthRate":12.5}`, rec.Body.String())
}

func TestRouter_AuditHistory(t *testing.T) {
	h := newTestHandler(t)
	seedDashboard(t, h)

	rec := do(t, h, http.MethodPatch, "/api/v1/orders/1", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/v1/orders/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/audit/order/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Action  string                    `json:"action"`
			Changes map[string]map[string]any `json:"changes"`
		} `json:"items"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 3, body.TotalCount)
	assert.Equal(t, "delete", body.Items[0].Action)
	assert.Equal(t, "update", body.Items[1].Action)
	assert.Equal(t, "create", body.Items[2].Action)
	assert.Equal(t, map[string]any{"old": "completed", "new": "shipped"}, body.Items[1].Changes["status"])

	rec = do(t, h, http.MethodGet, "/api/v1/audit/order/1?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["totalCount"])
}

func TestRouter_ListFilter(t *testing.T) {
	h := newTestHandler(t)

	for i, stock := range []int{3, 40, 7} {
		rec := do(t, h, http.MethodPost, "/api/v1/products", map[string]any{
			"name": fmt.Sprintf("Item %d", i+1), "price": 10, "stock": stock, "category": "Misc",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/api/v1/products?filter="+url.QueryEscape("item.stock < 10"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Items []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalCount)
	assert.Equal(t, int64(1), body.Items[0].ID)
	assert.Equal(t, int64(3), body.Items[1].ID)

	rec = do(t, h, http.MethodGet, "/api/v1/products?filter="+url.QueryEscape("item.stock <"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])
}

func TestRouter_BadRequests(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{
			name:   "non numeric id",
			method: http.MethodGet,
			path:   "/api/v1/products/abc",
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "zero id",
			method: http.MethodDelete,
			path:   "/api/v1/orders/0",
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
		{
			name:   "missing required field",
			method: http.MethodPost,
			path:   "/api/v1/accounts",
			body:   map[string]any{"username": "nobody"},
			status: http.StatusBadRequest,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "negative price",
			method: http.MethodPost,
			path:   "/api/v1/products",
			body:   map[string]any{"name": "Broken", "price": "-1.00"},
			status: http.StatusBadRequest,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "missing account",
			method: http.MethodGet,
			path:   "/api/v1/accounts/42",
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "negative low stock threshold",
			method: http.MethodGet,
			path:   "/api/v1/reports/low-stock?threshold=-1",
			status: http.StatusBadRequest,
			code:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decode(t, rec)["code"])
		})
	}
}

func TestRouter_Health(t *testing.T) {
	h := newTestHandler(t)
	seedDashboard(t, h)

	rec := do(t, h, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode(t, rec)
	assert.Equal(t, Version, info["version"])
	assert.Equal(t, map[string]any{
		"accounts": float64(2),
		"products": float64(1),
		"orders":   float64(1),
		"metrics":  float64(0),
	}, info["collections"])
}

func TestRouter_Metadata(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/meta/order", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var def metadata.EntityDef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &def))
	assert.Equal(t, metadata.TypeDocument, def.Type)
	customer, ok := def.Field("customerId")
	require.True(t, ok)
	assert.Equal(t, metadata.TypeReference, customer.Type)
	assert.Equal(t, "account", customer.ReferenceType)

	rec = do(t, h, http.MethodGet, "/api/v1/meta/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_GzipLargeResponses(t *testing.T) {
	h := newTestHandler(t)

	for i := 0; i < 40; i++ {
		rec := do(t, h, http.MethodPost, "/api/v1/products", map[string]any{
			"name": fmt.Sprintf("Product number %d", i), "price": "19.99", "stock": i, "category": "Bulk",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	plain := do(t, h, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, plain.Code)
	assert.Empty(t, plain.Header().Get("Content-Encoding"))
	assert.EqualValues(t, 40, decode(t, plain)["totalCount"])
}

func TestRouter_UpdateAndDeleteProduct(t *testing.T) {
	h := newTestHandler(t)
	seedDashboard(t, h)

	rec := do(t, h, http.MethodPatch, "/api/v1/products/1", map[string]any{"stock": 40, "price": "1199.50"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode(t, rec)
	assert.Equal(t, "Laptop Pro", p["name"])
	assert.Equal(t, "1199.50", p["price"])
	assert.EqualValues(t, 40, p["stock"])

	// an empty patch changes nothing and leaves no history
	rec = do(t, h, http.MethodPatch, "/api/v1/products/1", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 40, decode(t, rec)["stock"])

	rec = do(t, h, http.MethodPatch, "/api/v1/products/1", map[string]any{"price": "-1.00"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])

	rec = do(t, h, http.MethodGet, "/api/v1/audit/product/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Items []struct {
			Action  string                    `json:"action"`
			Changes map[string]map[string]any `json:"changes"`
		} `json:"items"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Equal(t, 2, history.TotalCount)
	assert.Equal(t, "update", history.Items[0].Action)
	assert.Equal(t, map[string]any{"old": "1299.00", "new": "1199.50"}, history.Items[0].Changes["price"])
	assert.Equal(t, map[string]any{"old": float64(45), "new": float64(40)}, history.Items[0].Changes["stock"])
	assert.Equal(t, "1299.00", history.Items[1].Changes["price"]["new"])

	rec = do(t, h, http.MethodDelete, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])

	// orders keep their snapshot of the deleted product
	rec = do(t, h, http.MethodGet, "/api/v1/orders/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Laptop Pro", decode(t, rec)["productName"])
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/metrics", map[string]any{
		"name": "conversion_rate", "value": "0.0325", "period": "2026-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, "0.0325", created["value"])

	rec = do(t, h, http.MethodPost, "/api/v1/metrics", map[string]any{
		"name": "revenue", "value": "1418.98", "period": "2026-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/metrics/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, created, got)

	rec = do(t, h, http.MethodGet, "/api/v1/metrics?filter="+url.QueryEscape("item.value == 0.0325"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list struct {
		Items []struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"items"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, "conversion_rate", list.Items[0].Name)
	assert.Equal(t, "0.0325", list.Items[0].Value)

	rec = do(t, h, http.MethodGet, "/api/v1/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode(t, rec)["totalCount"])

	rec = do(t, h, http.MethodGet, "/api/v1/metrics/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])

	rec = do(t, h, http.MethodPost, "/api/v1/metrics", map[string]any{"name": "visitors", "value": 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])

	// samples are append-only
	rec = do(t, h, http.MethodPatch, "/api/v1/metrics/1", map[string]any{"value": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/v1/metrics/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
