package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktake/internal/domain/auth"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/documents/purchase"
	"stocktake/internal/domain/documents/sales"
	"stocktake/internal/domain/notify"
	"stocktake/internal/domain/posting"
	v1 "stocktake/internal/infrastructure/http/v1"
	"stocktake/internal/infrastructure/storage/memory"
	"stocktake/pkg/logger"
)

type testAPI struct {
	router *gin.Engine
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.NewStore()
	relay := notify.NewRelay(0)
	products := store.Products()
	engine := posting.NewEngine(products)

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))
	authService, err := auth.NewService("admin", "inventorylab", jwtService)
	require.NoError(t, err)

	router := v1.NewRouter(v1.RouterConfig{
		Logger:          logger.Default(),
		AuthService:     authService,
		ProductService:  product.NewService(products, relay),
		PurchaseService: purchase.NewService(store.PurchaseOrders(), products, engine, relay),
		SalesService:    sales.NewService(store.SalesOrders(), products, engine, relay),
		Relay:           relay,
	})

	api := &testAPI{router: router}
	api.token = api.login(t, "admin", "inventorylab")
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T, username, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": username,
		"password": password,
	}, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (a *testAPI) createProduct(t *testing.T, code, name string, price float64, quantity int64, expiry string) int64 {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/products", gin.H{
		"code":     code,
		"name":     name,
		"price":    price,
		"quantity": quantity,
		"expiry":   expiry,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decode(t, w)["id"].(float64))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	}, false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
	assert.Equal(t, "Invalid username or password. Please try again.", body["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/products", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthIsPublic(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/health/live", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductLifecycle(t *testing.T) {
	api := newTestAPI(t)

	id := api.createProduct(t, "APL001", "Apples", 1.5, 10, "2030-12-31")

	w := api.do(t, http.MethodGet, "/api/v1/products", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Apples", list[0]["name"])
	assert.Equal(t, "good", list[0]["status"])

	w = api.do(t, http.MethodPut, "/api/v1/products/1", gin.H{"name": "Green Apples"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Green Apples", decode(t, w)["name"])

	w = api.do(t, http.MethodPut, "/api/v1/products/1", gin.H{"quantity": 25}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(25), decode(t, w)["quantity"], "edit overwrites the on-hand count")

	w = api.do(t, http.MethodPost, "/api/v1/products/1/adjust", gin.H{"delta": -3}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(22), decode(t, w)["quantity"])

	w = api.do(t, http.MethodDelete, "/api/v1/products/1", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/products/1", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	_ = id
}

func TestProductStatusDerivation(t *testing.T) {
	api := newTestAPI(t)

	api.createProduct(t, "EXP001", "Old Milk", 2.5, 4, "2020-01-01")
	api.createProduct(t, "OOS001", "Empty Bin", 1.0, 0, "2020-01-01")

	w := api.do(t, http.MethodGet, "/api/v1/products", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "expired", list[0]["status"])
	assert.Equal(t, "outOfStock", list[1]["status"], "zero stock wins over expiry")
}

func TestDuplicateCodeConflict(t *testing.T) {
	api := newTestAPI(t)

	api.createProduct(t, "APL001", "Apples", 1.5, 10, "2030-12-31")
	w := api.do(t, http.MethodPost, "/api/v1/products", gin.H{
		"code":     "APL001",
		"name":     "Other Apples",
		"price":    2.0,
		"quantity": 1,
		"expiry":   "2030-12-31",
	}, true)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_CODE", decode(t, w)["code"])
}

func TestPurchaseOrderAddsStock(t *testing.T) {
	api := newTestAPI(t)
	id := api.createProduct(t, "ORG001", "Oranges", 2.0, 5, "2030-11-15")

	w := api.do(t, http.MethodPost, "/api/v1/purchase-orders", gin.H{
		"receivedDate": "2024-05-01",
		"distributor":  "Fresh Farms",
		"lines": []gin.H{
			{"productId": id, "quantity": 20, "costPerUnit": 1.2},
		},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Pending", body["status"])
	assert.Equal(t, "24.00", body["totalCostDisplay"])

	w = api.do(t, http.MethodGet, "/api/v1/products/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(25), decode(t, w)["quantity"])
}

func TestSalesOrderShortage(t *testing.T) {
	api := newTestAPI(t)
	id := api.createProduct(t, "APL001", "Apples", 1.5, 6, "2030-12-31")

	w := api.do(t, http.MethodPost, "/api/v1/sales-orders", gin.H{
		"orderDate": "2024-06-01",
		"customer":  "NDL Corp",
		"lines": []gin.H{
			{"productId": id, "quantity": 7, "pricePerUnit": 2.0},
		},
	}, true)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])

	details := body["details"].(map[string]any)
	shortages := details["shortages"].([]any)
	require.Len(t, shortages, 1)
	shortage := shortages[0].(map[string]any)
	assert.Equal(t, float64(6), shortage["available"])
	assert.Equal(t, float64(7), shortage["requested"])

	// Stock untouched.
	w = api.do(t, http.MethodGet, "/api/v1/products/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(6), decode(t, w)["quantity"])
}

func TestSalesOrderAndStatusChange(t *testing.T) {
	api := newTestAPI(t)
	id := api.createProduct(t, "APL001", "Apples", 1.5, 10, "2030-12-31")

	w := api.do(t, http.MethodPost, "/api/v1/sales-orders", gin.H{
		"orderDate": "2024-06-01",
		"customer":  "NDL Corp",
		"lines": []gin.H{
			{"productId": id, "quantity": 4, "pricePerUnit": 2.0},
		},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "8.00", body["totalAmountDisplay"])

	w = api.do(t, http.MethodPut, "/api/v1/sales-orders/1/status", gin.H{"status": "Cancelled"}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Cancelled", decode(t, w)["status"])

	// Cancellation does not restock.
	w = api.do(t, http.MethodGet, "/api/v1/products/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(6), decode(t, w)["quantity"])

	w = api.do(t, http.MethodPut, "/api/v1/sales-orders/1/status", gin.H{"status": "Shipped"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationConsumeOnce(t *testing.T) {
	api := newTestAPI(t)
	api.createProduct(t, "APL001", "Apples", 1.5, 10, "2030-12-31")

	w := api.do(t, http.MethodPost, "/api/v1/notifications/consume", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, `Product "Apples" has been added successfully!`, body["message"])
	assert.Equal(t, "success", body["severity"])

	w = api.do(t, http.MethodPost, "/api/v1/notifications/consume", nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	// Missing required fields.
	w := api.do(t, http.MethodPost, "/api/v1/products", gin.H{"name": "No Code"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed date.
	w = api.do(t, http.MethodPost, "/api/v1/products", gin.H{
		"code":     "X",
		"name":     "Bad Date",
		"price":    1.0,
		"quantity": 1,
		"expiry":   "31-12-2030",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative quantity on edit.
	api.createProduct(t, "APL001", "Apples", 1.5, 10, "2030-12-31")
	w = api.do(t, http.MethodPut, "/api/v1/products/1", gin.H{"quantity": -5}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero adjust delta gets its own message, not a "required" error.
	w = api.do(t, http.MethodPost, "/api/v1/products/1/adjust", gin.H{"delta": 0}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["message"], "non-zero")

	// Empty order lines.
	w = api.do(t, http.MethodPost, "/api/v1/sales-orders", gin.H{
		"orderDate": "2024-06-01",
		"customer":  "NDL Corp",
		"lines":     []gin.H{},
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
