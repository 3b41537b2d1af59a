package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leo-furniture-api/internal/cache"
	"leo-furniture-api/internal/handler"
	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/repository"
	"leo-furniture-api/internal/service"
)

// newTestServer wires the full stack against an in-memory store, the same way
// main does, and returns a ready httptest server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := repository.NewTestStore(t)
	revoked := cache.NewMemoryCache()
	t.Cleanup(func() { revoked.Close() })

	authService := service.NewAuthService(store, revoked, "test-secret", time.Hour)
	itemService := service.NewItemService(store)
	expenseService := service.NewExpenseService(store, store)
	analyticsService := service.NewAnalyticsService(store)

	mux := New(Config{
		HealthHandler:    handler.NewHealthHandler("test"),
		AuthHandler:      handler.NewAuthHandler(authService),
		ItemHandler:      handler.NewItemHandler(itemService),
		ExpenseHandler:   handler.NewExpenseHandler(expenseService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		AuthMiddleware:   middleware.NewAuthMiddleware(authService),
		CORSOrigins:      []string{"*"},
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes the response body into a generic map.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response for %s %s: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Test User", "email": email, "password": "hunter22",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", status)
	}

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": "hunter22",
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", status)
	}

	token, _ := body["data"].(map[string]interface{})["token"].(string)
	if token == "" {
		t.Fatalf("login: no token in response: %v", body)
	}
	return token
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("no data object in response: %v", body)
	}
	return d
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, srv, http.MethodGet, "/api/v1/health", "", nil)
	if status != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", status)
	}
	if data(t, body)["status"] != "healthy" {
		t.Errorf("unexpected health body: %v", body)
	}

	status, body = doJSON(t, srv, http.MethodGet, "/api/status", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", status)
	}
	if data(t, body)["service"] != "leo-furniture-api" {
		t.Errorf("unexpected status body: %v", body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/items"},
		{http.MethodPost, "/api/v1/items"},
		{http.MethodPatch, "/api/v1/items/1"},
		{http.MethodPost, "/api/v1/items/1/sell"},
		{http.MethodDelete, "/api/v1/items/1"},
		{http.MethodGet, "/api/v1/items/1/expenses"},
		{http.MethodPost, "/api/v1/expenses"},
		{http.MethodGet, "/api/v1/analytics/summary"},
		{http.MethodPost, "/api/v1/auth/logout"},
	}

	for _, p := range paths {
		status, body := doJSON(t, srv, p.method, p.path, "", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d (%v)", p.method, p.path, status, body)
		}
	}
}

func TestItemLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "leo@example.com")

	// Create an in-store item.
	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]interface{}{
		"item_number":    "A-100",
		"title":          "Oak Table",
		"category":       "Dining Room",
		"purchase_price": 100,
		"in_store":       true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d (%v)", status, body)
	}
	item := data(t, body)["item"].(map[string]interface{})
	if item["sold_price"] != nil {
		t.Errorf("expected null sold_price, got %v", item["sold_price"])
	}
	if item["status"] != "in_store" {
		t.Errorf("expected status 'in_store', got %v", item["status"])
	}
	itemID := int64(item["id"].(float64))

	// Sell it.
	status, body = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/items/%d/sell", itemID), token, map[string]interface{}{
		"sold_price":     150,
		"delivery_price": 20,
	})
	if status != http.StatusOK {
		t.Fatalf("sell item: expected 200, got %d (%v)", status, body)
	}
	sold := data(t, body)["item"].(map[string]interface{})
	if sold["in_store"] != false || sold["status"] != "sold" {
		t.Errorf("unexpected sold item: %v", sold)
	}

	// Summary reflects the sale.
	status, body = doJSON(t, srv, http.MethodGet, "/api/v1/analytics/summary", token, nil)
	if status != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", status)
	}
	summary := data(t, body)
	if summary["gross_sales"].(float64) != 150 ||
		summary["total_cost"].(float64) != 100 ||
		summary["total_delivery"].(float64) != 20 ||
		summary["net_profit"].(float64) != 30 {
		t.Errorf("unexpected summary: %v", summary)
	}

	// Attach an expense and list it back.
	status, body = doJSON(t, srv, http.MethodPost, "/api/v1/expenses", token, map[string]interface{}{
		"item_id": itemID,
		"type":    "shipping",
		"amount":  12.5,
	})
	if status != http.StatusCreated {
		t.Fatalf("create expense: expected 201, got %d (%v)", status, body)
	}

	status, body = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/v1/items/%d/expenses", itemID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("list expenses: expected 200, got %d", status)
	}
	expenses := data(t, body)["expenses"].([]interface{})
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}

	// Delete the item; expenses cascade.
	status, body = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", itemID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete item: expected 200, got %d", status)
	}
	if data(t, body)["ok"] != true {
		t.Errorf("expected {ok:true}, got %v", body)
	}

	status, _ = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/v1/items/%d/expenses", itemID), token, nil)
	if status != http.StatusNotFound {
		t.Errorf("expenses of deleted item: expected 404, got %d", status)
	}
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "leo@example.com")

	// Sold item without sold_price.
	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]interface{}{
		"item_number":    "A-100",
		"title":          "Oak Table",
		"category":       "Dining Room",
		"purchase_price": 100,
		"in_store":       false,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	errObj := body["error"].(map[string]interface{})
	if errObj["message"] != "sold_price is required when item is sold" {
		t.Errorf("unexpected message: %v", errObj["message"])
	}

	// Empty patch.
	status, body = doJSON(t, srv, http.MethodPost, "/api/v1/items", token, map[string]interface{}{
		"item_number":    "A-100",
		"title":          "Oak Table",
		"category":       "Dining Room",
		"purchase_price": 100,
		"in_store":       true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d", status)
	}
	itemID := int64(data(t, body)["item"].(map[string]interface{})["id"].(float64))

	status, _ = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/v1/items/%d", itemID), token, map[string]interface{}{})
	if status != http.StatusBadRequest {
		t.Errorf("empty patch: expected 400, got %d", status)
	}

	// Delete an id that does not exist.
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/items/999", token, nil)
	if status != http.StatusNotFound {
		t.Errorf("delete nonexistent: expected 404, got %d", status)
	}

	// Malformed id.
	status, _ = doJSON(t, srv, http.MethodPatch, "/api/v1/items/abc", token, map[string]interface{}{
		"status": "listed",
	})
	if status != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", status)
	}
}

func TestOwnershipIsolationOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	leo := registerAndLogin(t, srv, "leo@example.com")
	mia := registerAndLogin(t, srv, "mia@example.com")

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/items", leo, map[string]interface{}{
		"item_number":    "A-100",
		"title":          "Oak Table",
		"category":       "Dining Room",
		"purchase_price": 100,
		"in_store":       true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d", status)
	}
	itemID := int64(data(t, body)["item"].(map[string]interface{})["id"].(float64))

	// Another user cannot see, patch, sell, expense or delete it.
	status, body = doJSON(t, srv, http.MethodGet, "/api/v1/items", mia, nil)
	if status != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}
	if items := data(t, body)["items"].([]interface{}); len(items) != 0 {
		t.Errorf("expected empty list for other user, got %d items", len(items))
	}

	status, _ = doJSON(t, srv, http.MethodPatch, fmt.Sprintf("/api/v1/items/%d", itemID), mia, map[string]interface{}{
		"status": "listed",
	})
	if status != http.StatusNotFound {
		t.Errorf("patch: expected 404, got %d", status)
	}

	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/expenses", mia, map[string]interface{}{
		"item_id": itemID, "type": "shipping", "amount": 5,
	})
	if status != http.StatusNotFound {
		t.Errorf("expense: expected 404, got %d", status)
	}

	status, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/v1/items/%d", itemID), mia, nil)
	if status != http.StatusNotFound {
		t.Errorf("delete: expected 404, got %d", status)
	}
}

func TestRegisterConflictOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "leo@example.com")

	status, body := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Another Leo", "email": "leo@example.com", "password": "hunter22",
	})
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	errObj := body["error"].(map[string]interface{})
	if errObj["message"] != "Email already used" {
		t.Errorf("unexpected message: %v", errObj["message"])
	}
}

func TestLogoutRevokesSessionOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "leo@example.com")

	status, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", status)
	}

	status, body := doJSON(t, srv, http.MethodGet, "/api/v1/items", token, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", status)
	}
	errObj := body["error"].(map[string]interface{})
	if errObj["message"] != "Token has been revoked" {
		t.Errorf("unexpected message: %v", errObj["message"])
	}
}
