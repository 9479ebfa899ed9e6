package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-order/internal/data/repository"
	"food-order/pkg/token"
	"food-order/pkg/utils"

	"go.uber.org/zap"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	tokens := token.NewManager("test-secret", time.Hour)
	config := &utils.Config{}

	app := Wiring(repo, tokens, config, zap.NewNop())

	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url, bearer string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp, env
}

func registerUser(t *testing.T, base, name, email, role string) string {
	t.Helper()

	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}
	if role != "" {
		body["role"] = role
	}

	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/auth/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, message %q", email, resp.StatusCode, env.Message)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	return data.Token
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL

	adminToken := registerUser(t, base, "Admin", "admin@example.com", "admin")
	userToken := registerUser(t, base, "Alice", "alice@example.com", "")

	// Admin creates a menu item
	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/menu", adminToken, map[string]any{
		"name":  "Burger",
		"price": 9.5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create menu item: status %d, message %q", resp.StatusCode, env.Message)
	}

	var item struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decode menu item: %v", err)
	}

	// User places an order
	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/orders", userToken, map[string]any{
		"items": []map[string]any{{"menuItemId": item.ID, "quantity": 2}},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order: status %d, message %q", resp.StatusCode, env.Message)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var order struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Total != 19.0 {
		t.Errorf("total = %v, want 19.0", order.Total)
	}
	if order.Status != "pending" {
		t.Errorf("status = %q, want pending", order.Status)
	}

	// Owner cancels the pending order
	resp, env = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/v1/orders/%s/status", base, order.ID), userToken, map[string]string{
		"status": "cancelled",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel order: status %d, message %q", resp.StatusCode, env.Message)
	}

	// Admin sets it back to completed, no transition constraint
	resp, env = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/v1/orders/%s/status", base, order.ID), adminToken, map[string]string{
		"status": "completed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin transition: status %d, message %q", resp.StatusCode, env.Message)
	}
}

func TestHTTPAuthorization(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL

	adminToken := registerUser(t, base, "Admin", "admin@example.com", "admin")
	aliceToken := registerUser(t, base, "Alice", "alice@example.com", "")
	bobToken := registerUser(t, base, "Bob", "bob@example.com", "")

	// Menu mutation requires admin
	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/menu", aliceToken, map[string]any{
		"name":  "Burger",
		"price": 9.5,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("non-admin menu create: status %d, want 403", resp.StatusCode)
	}
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}

	// Missing token on a protected route
	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/orders", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", resp.StatusCode)
	}

	// Menu listing is public
	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/menu", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("public menu list: status %d, want 200", resp.StatusCode)
	}

	// Alice's order is invisible to Bob but visible to the admin
	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/menu", adminToken, map[string]any{
		"name":  "Pizza",
		"price": 12.0,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create menu item: status %d", resp.StatusCode)
	}
	var item struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &item)

	resp, env = doJSON(t, http.MethodPost, base+"/api/v1/orders", aliceToken, map[string]any{
		"items": []map[string]any{{"menuItemId": item.ID}},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order: status %d", resp.StatusCode)
	}
	var order struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &order)

	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/orders/"+order.ID, bobToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("bob reads alice's order: status %d, want 403", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/orders/"+order.ID, adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin reads alice's order: status %d, want 200", resp.StatusCode)
	}
}

func TestHTTPMenuCRUD(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL

	adminToken := registerUser(t, base, "Admin", "admin@example.com", "admin")

	// Invalid price rejected
	resp, _ := doJSON(t, http.MethodPost, base+"/api/v1/menu", adminToken, map[string]any{
		"name":  "Broken",
		"price": -1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative price: status %d, want 400", resp.StatusCode)
	}

	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/menu", adminToken, map[string]any{
		"name":  "Burger",
		"price": 9.5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var item struct {
		ID string `json:"id"`
	}
	json.Unmarshal(env.Data, &item)

	resp, env = doJSON(t, http.MethodPut, base+"/api/v1/menu/"+item.ID, adminToken, map[string]any{
		"isAvailable": false,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d, message %q", resp.StatusCode, env.Message)
	}

	// Unavailable items drop out of the available listing
	resp, env = doJSON(t, http.MethodGet, base+"/api/v1/menu?available=true", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	var items []json.RawMessage
	json.Unmarshal(env.Data, &items)
	if len(items) != 0 {
		t.Errorf("available listing has %d items, want 0", len(items))
	}

	resp, _ = doJSON(t, http.MethodDelete, base+"/api/v1/menu/"+item.ID, adminToken, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete: status %d, want 204", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/menu/"+item.ID, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get deleted: status %d, want 404", resp.StatusCode)
	}
}

func TestHTTPDuplicateRegistration(t *testing.T) {
	server := setupTestServer(t)
	base := server.URL

	registerUser(t, base, "Alice", "alice@example.com", "")

	resp, env := doJSON(t, http.MethodPost, base+"/api/v1/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate email: status %d, want 409", resp.StatusCode)
	}
	if env.Status != "error" || env.Message == "" {
		t.Errorf("envelope = %+v", env)
	}
}
