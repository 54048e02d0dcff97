package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"firstcut/database"
	ledgerRepo "firstcut/database/repository/ledger"
	shopRepo "firstcut/database/repository/shop"
	"firstcut/handlers"
	"firstcut/services/booking"
	"firstcut/services/ledger"
	"firstcut/services/shop"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	shops := shopRepo.NewMemoryShopRepo(database.SeedShops()...)
	transactions := ledgerRepo.NewMemoryTransactionRepo(database.SeedTransactions()...)

	ledgerEngine := &ledger.DefaultEngine{Shops: shops, Transactions: transactions, Logger: logger}
	shopService := &shop.DefaultShopService{Repo: shops, Logger: logger}
	bookingService := &booking.DefaultBookingService{
		Shops:    shops,
		Ledger:   ledgerEngine,
		Sessions: booking.NewSessionStore(time.Minute),
		Logger:   logger,
	}

	hb := &HandlerBundle{
		ShopRepo: shops,
		Auth:     handlers.NewAuthHandler(shopService),
		Shop:     handlers.NewShopHandler(shopService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Wallet:   handlers.NewWalletHandler(shopService, ledgerEngine),
	}

	router := gin.New()
	RegisterRoutes(router, hb)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func login(t *testing.T, router *gin.Engine, role, identifier, password string) string {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"role":       role,
		"identifier": identifier,
		"password":   password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s/%s: status %d body %s", role, identifier, w.Code, w.Body.String())
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("login %s/%s: no token in %v", role, identifier, resp)
	}
	return token
}

func TestHealthRoute(t *testing.T) {
	router := buildRouter(t)
	w, resp := doJSON(t, router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || resp["status"] != "ok" {
		t.Fatalf("health: %d %v", w.Code, resp)
	}
}

func TestOwnerLoginRejectsBadCredentials(t *testing.T) {
	router := buildRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"role": "owner", "identifier": "rajesh@demo.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestDashboardRequiresOwnerToken(t *testing.T) {
	router := buildRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/dashboard", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}

	customerToken := login(t, router, "customer", "9990001111", "")
	w, _ = doJSON(t, router, http.MethodGet, "/api/dashboard", customerToken, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("customer token: status = %d, want 401", w.Code)
	}
}

func TestOwnerSettlementFlow(t *testing.T) {
	router := buildRouter(t)
	token := login(t, router, "owner", "rajesh@demo.com", "123")

	// Seeded wallet: pending 450, available 1200, two transactions.
	w, resp := doJSON(t, router, http.MethodGet, "/api/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d %s", w.Code, w.Body.String())
	}
	wallet := resp["shop"].(map[string]any)["wallet"].(map[string]any)
	if wallet["pending"].(float64) != 450 || wallet["available"].(float64) != 1200 {
		t.Fatalf("seed wallet = %v", wallet)
	}
	if txs := resp["transactions"].([]any); len(txs) != 2 {
		t.Fatalf("seed transactions = %d, want 2", len(txs))
	}

	// Complete jobs: pending moves to available.
	w, resp = doJSON(t, router, http.MethodPost, "/api/dashboard/complete-jobs", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete-jobs: %d %s", w.Code, w.Body.String())
	}
	wallet = resp["shop"].(map[string]any)["wallet"].(map[string]any)
	if wallet["pending"].(float64) != 0 || wallet["available"].(float64) != 1650 {
		t.Fatalf("wallet after completion = %v", wallet)
	}

	// Nothing pending now: informational notice, no fault.
	w, resp = doJSON(t, router, http.MethodPost, "/api/dashboard/complete-jobs", token, nil)
	if w.Code != http.StatusOK || resp["notice"] == nil {
		t.Fatalf("repeat complete-jobs: %d %v", w.Code, resp)
	}

	// Withdraw the full available balance.
	w, resp = doJSON(t, router, http.MethodPost, "/api/dashboard/withdraw", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("withdraw: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(resp["message"].(string), "1650") {
		t.Fatalf("withdraw message = %v", resp["message"])
	}
	wallet = resp["shop"].(map[string]any)["wallet"].(map[string]any)
	if wallet["available"].(float64) != 0 {
		t.Fatalf("available after withdrawal = %v", wallet["available"])
	}

	// Empty balance: notice again.
	w, resp = doJSON(t, router, http.MethodPost, "/api/dashboard/withdraw", token, nil)
	if w.Code != http.StatusOK || resp["notice"] == nil {
		t.Fatalf("repeat withdraw: %d %v", w.Code, resp)
	}
}

func TestCustomerBookingFlow(t *testing.T) {
	router := buildRouter(t)
	customerToken := login(t, router, "customer", "9990001111", "")

	// Quote a haircut and shave at the second seeded shop.
	w, resp := doJSON(t, router, http.MethodPost, "/api/booking/quote", customerToken, map[string]any{
		"shopId":     2,
		"serviceIds": []string{"s1", "s2"},
		"slot":       "11:00 AM",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("quote: %d %s", w.Code, w.Body.String())
	}
	bookingResp := resp["booking"].(map[string]any)
	if bookingResp["subtotal"].(float64) != 400 || bookingResp["grandTotal"].(float64) != 400 {
		t.Fatalf("quote totals = %v", bookingResp)
	}
	if bookingResp["shopEarnings"].(float64) != 360 || bookingResp["platformFee"].(float64) != 40 {
		t.Fatalf("quote split = %v", bookingResp)
	}
	bookingID := bookingResp["id"].(string)

	// Confirm payment.
	w, _ = doJSON(t, router, http.MethodPost, "/api/booking/confirm/"+bookingID, customerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm: %d %s", w.Code, w.Body.String())
	}

	// The slot is now unavailable to further quotes.
	w, _ = doJSON(t, router, http.MethodPost, "/api/booking/quote", customerToken, map[string]any{
		"shopId":     2,
		"serviceIds": []string{"s1"},
		"slot":       "11:00 AM",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("requote taken slot: %d, want 409", w.Code)
	}

	// The shop owner sees the earnings pending.
	ownerToken := login(t, router, "owner", "amit@demo.com", "123")
	w, resp = doJSON(t, router, http.MethodGet, "/api/dashboard", ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner dashboard: %d %s", w.Code, w.Body.String())
	}
	wallet := resp["shop"].(map[string]any)["wallet"].(map[string]any)
	if wallet["pending"].(float64) != 360 {
		t.Fatalf("owner pending = %v, want 360", wallet["pending"])
	}
	txs := resp["transactions"].([]any)
	if len(txs) != 1 {
		t.Fatalf("owner transactions = %d, want 1", len(txs))
	}
	tx := txs[0].(map[string]any)
	if tx["type"] != "credit" || tx["status"] != "pending" || tx["amount"].(float64) != 360 {
		t.Fatalf("booking transaction = %v", tx)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	router := buildRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/shops/register", "", map[string]any{
		"shopName":  "Sharp Lines",
		"address":   "7 Hill Road",
		"ownerName": "Dev Mehta",
		"mobile":    "5550001111",
		"email":     "dev@demo.com",
		"password":  "secret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	newShop := resp["shop"].(map[string]any)
	if newShop["id"].(float64) != 4 {
		t.Fatalf("new shop id = %v, want 4 after the three seeded shops", newShop["id"])
	}

	login(t, router, "owner", "dev@demo.com", "secret")
}

func TestShopDetailIncludesCatalog(t *testing.T) {
	router := buildRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/shops/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shop detail: %d %s", w.Code, w.Body.String())
	}
	if services := resp["services"].([]any); len(services) != 5 {
		t.Fatalf("services = %d, want 5", len(services))
	}
	slots := resp["slots"].([]any)
	if len(slots) != 12 {
		t.Fatalf("slots = %d, want 12", len(slots))
	}
	// Seeded shop 1 has 10:00 AM pre-booked.
	first := slots[0].(map[string]any)
	if first["slot"] != "10:00 AM" || first["booked"] != true {
		t.Fatalf("first slot = %v", first)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/shops/99", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown shop: %d, want 404", w.Code)
	}
}

func TestHelpRoutes(t *testing.T) {
	router := buildRouter(t)

	for _, role := range []string{"customer", "owner"} {
		w, resp := doJSON(t, router, http.MethodGet, "/api/help/"+role, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("help %s: %d", role, w.Code)
		}
		if faqs := resp["faqs"].([]any); len(faqs) != 3 {
			t.Fatalf("help %s: %d faqs, want 3", role, len(faqs))
		}
	}

	w, _ := doJSON(t, router, http.MethodGet, "/api/help/admin", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown help role: %d, want 400", w.Code)
	}
}
