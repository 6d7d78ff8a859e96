package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	"github.com/tawsil-app/ops-dashboard/internal/http/router"
)

func doRefresh(r http.Handler, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRefreshIssuesNewToken(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	// The suite logged in as admin at init, so its token is the stored one.
	w := doRefresh(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d %s", w.Code, w.Body.String())
	}

	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode refresh result: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token in the refresh response")
	}

	// The refreshed token carries the admin role and works on guarded routes.
	body, _ := json.Marshal(handler.CustomerRequest{Name: "Ahmed", Phone: "0501111111", IsActive: true})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+result.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected the refreshed token to create a customer, got %d", rec.Code)
	}

	// The refreshed token is now the stored one and can be redeemed again.
	w = doRefresh(r, result.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected a second refresh to succeed, got %d", w.Code)
	}
	var second handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("failed to decode refresh result: %v", err)
	}
	token = second.Token
}

func TestRefreshRejectsUnstoredToken(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	// Registration returns a valid JWT but never stores it for redemption.
	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "viewer2", Password: "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", w.Code, w.Body.String())
	}
	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil {
		t.Fatalf("failed to decode registration result: %v", err)
	}

	if w := doRefresh(r, reg.Token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token that was never issued at login, got %d", w.Code)
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	r := router.NewRouter()

	if w := doRefresh(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
	if w := doRefresh(r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a malformed token, got %d", w.Code)
	}
}
