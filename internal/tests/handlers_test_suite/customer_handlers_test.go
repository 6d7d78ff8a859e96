package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	"github.com/tawsil-app/ops-dashboard/internal/http/router"
	"github.com/tawsil-app/ops-dashboard/internal/models"
)

func TestCreateAndGetCustomer(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	payload := handler.CustomerRequest{Name: "Ahmed", Phone: "0501111111", Email: "ahmed@example.com", City: "Riyadh", IsActive: true}
	w := doJSON(r, http.MethodPost, "/customers", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d %s", w.Code, w.Body.String())
	}

	var created models.Customer
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode customer: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a non-zero ID")
	}
	if created.Name != "Ahmed" || created.City != "Riyadh" {
		t.Errorf("unexpected customer: %+v", created)
	}

	w = doGet(r, fmt.Sprintf("/customers/%d", created.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var fetched models.Customer
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode customer: %v", err)
	}
	if fetched.ID != created.ID || fetched.Phone != "0501111111" {
		t.Errorf("unexpected customer: %+v", fetched)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/customers", handler.CustomerRequest{Name: "  ", Phone: ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var errs []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("failed to decode validation errors: %v", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 validation errors, got %v", errs)
	}
}

func TestSearchCustomers(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	customers := []handler.CustomerRequest{
		{Name: "Ahmed Ali", Phone: "0501111111", IsActive: true},
		{Name: "Sara", Phone: "0502222222", Email: "sara@example.com", IsActive: true},
	}
	for _, c := range customers {
		if w := doJSON(r, http.MethodPost, "/customers", c); w.Code != http.StatusCreated {
			t.Fatalf("customer creation failed: %d", w.Code)
		}
	}

	w := doGet(r, "/customers?q=ahm")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var matches []models.Customer
	if err := json.NewDecoder(w.Body).Decode(&matches); err != nil {
		t.Fatalf("failed to decode customers: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Ahmed Ali" {
		t.Errorf("expected the query to match only Ahmed Ali, got %+v", matches)
	}

	// Matching is case-insensitive across all searchable fields.
	w = doGet(r, "/customers?q=SARA@EXAMPLE")
	if err := json.NewDecoder(w.Body).Decode(&matches); err != nil {
		t.Fatalf("failed to decode customers: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Sara" {
		t.Errorf("expected the email query to match only Sara, got %+v", matches)
	}
}

func TestUpdateCustomer(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/customers", handler.CustomerRequest{Name: "Omar", Phone: "0503333333", IsActive: true})
	var created models.Customer
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode customer: %v", err)
	}

	update := handler.CustomerRequest{Name: "Omar", Phone: "0509999999", City: "Jeddah", IsActive: false}
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/customers/%d", created.ID), update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d %s", w.Code, w.Body.String())
	}

	var updated models.Customer
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode customer: %v", err)
	}
	if updated.Phone != "0509999999" || updated.City != "Jeddah" || updated.IsActive {
		t.Errorf("unexpected customer after update: %+v", updated)
	}
}

func TestDeleteCustomer(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/customers", handler.CustomerRequest{Name: "Lina", Phone: "0504444444", IsActive: true})
	var created models.Customer
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode customer: %v", err)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/customers/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doGet(r, fmt.Sprintf("/customers/%d", created.ID))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCustomerNotFound(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	if w := doGet(r, "/customers/9999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/customers/9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found on delete, got %d", w.Code)
	}
}

func TestCreateCustomerRequiresToken(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	body, _ := json.Marshal(handler.CustomerRequest{Name: "Ahmed", Phone: "0501111111"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestViewerCannotManageCustomers(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	// Registration hands out viewer tokens, which carry no manage rights.
	w := doJSON(r, http.MethodPost, "/register", handler.CredentialsRequest{Username: "viewer1", Password: "secret123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d %s", w.Code, w.Body.String())
	}
	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil {
		t.Fatalf("failed to decode registration result: %v", err)
	}

	body, _ := json.Marshal(handler.CustomerRequest{Name: "Ahmed", Phone: "0501111111"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a viewer token, got %d", rec.Code)
	}
}
