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

func TestUpdateOrder(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/orders", handler.OrderRequest{Status: models.OrderPending, Amount: 40, CustomerID: 1, MerchantID: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("order creation failed: %d %s", w.Code, w.Body.String())
	}
	var created models.Order
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}

	captainID := 7
	update := handler.OrderRequest{Status: models.OrderInProgress, Amount: 40, CustomerID: 1, MerchantID: 1, CaptainID: &captainID}
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/orders/%d", created.ID), update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d %s", w.Code, w.Body.String())
	}

	var updated models.Order
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	if updated.Status != models.OrderInProgress || updated.CaptainID == nil || *updated.CaptainID != 7 {
		t.Errorf("unexpected order after update: %+v", updated)
	}
}

func TestUpdateOrderRejectsTrailingJSON(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/orders", handler.OrderRequest{Status: models.OrderPending, Amount: 40, CustomerID: 1, MerchantID: 1})
	var created models.Order
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}

	// Two JSON values in one body must be rejected, same as on create.
	body := []byte(`{"status":"pending","amount":10,"customer_id":1,"merchant_id":1}{"status":"delivered"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/orders/%d", created.ID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a body with trailing JSON, got %d", rec.Code)
	}
}
