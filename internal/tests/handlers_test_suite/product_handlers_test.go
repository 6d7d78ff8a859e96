package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	"github.com/tawsil-app/ops-dashboard/internal/http/router"
)

func TestCreateProductFlagsLowStock(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{MerchantID: 1, Name: "Dates box", Status: "active", Price: 12.5, Stock: 4})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d %s", w.Code, w.Body.String())
	}

	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}
	if !created.LowStock {
		t.Errorf("expected stock 4 to be flagged low, got %+v", created)
	}

	w = doJSON(r, http.MethodPost, "/products", handler.ProductRequest{MerchantID: 1, Name: "Olive oil", Status: "active", Price: 8, Stock: 20})
	var second handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}
	// The threshold is exclusive; a stock of exactly 20 is not low.
	if second.LowStock {
		t.Errorf("expected stock 20 not to be flagged low, got %+v", second)
	}
}

func TestCreateProductValidation(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{Name: "", Price: -1, Stock: -5})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var errs []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("failed to decode validation errors: %v", err)
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 validation errors, got %v", errs)
	}
}

func TestGetActiveProducts(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	products := []handler.ProductRequest{
		{MerchantID: 1, Name: "Dates box", Status: "active", Price: 10, Stock: 30},
		{MerchantID: 1, Name: "Honey jar", Status: "archived", Price: 7, Stock: 10},
	}
	for _, p := range products {
		if w := doJSON(r, http.MethodPost, "/products", p); w.Code != http.StatusCreated {
			t.Fatalf("product creation failed: %d", w.Code)
		}
	}

	w := doGet(r, "/products?active=true")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var active []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&active); err != nil {
		t.Fatalf("failed to decode products: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Dates box" {
		t.Errorf("expected only the active product, got %+v", active)
	}

	w = doGet(r, "/products")
	var all []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&all); err != nil {
		t.Fatalf("failed to decode products: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected both products without the filter, got %+v", all)
	}
}

func TestUpdateProduct(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{MerchantID: 1, Name: "Dates box", Status: "active", Price: 10, Stock: 30})
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}

	update := handler.ProductRequest{MerchantID: 1, Name: "Dates box", Status: "archived", Price: 9.5, Stock: 2}
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d %s", w.Code, w.Body.String())
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}
	if updated.Status != "archived" || updated.Price != 9.5 || !updated.LowStock {
		t.Errorf("unexpected product after update: %+v", updated)
	}
}

func TestDeleteProduct(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{MerchantID: 1, Name: "Honey jar", Status: "active", Price: 7, Stock: 40})
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	if w := doGet(r, fmt.Sprintf("/products/%d", created.ID)); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestProductNotFound(t *testing.T) {
	t.Cleanup(clearAllRepos)
	r := router.NewRouter()

	if w := doGet(r, "/products/9999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
	update := handler.ProductRequest{MerchantID: 1, Name: "Ghost", Status: "active", Price: 1, Stock: 1}
	if w := doJSON(r, http.MethodPut, "/products/9999", update); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found on update, got %d", w.Code)
	}
}
