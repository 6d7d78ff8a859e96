package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
	"github.com/tawsil-app/ops-dashboard/internal/stats"
)

func productResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		MerchantID: p.MerchantID,
		Name:       p.Name,
		Status:     p.Status,
		Price:      p.Price,
		Stock:      p.Stock,
		LowStock:   p.Stock < models.LowStockThreshold,
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {string} string "Forbidden"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageProducts {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		MerchantID: req.MerchantID,
		Name:       req.Name,
		Status:     req.Status,
		Price:      req.Price,
		Stock:      req.Stock,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, productResponse(created))
}

// GetProductsHandler godoc
// @Summary List products, optionally active-only or filtered by free-text query
// @Tags products
// @Produce json
// @Param q query string false "Search query"
// @Param active query bool false "Only active products"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	var err error
	if r.URL.Query().Get("active") == "true" {
		products, err = productRepo.GetActive()
	} else {
		products, err = productRepo.GetAll()
	}
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	products = stats.Filter(products, r.URL.Query().Get("q"))

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, productResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} map[string]any
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageProducts {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		ID:         id,
		MerchantID: req.MerchantID,
		Name:       req.Name,
		Status:     req.Status,
		Price:      req.Price,
		Stock:      req.Stock,
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, productResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageProducts {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
