package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
	"github.com/tawsil-app/ops-dashboard/internal/stats"
)

// CreateOrderHandler godoc
// @Summary Create a new order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to add"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 403 {string} string "Forbidden"
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageOrders {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	order := models.Order{
		Status:      req.Status,
		Amount:      req.Amount,
		CustomerID:  req.CustomerID,
		MerchantID:  req.MerchantID,
		CaptainID:   req.CaptainID,
		CreatedAt:   time.Now().UTC(),
		CompletedAt: req.CompletedAt,
	}
	created, err := orderRepo.Create(order)
	if err != nil {
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetOrdersHandler godoc
// @Summary List orders, optionally filtered by free-text query
// @Tags orders
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Order
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	orders = stats.Filter(orders, r.URL.Query().Get("q"))
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderHandler godoc
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param order body OrderRequest true "Updated order"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]any
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageOrders {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	existing.Status = req.Status
	existing.Amount = req.Amount
	existing.CaptainID = req.CaptainID
	existing.CompletedAt = req.CompletedAt

	updated, err := orderRepo.Update(existing)
	if err != nil {
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageOrders {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}
	if err := orderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
