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

// CreateCustomerHandler godoc
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body CustomerRequest true "Customer to add"
// @Success 201 {object} models.Customer
// @Failure 400 {object} map[string]string
// @Failure 403 {string} string "Forbidden"
// @Router /customers [post]
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCustomers {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCustomer(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	customer := models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		IsActive:  req.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	created, err := customerRepo.Create(customer)
	if err != nil {
		http.Error(w, "could not create customer", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetCustomersHandler godoc
// @Summary List customers, optionally filtered by free-text query
// @Tags customers
// @Produce json
// @Param q query string false "Search query (name, phone, email, city)"
// @Success 200 {array} models.Customer
// @Failure 500 {string} string "Internal error"
// @Router /customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}
	customers = stats.Filter(customers, r.URL.Query().Get("q"))
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// GetCustomerByIDHandler godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [get]
func GetCustomerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer ID", http.StatusBadRequest)
		return
	}

	customer, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch customer", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomerHandler godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param customer body CustomerRequest true "Updated customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]any
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [put]
func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCustomers {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer ID", http.StatusBadRequest)
		return
	}

	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCustomer(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch customer", http.StatusInternalServerError)
		return
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.City = req.City
	existing.IsActive = req.IsActive

	updated, err := customerRepo.Update(existing)
	if err != nil {
		http.Error(w, "could not update customer", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [delete]
func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCustomers {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer ID", http.StatusBadRequest)
		return
	}
	if err := customerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete customer", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
