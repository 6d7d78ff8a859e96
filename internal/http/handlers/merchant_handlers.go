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

// CreateMerchantHandler godoc
// @Summary Create a new merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchant body MerchantRequest true "Merchant to add"
// @Success 201 {object} models.Merchant
// @Failure 400 {object} map[string]string
// @Failure 403 {string} string "Forbidden"
// @Router /merchants [post]
func CreateMerchantHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageMerchants {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req MerchantRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateMerchant(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	merchant := models.Merchant{
		Name:           req.Name,
		Phone:          req.Phone,
		IsActive:       req.IsActive,
		CommissionRate: req.CommissionRate,
		Category:       req.Category,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := merchantRepo.Create(merchant)
	if err != nil {
		http.Error(w, "could not create merchant", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetMerchantsHandler godoc
// @Summary List merchants, optionally active-only or filtered by free-text query
// @Tags merchants
// @Produce json
// @Param q query string false "Search query"
// @Param active query bool false "Only active merchants"
// @Success 200 {array} models.Merchant
// @Failure 500 {string} string "Internal error"
// @Router /merchants [get]
func GetMerchantsHandler(w http.ResponseWriter, r *http.Request) {
	var merchants []models.Merchant
	var err error
	if r.URL.Query().Get("active") == "true" {
		merchants, err = merchantRepo.GetActive()
	} else {
		merchants, err = merchantRepo.GetAll()
	}
	if err != nil {
		http.Error(w, "could not fetch merchants", http.StatusInternalServerError)
		return
	}
	merchants = stats.Filter(merchants, r.URL.Query().Get("q"))
	if merchants == nil {
		merchants = []models.Merchant{}
	}
	writeJSON(w, http.StatusOK, merchants)
}

// GetMerchantByIDHandler godoc
// @Summary Get merchant by ID
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} models.Merchant
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /merchants/{id} [get]
func GetMerchantByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid merchant ID", http.StatusBadRequest)
		return
	}

	merchant, err := merchantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrMerchantNotFound) {
			http.Error(w, "merchant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch merchant", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, merchant)
}

// UpdateMerchantHandler godoc
// @Summary Update a merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Merchant ID"
// @Param merchant body MerchantRequest true "Updated merchant"
// @Success 200 {object} models.Merchant
// @Failure 400 {object} map[string]any
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /merchants/{id} [put]
func UpdateMerchantHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageMerchants {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid merchant ID", http.StatusBadRequest)
		return
	}

	var req MerchantRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateMerchant(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	existing, err := merchantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrMerchantNotFound) {
			http.Error(w, "merchant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch merchant", http.StatusInternalServerError)
		return
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.IsActive = req.IsActive
	existing.CommissionRate = req.CommissionRate
	existing.Category = req.Category

	updated, err := merchantRepo.Update(existing)
	if err != nil {
		http.Error(w, "could not update merchant", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteMerchantHandler godoc
// @Summary Delete a merchant
// @Tags merchants
// @Security BearerAuth
// @Param id path int true "Merchant ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /merchants/{id} [delete]
func DeleteMerchantHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageMerchants {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid merchant ID", http.StatusBadRequest)
		return
	}
	if err := merchantRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrMerchantNotFound) {
			http.Error(w, "merchant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete merchant", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
