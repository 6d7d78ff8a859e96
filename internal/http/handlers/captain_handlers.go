package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
	"github.com/tawsil-app/ops-dashboard/internal/stats"
)

func captainCard(c models.Captain) CaptainCard {
	return CaptainCard{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		IsActive:        c.IsActive,
		IsAvailable:     c.IsAvailable,
		VehicleType:     c.VehicleType,
		AverageRating:   fmt.Sprintf("%.1f", c.AverageRating),
		TotalDeliveries: c.TotalDeliveries,
		SuccessRate:     c.SuccessRate,
	}
}

// CreateCaptainHandler godoc
// @Summary Register a new delivery captain
// @Tags captains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param captain body CaptainRequest true "Captain to add"
// @Success 201 {object} CaptainCard
// @Failure 400 {object} map[string]string
// @Failure 403 {string} string "Forbidden"
// @Router /captains [post]
func CreateCaptainHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCaptains {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req CaptainRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCaptain(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	captain := models.Captain{
		Name:            req.Name,
		Phone:           req.Phone,
		IsActive:        req.IsActive,
		IsAvailable:     req.IsAvailable,
		VehicleType:     req.VehicleType,
		AverageRating:   req.AverageRating,
		TotalDeliveries: req.TotalDeliveries,
		SuccessRate:     req.SuccessRate,
	}
	created, err := captainRepo.Create(captain)
	if err != nil {
		http.Error(w, "could not create captain", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, captainCard(created))
}

// GetCaptainsHandler godoc
// @Summary List captains as display cards, optionally filtered by free-text query
// @Tags captains
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} CaptainCard
// @Failure 500 {string} string "Internal error"
// @Router /captains [get]
func GetCaptainsHandler(w http.ResponseWriter, r *http.Request) {
	captains, err := captainRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch captains", http.StatusInternalServerError)
		return
	}
	captains = stats.Filter(captains, r.URL.Query().Get("q"))

	cards := make([]CaptainCard, len(captains))
	for i, c := range captains {
		cards[i] = captainCard(c)
	}
	writeJSON(w, http.StatusOK, cards)
}

// GetCaptainByIDHandler godoc
// @Summary Get captain card by ID
// @Tags captains
// @Produce json
// @Param id path int true "Captain ID"
// @Success 200 {object} CaptainCard
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /captains/{id} [get]
func GetCaptainByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid captain ID", http.StatusBadRequest)
		return
	}

	captain, err := captainRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCaptainNotFound) {
			http.Error(w, "captain not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch captain", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, captainCard(captain))
}

// UpdateCaptainHandler godoc
// @Summary Update a captain
// @Tags captains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Captain ID"
// @Param captain body CaptainRequest true "Updated captain"
// @Success 200 {object} CaptainCard
// @Failure 400 {object} map[string]any
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /captains/{id} [put]
func UpdateCaptainHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCaptains {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid captain ID", http.StatusBadRequest)
		return
	}

	var req CaptainRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCaptain(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	captain := models.Captain{
		ID:              id,
		Name:            req.Name,
		Phone:           req.Phone,
		IsActive:        req.IsActive,
		IsAvailable:     req.IsAvailable,
		VehicleType:     req.VehicleType,
		AverageRating:   req.AverageRating,
		TotalDeliveries: req.TotalDeliveries,
		SuccessRate:     req.SuccessRate,
	}
	updated, err := captainRepo.Update(captain)
	if err != nil {
		if errors.Is(err, repo.ErrCaptainNotFound) {
			http.Error(w, "captain not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update captain", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, captainCard(updated))
}

// DeleteCaptainHandler godoc
// @Summary Delete a captain
// @Tags captains
// @Security BearerAuth
// @Param id path int true "Captain ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /captains/{id} [delete]
func DeleteCaptainHandler(w http.ResponseWriter, r *http.Request) {
	if !permissions(r).ManageCaptains {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid captain ID", http.StatusBadRequest)
		return
	}
	if err := captainRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCaptainNotFound) {
			http.Error(w, "captain not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete captain", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
