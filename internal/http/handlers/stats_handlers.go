package handlers

import (
	"net/http"
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/stats"
)

// GetCustomerStatsHandler godoc
// @Summary Customer statistics for the customers page header
// @Tags stats
// @Produce json
// @Success 200 {object} stats.CustomerStats
// @Failure 500 {string} string "Internal error"
// @Router /stats/customers [get]
func GetCustomerStatsHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats.DeriveCustomerStats(customers, time.Now()))
}

// GetCaptainStatsHandler godoc
// @Summary Captain statistics for the captains page header
// @Tags stats
// @Produce json
// @Success 200 {object} stats.CaptainStats
// @Failure 500 {string} string "Internal error"
// @Router /stats/captains [get]
func GetCaptainStatsHandler(w http.ResponseWriter, r *http.Request) {
	captains, err := captainRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch captains", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats.DeriveCaptainStats(captains))
}

// GetMerchantStatsHandler godoc
// @Summary Merchant statistics with category histogram
// @Tags stats
// @Produce json
// @Success 200 {object} stats.MerchantStats
// @Failure 500 {string} string "Internal error"
// @Router /stats/merchants [get]
func GetMerchantStatsHandler(w http.ResponseWriter, r *http.Request) {
	merchants, err := merchantRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch merchants", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats.DeriveMerchantStats(merchants))
}

// GetProductStatsHandler godoc
// @Summary Product statistics for the products page header
// @Tags stats
// @Produce json
// @Success 200 {object} stats.ProductStats
// @Failure 500 {string} string "Internal error"
// @Router /stats/products [get]
func GetProductStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats.DeriveProductStats(products))
}

// GetDashboardStatsHandler godoc
// @Summary Composite dashboard statistics
// @Description Joins order, captain and customer aggregates into one record.
// @Description If any source fetch fails the whole request fails; a zeroed
// @Description field would be indistinguishable from a legitimate zero.
// @Tags stats
// @Produce json
// @Success 200 {object} stats.DashboardStats
// @Failure 500 {string} string "Internal error"
// @Router /stats/dashboard [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	captains, err := captainRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch captains", http.StatusInternalServerError)
		return
	}
	customers, err := customerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}

	src := stats.DashboardSources{
		Orders:    orders,
		Captains:  captains,
		Customers: customers,
	}
	writeJSON(w, http.StatusOK, stats.DeriveDashboardStats(src, time.Now()))
}
