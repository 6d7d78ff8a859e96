package handlers

import (
	"strings"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var orderStatuses = map[string]bool{
	models.OrderPending:    true,
	models.OrderInProgress: true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

var vehicleTypes = map[string]bool{
	models.VehicleMotorcycle: true,
	models.VehicleCar:        true,
	models.VehicleBicycle:    true,
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if !orderStatuses[o.Status] {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be one of pending, in_progress, delivered, cancelled"})
	}
	if o.Amount < 0 {
		errs = append(errs, ValidationError{Field: "Amount", Description: "Amount cannot be negative"})
	}
	if o.CustomerID <= 0 {
		errs = append(errs, ValidationError{Field: "CustomerID", Description: "CustomerID is required"})
	}
	if o.MerchantID <= 0 {
		errs = append(errs, ValidationError{Field: "MerchantID", Description: "MerchantID is required"})
	}
	return errs
}

func validateCaptain(c CaptainRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if !vehicleTypes[c.VehicleType] {
		errs = append(errs, ValidationError{Field: "VehicleType", Description: "VehicleType must be one of motorcycle, car, bicycle"})
	}
	if c.AverageRating < 0 || c.AverageRating > 5 {
		errs = append(errs, ValidationError{Field: "AverageRating", Description: "AverageRating must be between 0.0 and 5.0"})
	}
	if c.TotalDeliveries < 0 {
		errs = append(errs, ValidationError{Field: "TotalDeliveries", Description: "TotalDeliveries cannot be negative"})
	}
	if c.SuccessRate < 0 || c.SuccessRate > 100 {
		errs = append(errs, ValidationError{Field: "SuccessRate", Description: "SuccessRate must be between 0 and 100"})
	}
	return errs
}

func validateCustomer(c CustomerRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, ValidationError{Field: "Phone", Description: "Phone is required"})
	}
	return errs
}

func validateMerchant(m MerchantRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if m.CommissionRate < 0 || m.CommissionRate > 100 {
		errs = append(errs, ValidationError{Field: "CommissionRate", Description: "CommissionRate must be between 0 and 100"})
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.MerchantID <= 0 {
		errs = append(errs, ValidationError{Field: "MerchantID", Description: "MerchantID is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}
