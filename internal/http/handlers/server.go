package handlers

import (
	"github.com/tawsil-app/ops-dashboard/internal/repo"
)

var (
	orderRepo    repo.OrderRepository
	captainRepo  repo.CaptainRepository
	customerRepo repo.CustomerRepository
	merchantRepo repo.MerchantRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
)

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetCaptainRepo(r repo.CaptainRepository) {
	captainRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetMerchantRepo(r repo.MerchantRepository) {
	merchantRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
