package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	handler "github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	rl "github.com/tawsil-app/ops-dashboard/internal/http/rate_limiter"
	"github.com/tawsil-app/ops-dashboard/internal/http/router"
	"github.com/tawsil-app/ops-dashboard/internal/models"
	"github.com/tawsil-app/ops-dashboard/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token        string
	orderRepo    *repo.InMemoryOrderRepository
	captainRepo  *repo.InMemoryCaptainRepository
	customerRepo *repo.InMemoryCustomerRepository
	merchantRepo *repo.InMemoryMerchantRepository
	productRepo  *repo.InMemoryProductRepository
)

func init() {
	// Every test shares one client IP; keep the limiter out of the way.
	rl.Configure(1000, 1000)

	setupTestRepos("secret")
	r := router.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	captainRepo = repo.NewInMemoryCaptainRepository()
	handler.SetCaptainRepo(captainRepo)

	customerRepo = repo.NewInMemoryCustomerRepository()
	handler.SetCustomerRepo(customerRepo)

	merchantRepo = repo.NewInMemoryMerchantRepository()
	handler.SetMerchantRepo(merchantRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func clearAllRepos() {
	orderRepo.Clear()
	captainRepo.Clear()
	customerRepo.Clear()
	merchantRepo.Clear()
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
