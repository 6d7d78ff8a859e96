package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tawsil-app/ops-dashboard/docs"
	"github.com/tawsil-app/ops-dashboard/internal/http/handlers"
	mw "github.com/tawsil-app/ops-dashboard/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
	r.Get("/captains", handlers.GetCaptainsHandler)
	r.Get("/captains/{id}", handlers.GetCaptainByIDHandler)
	r.Get("/customers", handlers.GetCustomersHandler)
	r.Get("/customers/{id}", handlers.GetCustomerByIDHandler)
	r.Get("/merchants", handlers.GetMerchantsHandler)
	r.Get("/merchants/{id}", handlers.GetMerchantByIDHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Get("/stats/dashboard", handlers.GetDashboardStatsHandler)
	r.Get("/stats/customers", handlers.GetCustomerStatsHandler)
	r.Get("/stats/captains", handlers.GetCaptainStatsHandler)
	r.Get("/stats/merchants", handlers.GetMerchantStatsHandler)
	r.Get("/stats/products", handlers.GetProductStatsHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)
		r.Post("/orders", handlers.CreateOrderHandler)
		r.Put("/orders/{id}", handlers.UpdateOrderHandler)
		r.Delete("/orders/{id}", handlers.DeleteOrderHandler)
		r.Post("/captains", handlers.CreateCaptainHandler)
		r.Put("/captains/{id}", handlers.UpdateCaptainHandler)
		r.Delete("/captains/{id}", handlers.DeleteCaptainHandler)
		r.Post("/customers", handlers.CreateCustomerHandler)
		r.Put("/customers/{id}", handlers.UpdateCustomerHandler)
		r.Delete("/customers/{id}", handlers.DeleteCustomerHandler)
		r.Post("/merchants", handlers.CreateMerchantHandler)
		r.Put("/merchants/{id}", handlers.UpdateMerchantHandler)
		r.Delete("/merchants/{id}", handlers.DeleteMerchantHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
