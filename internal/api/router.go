package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Cheertaboi/shop-admin/internal/api/handlers"
	"github.com/Cheertaboi/shop-admin/internal/api/middleware"
)

// AuthService backs both the login handlers and the auth middleware.
type AuthService interface {
	handlers.AuthService
	middleware.Authenticator
}

// Deps holds everything the router hands to handlers.
type Deps struct {
	DB       handlers.Pinger
	Auth     AuthService
	Coupons  handlers.CouponService
	Products handlers.ProductService
	Orders   handlers.OrderService
	Users    handlers.UserService
}

// NewRouter builds the admin API router under /api/v1/admin.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	authH := handlers.NewAuthHandler(d.Auth)
	couponH := handlers.NewCouponHandler(d.Coupons)
	productH := handlers.NewProductHandler(d.Products)
	orderH := handlers.NewOrderHandler(d.Orders)
	userH := handlers.NewUserHandler(d.Users)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Get("/health", handlers.Health(d.DB))
		r.Post("/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(d.Auth))
			r.Get("/verify", authH.Verify)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(d.Auth))

				r.Route("/coupons", func(r chi.Router) {
					r.Get("/", couponH.List)
					r.Post("/", couponH.Create)
					r.Get("/{couponID}", couponH.Get)
					r.Put("/{couponID}", couponH.Update)
					r.Delete("/{couponID}", couponH.Delete)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", productH.List)
					r.Post("/", productH.Create)
					r.Get("/{productID}", productH.Get)
					r.Put("/{productID}", productH.Update)
					r.Patch("/{productID}/availability", productH.SetAvailability)
					r.Delete("/{productID}", productH.Delete)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", orderH.List)
					r.Get("/{orderID}", orderH.Detail)
					r.Patch("/{orderID}", orderH.UpdateStatus)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userH.List)
					r.Patch("/permission", userH.SetPermission)
				})
			})
		})
	})

	return r
}
