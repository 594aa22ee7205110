package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stockroomhq/stockroom-backend/api/controllers"
	"github.com/stockroomhq/stockroom-backend/api/middleware"
	"github.com/stockroomhq/stockroom-backend/internal/auth"
	"github.com/stockroomhq/stockroom-backend/internal/describe"
	"github.com/stockroomhq/stockroom-backend/internal/items"
	"github.com/stockroomhq/stockroom-backend/internal/products"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"github.com/stockroomhq/stockroom-backend/pkg/metrics"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.HTTPMetrics
	Items    items.Service
	Products products.Service
	Auth     auth.Service
	Describe describe.Generator
}

// New assembles the full route tree. Reads are open; item writes require a
// bearer token, item deletes additionally require the admin role, and
// product writes are gated only when the feature flag says so.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.RequestID(d.Logger))
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.CORS(d.Config.CORS.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/health/live", controllers.Liveness())
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	authRequired := middleware.Auth(d.Config.JWT, d.Logger)
	adminOnly := middleware.RequireAdmin(d.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", controllers.Login(d.Auth, d.Logger))

		api.Route("/items", func(ir chi.Router) {
			ir.Get("/", controllers.ListItems(d.Items, d.Logger))
			ir.Get("/stats", controllers.ItemStatistics(d.Items, d.Logger))
			ir.Get("/categories", controllers.ItemCategories(d.Items, d.Logger))
			ir.Post("/generate-description", controllers.GenerateDescription(d.Describe, d.Logger))
			ir.Get("/{id}", controllers.GetItem(d.Items, d.Logger))

			ir.With(authRequired).Post("/", controllers.CreateItem(d.Items, d.Logger))
			ir.With(authRequired).Put("/{id}", controllers.UpdateItem(d.Items, d.Logger))
			ir.With(authRequired, adminOnly).Delete("/{id}", controllers.DeleteItem(d.Items, d.Logger))
		})

		api.Route("/products", func(pr chi.Router) {
			pr.Get("/", controllers.ListProducts(d.Products, d.Logger))
			pr.Get("/{id}", controllers.GetProduct(d.Products, d.Logger))

			pr.Group(func(writes chi.Router) {
				if d.Config.Features.ProtectProductWrites {
					writes.Use(authRequired)
				}
				writes.Post("/", controllers.CreateProduct(d.Products, d.Logger))
				writes.Put("/{id}", controllers.UpdateProduct(d.Products, d.Logger))
				writes.Delete("/{id}", controllers.DeleteProduct(d.Products, d.Logger))
			})
		})
	})

	return r
}
