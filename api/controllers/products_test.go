package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stockroomhq/stockroom-backend/internal/products"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	"github.com/stockroomhq/stockroom-backend/pkg/types"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProductsRouter(t *testing.T) chi.Router {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Product{}))

	svc, err := products.NewService(products.NewRepository(conn))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/api/products", CreateProduct(svc, nil))
	r.Get("/api/products", ListProducts(svc, nil))
	r.Get("/api/products/{id}", GetProduct(svc, nil))
	r.Put("/api/products/{id}", UpdateProduct(svc, nil))
	r.Delete("/api/products/{id}", DeleteProduct(svc, nil))
	return r
}

func TestCreateProductDefaultsInStock(t *testing.T) {
	router := newProductsRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]any{
		"name":  "Desk Lamp",
		"price": 24.99,
		"tags":  []string{"lighting", "desk"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Message string              `json:"message"`
		Data    products.ProductDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Product created successfully", envelope.Message)
	require.True(t, envelope.Data.InStock)
	require.Equal(t, []string{"lighting", "desk"}, envelope.Data.Tags)
}

func TestCreateProductRequiresNameAndPrice(t *testing.T) {
	router := newProductsRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]any{
		"description": "no name or price supplied",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Details []types.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	fields := map[string]bool{}
	for _, detail := range envelope.Details {
		fields[detail.Field] = true
	}
	require.True(t, fields["name"])
	require.True(t, fields["price"])
}

func TestGetProductMissing(t *testing.T) {
	router := newProductsRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/products/cccccccccccccccccccccccc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "Product not found", envelope.Error)
}

func TestListProductsFiltersByTag(t *testing.T) {
	router := newProductsRouter(t)
	for _, p := range []map[string]any{
		{"name": "Desk Lamp", "price": 24.99, "tags": []string{"desk"}},
		{"name": "Chair", "price": 89.0, "tags": []string{"desk", "seating"}},
		{"name": "Kettle", "price": 35.0, "tags": []string{"kitchen"}},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/products", p)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/products?tag=desk", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []products.ProductDTO `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
			Limit int   `json:"limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, int64(2), envelope.Meta.Total)
	require.Equal(t, products.DefaultPageLimit, envelope.Meta.Limit)
	require.Len(t, envelope.Data, 2)
}

func TestUpdateProductStockFlag(t *testing.T) {
	router := newProductsRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]any{
		"name":  "Desk Lamp",
		"price": 24.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data products.ProductDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/api/products/"+created.Data.ID, map[string]any{"inStock": false})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Data products.ProductDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.False(t, updated.Data.InStock)
	require.Equal(t, "Desk Lamp", updated.Data.Name)
}
