package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bakery/internal/domain"
)

func newTestRouter(repo Repository) http.Handler {
	ctrl := NewController(NewCatalogUseCase(NewService(repo, nil, zap.NewNop())), zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/products", ctrl.HandleListProducts)
	r.Post("/api/products/search", ctrl.HandleSearchProducts)
	return r
}

func TestHandleListProducts(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return catalog(), nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "banana-bread", resp.Products[0].Slug)
	assert.Equal(t, "13.00", resp.Products[0].Price)
	assert.Equal(t, "2.50", resp.Products[1].Price)
}

func TestHandleListProducts_Error(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return nil, errors.New("db down") },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestHandleSearchProducts(t *testing.T) {
	var gotIDs []int
	repo := &mockRepository{
		FindByIDsFunc: func(ctx context.Context, ids []int) ([]domain.Product, error) {
			gotIDs = ids
			return catalog()[:1], nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products/search", strings.NewReader(`{"productIds":[1,9]}`))
	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{1, 9}, gotIDs)
	var resp SearchProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, []int{9}, resp.NotFound)
}

func TestHandleSearchProducts_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"productIds":`},
		{"empty ids", `{"productIds":[]}`},
		{"non-positive id", `{"productIds":[1,0]}`},
		{"too many ids", `{"productIds":[` + strings.Repeat("1,", 100) + `1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}

			req := httptest.NewRequest(http.MethodPost, "/api/products/search", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newTestRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}
