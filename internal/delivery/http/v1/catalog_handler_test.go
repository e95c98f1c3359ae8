package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"europlast-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationMarksActiveRoute(t *testing.T) {
	r := newTestRouter(new(MockContactUsecase), testConfig())

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/v1/site/navigation?path=/technology/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.NavItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 6)
	for _, item := range items {
		assert.Equal(t, item.Href == "/technology", item.Active, item.Name)
	}
}

func TestProductsEndpoints(t *testing.T) {
	r := newTestRouter(new(MockContactUsecase), testConfig())

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products?category=agriculture", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Agricultural Black Foil", products[0].Name)
	assert.Equal(t, "Greenhouse Films", products[1].Name)

	w, _ = do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products?category=toys", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var categories []domain.ProductCategory
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 4)

	w, env = do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products/6", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var product domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Food Grade Bags", product.Name)
	assert.Equal(t, "Food-grade PE", product.Specs["material"])

	w, env = do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID", env.Message)

	w, _ = do(t, r, httptest.NewRequest(http.MethodGet, "/v1/products/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPageEndpoints(t *testing.T) {
	r := newTestRouter(new(MockContactUsecase), testConfig())

	for _, path := range []string{"/v1/home", "/v1/uses", "/v1/technology", "/v1/about", "/v1/site/footer", "/v1/contact/info", "/v1/health"} {
		t.Run(path, func(t *testing.T) {
			w, env := do(t, r, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, env.Success)
			assert.NotEmpty(t, env.Data)
		})
	}
}
