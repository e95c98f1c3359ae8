package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"europlast-backend/internal/domain"
	"europlast-backend/internal/usecase"
	"europlast-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) Load(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Navigation: []domain.NavItem{
			{Name: "Home", Href: "/"},
			{Name: "Products", Href: "/products"},
			{Name: "Contact", Href: "/contact"},
		},
		Categories: []domain.ProductCategory{
			{ID: "all", Name: "All Products"},
			{ID: "food", Name: "Food Packaging"},
			{ID: "industrial", Name: "Industrial"},
		},
		Products: []domain.Product{
			{ID: 1, Name: "Food Containers", Category: "food", Featured: true},
			{ID: 2, Name: "Industrial Drums", Category: "industrial"},
			{ID: 3, Name: "Bottles", Category: "food"},
		},
		HomeStats: []domain.Stat{{Label: "Years of Experience", Value: "25+"}},
		Offices:   []domain.Office{{City: "Kaçanik", Country: "Kosovo"}},
	}
}

func newCatalogUC() (domain.CatalogUsecase, *MockCatalogRepo) {
	repo := new(MockCatalogRepo)
	repo.On("Load", mock.Anything).Return(testCatalog(), nil)
	return usecase.NewCatalogUsecase(repo), repo
}

func activeNames(items []domain.NavItem) []string {
	var names []string
	for _, item := range items {
		if item.Active {
			names = append(names, item.Name)
		}
	}
	return names
}

func TestNavigationActiveItem(t *testing.T) {
	uc, _ := newCatalogUC()
	ctx := context.Background()

	tests := []struct {
		path string
		want []string
	}{
		{"/products", []string{"Products"}},
		{"/products/", []string{"Products"}},
		{"/", []string{"Home"}},
		{"/products/3", nil},
		{"/unknown", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			items, err := uc.Navigation(ctx, tt.path)
			require.NoError(t, err)
			assert.Len(t, items, 3)
			assert.Equal(t, tt.want, activeNames(items))
		})
	}
}

func TestNavigationDoesNotMutateCatalog(t *testing.T) {
	uc, repo := newCatalogUC()
	_, err := uc.Navigation(context.Background(), "/contact")
	require.NoError(t, err)

	c, _ := repo.Load(context.Background())
	for _, item := range c.Navigation {
		assert.False(t, item.Active)
	}
}

func TestProductsByCategory(t *testing.T) {
	uc, _ := newCatalogUC()
	ctx := context.Background()

	all, err := uc.Products(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	all, err = uc.Products(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	food, err := uc.Products(ctx, "Food")
	require.NoError(t, err)
	require.Len(t, food, 2)
	for _, p := range food {
		assert.Equal(t, "food", p.Category)
	}

	_, err = uc.Products(ctx, "toys")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestProductByID(t *testing.T) {
	uc, _ := newCatalogUC()

	p, err := uc.Product(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Industrial Drums", p.Name)

	_, err = uc.Product(context.Background(), 99)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestHomeShowsFeaturedProducts(t *testing.T) {
	uc, _ := newCatalogUC()

	home, err := uc.Home(context.Background())
	require.NoError(t, err)
	require.Len(t, home.Products, 1)
	assert.Equal(t, 1, home.Products[0].ID)
	assert.Equal(t, "25+", home.Stats[0].Value)
}

func TestContactInfo(t *testing.T) {
	uc, _ := newCatalogUC()

	info, err := uc.ContactInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kosovo", info.Offices[0].Country)
}

func TestCatalogLoadError(t *testing.T) {
	repo := new(MockCatalogRepo)
	repo.On("Load", mock.Anything).Return(nil, errors.New("corrupt catalog"))
	uc := usecase.NewCatalogUsecase(repo)

	_, err := uc.About(context.Background())
	assert.ErrorContains(t, err, "corrupt catalog")
}
