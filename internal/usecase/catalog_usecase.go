package usecase

import (
	"context"
	"fmt"
	"strings"

	"europlast-backend/internal/domain"
	"europlast-backend/pkg/apperror"
)

// AllCategories selects every product.
const AllCategories = "all"

type catalogUsecase struct {
	repo domain.CatalogRepository
}

func NewCatalogUsecase(repo domain.CatalogRepository) domain.CatalogUsecase {
	return &catalogUsecase{repo: repo}
}

func (u *catalogUsecase) load(ctx context.Context) (*domain.Catalog, error) {
	c, err := u.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// Navigation marks the item whose href equals activePath. A trailing slash
// is ignored, and "/" only matches the home item.
func (u *catalogUsecase) Navigation(ctx context.Context, activePath string) ([]domain.NavItem, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	active := normalizePath(activePath)
	items := make([]domain.NavItem, len(c.Navigation))
	for i, item := range c.Navigation {
		item.Active = active != "" && normalizePath(item.Href) == active
		items[i] = item
	}
	return items, nil
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

func (u *catalogUsecase) Footer(ctx context.Context) ([]domain.FooterSection, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Footer, nil
}

func (u *catalogUsecase) Home(ctx context.Context) (*domain.HomePage, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Product, 0)
	for _, p := range c.Products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return &domain.HomePage{
		Products:       featured,
		Stats:          c.HomeStats,
		Certifications: c.HomeCerts,
	}, nil
}

func (u *catalogUsecase) Categories(ctx context.Context) ([]domain.ProductCategory, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Categories, nil
}

func (u *catalogUsecase) Products(ctx context.Context, category string) ([]domain.Product, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == AllCategories {
		return c.Products, nil
	}

	known := false
	for _, cat := range c.Categories {
		if cat.ID == category {
			known = true
			break
		}
	}
	if !known {
		return nil, apperror.NotFound(fmt.Sprintf("Unknown product category %q", category))
	}

	filtered := make([]domain.Product, 0)
	for _, p := range c.Products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *catalogUsecase) Product(ctx context.Context, id int) (*domain.Product, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range c.Products {
		if c.Products[i].ID == id {
			p := c.Products[i]
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Product not found")
}

func (u *catalogUsecase) Uses(ctx context.Context) (*domain.UsesPage, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.UsesPage{Applications: c.Applications, Stats: c.UsesStats}, nil
}

func (u *catalogUsecase) Technology(ctx context.Context) (*domain.TechnologyPage, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.TechnologyPage{
		Technologies:   c.Technologies,
		Sustainability: c.Sustainability,
		Certifications: c.Certifications,
		Innovations:    c.Innovations,
	}, nil
}

func (u *catalogUsecase) About(ctx context.Context) (*domain.AboutPage, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AboutPage{Timeline: c.Timeline, Values: c.Values, Stats: c.AboutStats}, nil
}

func (u *catalogUsecase) ContactInfo(ctx context.Context) (*domain.ContactInfoPage, error) {
	c, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ContactInfoPage{
		Channels:     c.ContactInfo,
		QuickContact: c.QuickContact,
		Offices:      c.Offices,
	}, nil
}
