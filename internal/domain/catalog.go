package domain

import "context"

type NavItem struct {
	Name   string `json:"name" yaml:"name"`
	Href   string `json:"href" yaml:"href"`
	Active bool   `json:"active" yaml:"-"`
}

type Link struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

type FooterSection struct {
	Title string `json:"title" yaml:"title"`
	Links []Link `json:"links" yaml:"links"`
}

type Stat struct {
	Label       string `json:"label" yaml:"label"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description"`
}

type Certification struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

type ProductCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Product struct {
	ID           int               `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Category     string            `json:"category" yaml:"category"`
	Description  string            `json:"description" yaml:"description"`
	Image        string            `json:"image" yaml:"image"`
	Features     []string          `json:"features" yaml:"features"`
	Applications []string          `json:"applications" yaml:"applications"`
	Specs        map[string]string `json:"specs" yaml:"specs"`
	Featured     bool              `json:"featured" yaml:"featured"`
}

// Application is an industry use of the product line (the "uses" page).
type Application struct {
	ID           int      `json:"id" yaml:"id"`
	Category     string   `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image" yaml:"image"`
	Features     []string `json:"features" yaml:"features"`
	Applications []string `json:"applications" yaml:"applications"`
	Benefits     []string `json:"benefits" yaml:"benefits"`
}

type Technology struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Image       string   `json:"image" yaml:"image"`
}

type SustainabilityInitiative struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Percentage  int    `json:"percentage" yaml:"percentage"`
	Metrics     []Stat `json:"metrics" yaml:"metrics"`
}

type Innovation struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	Timeline    string `json:"timeline" yaml:"timeline"`
}

type Milestone struct {
	Year        int    `json:"year" yaml:"year"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type CompanyValue struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type ContactChannel struct {
	Title   string   `json:"title" yaml:"title"`
	Details []string `json:"details" yaml:"details"`
	Action  string   `json:"action,omitempty" yaml:"action"`
}

type QuickContact struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Action      string `json:"action" yaml:"action"`
}

type Office struct {
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}

// Catalog is the full static content of the site.
type Catalog struct {
	Navigation     []NavItem                  `yaml:"navigation"`
	Footer         []FooterSection            `yaml:"footer"`
	HomeStats      []Stat                     `yaml:"home_stats"`
	HomeCerts      []Certification            `yaml:"home_certifications"`
	Categories     []ProductCategory          `yaml:"categories"`
	Products       []Product                  `yaml:"products"`
	Applications   []Application              `yaml:"applications"`
	UsesStats      []Stat                     `yaml:"uses_stats"`
	Technologies   []Technology               `yaml:"technologies"`
	Sustainability []SustainabilityInitiative `yaml:"sustainability"`
	Certifications []Certification            `yaml:"certifications"`
	Innovations    []Innovation               `yaml:"innovations"`
	Timeline       []Milestone                `yaml:"timeline"`
	Values         []CompanyValue             `yaml:"values"`
	AboutStats     []Stat                     `yaml:"about_stats"`
	ContactInfo    []ContactChannel           `yaml:"contact_info"`
	QuickContact   []QuickContact             `yaml:"quick_contact"`
	Offices        []Office                   `yaml:"offices"`
}

type HomePage struct {
	Products       []Product       `json:"products"`
	Stats          []Stat          `json:"stats"`
	Certifications []Certification `json:"certifications"`
}

type UsesPage struct {
	Applications []Application `json:"applications"`
	Stats        []Stat        `json:"stats"`
}

type TechnologyPage struct {
	Technologies   []Technology               `json:"technologies"`
	Sustainability []SustainabilityInitiative `json:"sustainability"`
	Certifications []Certification            `json:"certifications"`
	Innovations    []Innovation               `json:"innovations"`
}

type AboutPage struct {
	Timeline []Milestone    `json:"timeline"`
	Values   []CompanyValue `json:"values"`
	Stats    []Stat         `json:"stats"`
}

type ContactInfoPage struct {
	Channels     []ContactChannel `json:"channels"`
	QuickContact []QuickContact   `json:"quick_contact"`
	Offices      []Office         `json:"offices"`
}

type CatalogRepository interface {
	Load(ctx context.Context) (*Catalog, error)
}

type CatalogUsecase interface {
	Navigation(ctx context.Context, activePath string) ([]NavItem, error)
	Footer(ctx context.Context) ([]FooterSection, error)
	Home(ctx context.Context) (*HomePage, error)
	Categories(ctx context.Context) ([]ProductCategory, error)
	Products(ctx context.Context, category string) ([]Product, error)
	Product(ctx context.Context, id int) (*Product, error)
	Uses(ctx context.Context) (*UsesPage, error)
	Technology(ctx context.Context) (*TechnologyPage, error)
	About(ctx context.Context) (*AboutPage, error)
	ContactInfo(ctx context.Context) (*ContactInfoPage, error)
}
