package v1

import (
	"net/http"
	"strconv"

	"europlast-backend/internal/delivery/http/response"
	"europlast-backend/internal/domain"
	"europlast-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	site := public.Group("/site")
	{
		site.GET("/navigation", handler.Navigation)
		site.GET("/footer", handler.Footer)
	}

	products := public.Group("/products")
	{
		products.GET("", handler.Products)
		products.GET("/categories", handler.Categories)
		products.GET("/:id", handler.Product)
	}

	public.GET("/home", handler.Home)
	public.GET("/uses", handler.Uses)
	public.GET("/technology", handler.Technology)
	public.GET("/about", handler.About)
}

// Navigation godoc
// @Summary      Site Navigation
// @Description  Navigation items; the one matching `path` exactly is marked active.
// @Tags         site
// @Produce      json
// @Param        path  query     string  false  "Current route, e.g. /products"
// @Success      200   {object}  response.Response{data=[]domain.NavItem}
// @Router       /site/navigation [get]
func (h *CatalogHandler) Navigation(c *gin.Context) {
	items, err := h.catalogUC.Navigation(c.Request.Context(), c.Query("path"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Navigation retrieved", items)
}

// Footer godoc
// @Summary      Footer Links
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.FooterSection}
// @Router       /site/footer [get]
func (h *CatalogHandler) Footer(c *gin.Context) {
	sections, err := h.catalogUC.Footer(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Footer retrieved", sections)
}

// Home godoc
// @Summary      Home Page
// @Description  Featured products, company stats and certifications.
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.HomePage}
// @Router       /home [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	page, err := h.catalogUC.Home(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Home page retrieved", page)
}

// Products godoc
// @Summary      List Products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category id; 'all' or empty lists everything"
// @Success      200       {object}  response.Response{data=[]domain.Product}
// @Failure      404       {object}  response.Response
// @Router       /products [get]
func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.catalogUC.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Products retrieved", products)
}

// Categories godoc
// @Summary      Product Categories
// @Tags         products
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ProductCategory}
// @Router       /products/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalogUC.Categories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved", categories)
}

// Product godoc
// @Summary      Product Details
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  response.Response{data=domain.Product}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [get]
func (h *CatalogHandler) Product(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid product ID"))
		return
	}

	product, err := h.catalogUC.Product(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Product retrieved", product)
}

// Uses godoc
// @Summary      Product Applications
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UsesPage}
// @Router       /uses [get]
func (h *CatalogHandler) Uses(c *gin.Context) {
	page, err := h.catalogUC.Uses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", page)
}

// Technology godoc
// @Summary      Technology and Sustainability
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.TechnologyPage}
// @Router       /technology [get]
func (h *CatalogHandler) Technology(c *gin.Context) {
	page, err := h.catalogUC.Technology(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Technology retrieved", page)
}

// About godoc
// @Summary      About the Company
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AboutPage}
// @Router       /about [get]
func (h *CatalogHandler) About(c *gin.Context) {
	page, err := h.catalogUC.About(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About page retrieved", page)
}
