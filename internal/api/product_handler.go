package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// ProductHandler handles product procedures
type ProductHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(repos *repository.Repositories, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		repos: repos,
		log:   log.With().Str("handler", "product").Logger(),
	}
}

// CreateProduct handles POST /rpc/createProduct
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.ApplyDefaults()
	if errs := validation.ValidateCreateProduct(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	product := &models.Product{
		Name:             input.Name,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		Features:         input.Features,
		Benefits:         input.Benefits,
		HeroImageURL:     input.HeroImageURL,
		GalleryImages:    input.GalleryImages,
		Category:         input.Category,
		Tags:             input.Tags,
	}

	if err := h.repos.Product.Create(c.Request.Context(), product); err != nil {
		respondStoreError(c, h.log, "createProduct", err)
		return
	}

	h.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("Product created")
	c.JSON(http.StatusCreated, product)
}

// GetProducts handles GET /rpc/getProducts
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.repos.Product.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /rpc/getProductById?id=
// A missing product is a null result, not an error.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := queryInt64(c, "id")
	if !ok {
		return
	}

	product, err := h.repos.Product.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, h.log, "getProductById", err)
		return
	}
	c.JSON(http.StatusOK, product)
}
