package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hedamo/transparency_api/internal/service"
	"github.com/hedamo/transparency_api/internal/utils"
)

// ProductHandler handles product submission HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct handles POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}

	product, err := h.productService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.Success(c, 201, "Product submitted successfully", product)
}

// GetProduct handles GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", product)
}

// ListProducts handles GET /v1/products with optional filters and pagination.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	// pagination
	page := 1
	limit := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), category, search, page, limit)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
	}, page, limit, total)
}

// handleError maps service errors to the error taxonomy: validation errors
// are client errors, unknown ids are 404, everything else is a server error.
func (h *ProductHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrMissingName):
		utils.Error(c, 400, "MISSING_NAME", "Product name is required")
	case errors.Is(err, utils.ErrNameTooLong):
		utils.Error(c, 400, "NAME_TOO_LONG", "Product name must be at most 100 characters")
	case errors.Is(err, utils.ErrMissingCategory):
		utils.Error(c, 400, "MISSING_CATEGORY", "Product category is required")
	case errors.Is(err, utils.ErrInvalidCategory):
		utils.Error(c, 400, "INVALID_CATEGORY", "Unknown product category")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", err.Error())
	}
}
