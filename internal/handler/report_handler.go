package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/internal/report"
	"github.com/hedamo/transparency_api/internal/service"
	"github.com/hedamo/transparency_api/internal/utils"
)

// ReportHandler serves PDF report exports.
type ReportHandler struct {
	productService *service.ProductService
	exporter       *report.Exporter
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(productService *service.ProductService, exporter *report.Exporter) *ReportHandler {
	return &ReportHandler{productService: productService, exporter: exporter}
}

// GetProductReport handles GET /v1/products/:id/report. It exports the
// report for a stored submission.
func (h *ReportHandler) GetProductReport(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load product")
		return
	}

	h.writeDocument(c, h.exporter.Export(c.Request.Context(), product))
}

// ExportRequest is the payload for ad-hoc report exports.
type ExportRequest struct {
	Name      string            `json:"name"`
	Category  models.Category   `json:"category"`
	Questions []models.Question `json:"questions"`
	Answers   []models.Answer   `json:"answers"`
}

// CreateReport handles POST /v1/reports/pdf. It exports a report for an
// ad-hoc product payload without persisting it.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.Error(c, 400, "MISSING_NAME", "Product name is required")
		return
	}
	if req.Category == "" {
		utils.Error(c, 400, "MISSING_CATEGORY", "Product category is required")
		return
	}

	product := &models.Product{
		Name:      req.Name,
		Category:  req.Category,
		Questions: req.Questions,
		Answers:   req.Answers,
	}

	h.writeDocument(c, h.exporter.Export(c.Request.Context(), product))
}

// writeDocument streams an exported document. The content type declares
// whether the primary PDF path or the text fallback produced it.
func (h *ReportHandler) writeDocument(c *gin.Context, doc report.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("Content-Length", strconv.Itoa(len(doc.Data)))
	c.Data(200, doc.ContentType, doc.Data)
}
