package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/internal/service"
	"github.com/hedamo/transparency_api/internal/utils"
)

// QuestionHandler handles disclosure question generation.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler constructs a QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GenerateRequest asks for questions tailored to a product.
type GenerateRequest struct {
	Category    models.Category `json:"category"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
}

// GenerateQuestions handles POST /v1/questions/generate. Upstream failures
// degrade to the static catalog, so this endpoint only rejects bad input.
func (h *QuestionHandler) GenerateQuestions(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}
	if req.Category == "" && req.Description == "" {
		utils.Error(c, 400, "MISSING_FIELD", "Provide either category or description")
		return
	}
	if req.Category != "" && !req.Category.Valid() {
		utils.Error(c, 400, "INVALID_CATEGORY", "Unknown product category")
		return
	}

	questions, source := h.questionService.Generate(c.Request.Context(), req.Category, req.ProductName, req.Description)

	utils.Success(c, 200, "Questions generated successfully", gin.H{
		"questions": questions,
		"source":    source,
		"count":     len(questions),
	})
}
