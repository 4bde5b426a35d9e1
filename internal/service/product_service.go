package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/internal/repository"
	"github.com/hedamo/transparency_api/internal/utils"
)

// maxNameLength bounds the product name.
const maxNameLength = 100

// ProductService handles product submissions and reads.
type ProductService struct {
	productRepo  *repository.ProductRepository
	scoreService *ScoreService
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo *repository.ProductRepository, scoreService *ScoreService) *ProductService {
	return &ProductService{productRepo: productRepo, scoreService: scoreService}
}

// SubmitRequest is the submission payload.
type SubmitRequest struct {
	Name        string            `json:"name"`
	Category    models.Category   `json:"category"`
	Description string            `json:"description"`
	UserRef     *string           `json:"userRef"`
	Questions   []models.Question `json:"questions"`
	Answers     []models.Answer   `json:"answers"`
}

// Validate checks the submission fields. It runs before any scoring call or
// persistence so invalid submissions never leave the process.
func (r *SubmitRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	switch {
	case r.Name == "":
		return utils.ErrMissingName
	case len(r.Name) > maxNameLength:
		return utils.ErrNameTooLong
	case r.Category == "":
		return utils.ErrMissingCategory
	case !r.Category.Valid():
		return utils.ErrInvalidCategory
	}
	return nil
}

// Submit validates the submission, scores it best-effort and persists it as
// one immutable document. A scoring failure never blocks persistence; the
// product is then saved without a score.
func (s *ProductService) Submit(ctx context.Context, req *SubmitRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		UserRef:     req.UserRef,
		Questions:   req.Questions,
		Answers:     req.Answers,
		CreatedAt:   time.Now().UTC(),
	}

	if s.scoreService != nil {
		product.Score = s.scoreService.Score(ctx, product.Name, product.Category, product.Answers)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Bool("scored", product.Score != nil).
		Msg("product submission stored")

	return product, nil
}

// GetProduct returns a stored submission by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListProducts returns submissions with optional category filter and name
// search, newest first, along with the total count.
func (s *ProductService) ListProducts(ctx context.Context, category, search string, page, limit int) ([]models.Product, int, error) {
	return s.productRepo.GetAllPaged(ctx, category, search, page, limit)
}
