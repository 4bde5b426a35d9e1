package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/internal/utils"
)

// ProductRepository handles data access for product submissions.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// productRow mirrors the products table for scanning. The score column is
// nullable, so it scans through the model's JSON scanner only when present.
type productRow struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Category    models.Category     `db:"category"`
	Description string              `db:"description"`
	UserRef     *string             `db:"user_ref"`
	Questions   models.QuestionList `db:"questions"`
	Answers     models.AnswerList   `db:"answers"`
	Score       nullableScore       `db:"transparency_score"`
	CreatedAt   sql.NullTime        `db:"created_at"`
}

type nullableScore struct {
	score *models.TransparencyScore
}

func (n *nullableScore) Scan(src any) error {
	if src == nil {
		n.score = nil
		return nil
	}
	var s models.TransparencyScore
	if err := s.Scan(src); err != nil {
		return err
	}
	n.score = &s
	return nil
}

func (r productRow) toModel() models.Product {
	p := models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		UserRef:     r.UserRef,
		Questions:   r.Questions,
		Answers:     r.Answers,
		Score:       r.Score.score,
	}
	if r.CreatedAt.Valid {
		p.CreatedAt = r.CreatedAt.Time
	}
	return p
}

const productColumns = `id, name, category, description, user_ref, questions, answers, transparency_score, created_at`

// Create inserts a new product submission. Submissions are immutable; there
// is no corresponding update.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	const q = `
        INSERT INTO products (id, name, category, description, user_ref, questions, answers, transparency_score, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, q,
		p.ID,
		p.Name,
		p.Category,
		p.Description,
		p.UserRef,
		p.Questions,
		p.Answers,
		p.Score,
		p.CreatedAt,
	)
	return err
}

// GetByID returns a single product submission by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1 LIMIT 1`

	var row productRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	p := row.toModel()
	return &p, nil
}

// GetAllPaged returns submissions with optional filters and pagination along
// with the total count. Filters: category (exact), search (ILIKE on name).
// If a filter is empty it is ignored. Page begins at 1.
func (r *ProductRepository) GetAllPaged(ctx context.Context, category, search string, page, limit int) ([]models.Product, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR category = $1)
        AND ($2 = '' OR name ILIKE '%' || $2 || '%')`

	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, category, search); err != nil {
		return nil, 0, err
	}

	listQuery := `SELECT ` + productColumns + ` FROM products ` + baseWhere + `
        ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, category, search, limit, offset); err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, total, nil
}
