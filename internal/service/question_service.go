package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hedamo/transparency_api/internal/cache"
	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/pkg/insight"
)

// Question sources reported to the caller.
const (
	QuestionSourceAI       = "ai"
	QuestionSourceCache    = "cache"
	QuestionSourceFallback = "fallback"
)

// maxGeneratedQuestions caps how many AI questions one form step shows.
const maxGeneratedQuestions = 3

// QuestionService produces disclosure questions for the submission form.
// The AI service is the primary source; results are cached, and a static
// per-category catalog serves as the floor when the AI call fails or
// returns nothing usable.
type QuestionService struct {
	client *insight.Client
	cache  *cache.QuestionCache
}

// NewQuestionService constructs a QuestionService. Both client and cache
// may be nil; the static catalog always works.
func NewQuestionService(client *insight.Client, questionCache *cache.QuestionCache) *QuestionService {
	return &QuestionService{client: client, cache: questionCache}
}

// Generate returns up to three disclosure questions for the product along
// with the source they came from. It never fails: any upstream problem
// degrades to the static catalog.
func (s *QuestionService) Generate(ctx context.Context, category models.Category, productName, description string) ([]models.Question, string) {
	if s.cache != nil {
		if questions, err := s.cache.Get(ctx, category, productName); err == nil && len(questions) > 0 {
			return questions, QuestionSourceCache
		}
	}

	if s.client != nil {
		resp, err := s.client.GenerateQuestions(ctx, string(category), productName, description)
		if err == nil {
			questions := validateGenerated(resp.Questions)
			if len(questions) > 0 {
				if s.cache != nil {
					if cacheErr := s.cache.Set(ctx, category, productName, questions); cacheErr != nil {
						log.Debug().Err(cacheErr).Msg("failed to cache generated questions")
					}
				}
				return questions, QuestionSourceAI
			}
			log.Warn().Str("category", string(category)).Msg("AI returned no usable questions, using fallback")
		} else {
			log.Warn().Err(err).Str("category", string(category)).Msg("question generation failed, using fallback")
		}
	}

	return FallbackQuestions(category, productName), QuestionSourceFallback
}

// validateGenerated cleans the AI payload: empty prompts are dropped,
// missing ids are backfilled, unknown types collapse to text and options
// are kept only for select questions. At most three questions survive.
func validateGenerated(generated []insight.GeneratedQuestion) []models.Question {
	questions := make([]models.Question, 0, maxGeneratedQuestions)
	for i, g := range generated {
		if len(questions) == maxGeneratedQuestions {
			break
		}
		if g.Question == "" {
			continue
		}

		q := models.Question{
			ID:       g.ID,
			Prompt:   g.Question,
			Type:     models.QuestionType(g.Type),
			Required: g.Required,
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("ai_question_%d", i+1)
		}
		switch q.Type {
		case models.QuestionText, models.QuestionNumber, models.QuestionBoolean, models.QuestionTextarea:
		case models.QuestionSelect:
			q.Options = g.Options
		default:
			q.Type = models.QuestionText
		}
		questions = append(questions, q)
	}
	return questions
}

// FallbackQuestions returns the static per-category question set, phrased
// around the product name when one is given.
func FallbackQuestions(category models.Category, productName string) []models.Question {
	ref := "this product"
	if productName != "" {
		ref = "this " + productName
	}

	switch category {
	case models.CategoryElectronics:
		return []models.Question{
			{ID: "warranty_period", Prompt: fmt.Sprintf("How long is the warranty for %s?", ref), Type: models.QuestionText, Required: true},
			{ID: "energy_efficiency", Prompt: fmt.Sprintf("Is %s energy efficient?", ref), Type: models.QuestionBoolean, Required: true},
			{ID: "safety_certifications", Prompt: fmt.Sprintf("What safety certifications does %s have?", ref), Type: models.QuestionText, Required: true},
		}
	case models.CategoryFoodBeverage:
		return []models.Question{
			{ID: "expiry_shelf_life", Prompt: fmt.Sprintf("What is the shelf life of %s?", ref), Type: models.QuestionText, Required: true},
			{ID: "organic_certified", Prompt: fmt.Sprintf("Is %s certified organic?", ref), Type: models.QuestionBoolean, Required: false},
			{ID: "allergen_information", Prompt: fmt.Sprintf("Does %s contain any common allergens?", ref), Type: models.QuestionText, Required: true},
		}
	case models.CategoryClothing:
		return []models.Question{
			{ID: "material_composition", Prompt: fmt.Sprintf("What materials is %s made from?", ref), Type: models.QuestionText, Required: true},
			{ID: "care_instructions", Prompt: fmt.Sprintf("How should I care for %s?", ref), Type: models.QuestionText, Required: true},
			{ID: "size_availability", Prompt: fmt.Sprintf("What sizes are available for %s?", ref), Type: models.QuestionText, Required: false},
		}
	case models.CategoryHealthBeauty:
		return []models.Question{
			{ID: "ingredients_list", Prompt: fmt.Sprintf("What are the main ingredients in %s?", ref), Type: models.QuestionText, Required: true},
			{ID: "skin_tested", Prompt: fmt.Sprintf("Has %s been tested for sensitive skin?", ref), Type: models.QuestionBoolean, Required: true},
			{ID: "expiry_date", Prompt: fmt.Sprintf("What is the shelf life of %s?", ref), Type: models.QuestionText, Required: true},
		}
	default:
		return []models.Question{
			{ID: "quality_standards", Prompt: fmt.Sprintf("What quality standards does %s meet?", ref), Type: models.QuestionText, Required: true},
			{ID: "country_of_origin", Prompt: fmt.Sprintf("Where is %s manufactured?", ref), Type: models.QuestionText, Required: true},
			{ID: "customer_support", Prompt: fmt.Sprintf("What customer support is available for %s?", ref), Type: models.QuestionText, Required: false},
		}
	}
}
