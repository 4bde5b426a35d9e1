package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hedamo/transparency_api/internal/models"
	"github.com/hedamo/transparency_api/pkg/insight"
)

// ScoreService computes transparency scores. The hosted AI service is the
// primary scorer; when it is unreachable the same heuristic runs locally so
// an outage still yields a best-effort score.
type ScoreService struct {
	client *insight.Client
}

// NewScoreService constructs a ScoreService. client may be nil, in which
// case only the local heuristic is used.
func NewScoreService(client *insight.Client) *ScoreService {
	return &ScoreService{client: client}
}

// Score computes the transparency score for a set of answers. It returns
// nil without error when there is nothing to score. Remote failures degrade
// to the local heuristic; this method never fails the submission.
func (s *ScoreService) Score(ctx context.Context, name string, category models.Category, answers []models.Answer) *models.TransparencyScore {
	if len(answers) == 0 {
		return nil
	}

	if s.client != nil {
		scored := make([]insight.ScoredAnswer, 0, len(answers))
		for _, a := range answers {
			scored = append(scored, insight.ScoredAnswer{QuestionID: a.QuestionID, Answer: a.Value})
		}

		resp, err := s.client.TransparencyScore(ctx, name, string(category), scored)
		if err == nil {
			return fromInsight(resp.TransparencyScore, len(answers))
		}
		log.Warn().Err(err).Str("product", name).Msg("remote scoring failed, using local heuristic")
	}

	return ComputeScore(category, answers)
}

// fromInsight converts the AI service payload into the domain model.
func fromInsight(ts *insight.TransparencyScore, totalAnswers int) *models.TransparencyScore {
	if ts.TotalAnswers > 0 {
		totalAnswers = ts.TotalAnswers
	}
	return &models.TransparencyScore{
		Overall: ts.OverallScore,
		Breakdown: models.ScoreBreakdown{
			Completeness: ts.Breakdown.Completeness,
			Quality:      ts.Breakdown.Quality,
			Transparency: ts.Breakdown.Transparency,
			Compliance:   ts.Breakdown.Compliance,
		},
		Level:           models.ScoreLevel(ts.ScoreLevel),
		Color:           ts.ScoreColor,
		Recommendations: ts.Recommendations,
		TotalAnswers:    totalAnswers,
	}
}

// transparencyKeywords are disclosure indicators; one hit per answer counts.
var transparencyKeywords = []string{
	"certified", "organic", "tested", "verified", "compliant", "standard",
	"warranty", "guarantee", "documentation", "certificate", "audit",
	"eco-friendly", "sustainable", "ethical", "cruelty-free",
}

// categoryTerms are the category-specific compliance indicators.
var categoryTerms = map[models.Category][]string{
	models.CategoryElectronics:  {"warranty", "safety", "energy", "certification"},
	models.CategoryFoodBeverage: {"expiry", "organic", "allergen", "shelf"},
	models.CategoryClothing:     {"material", "care", "size", "manufacturing"},
	models.CategoryHealthBeauty: {"ingredients", "tested", "dermatolog", "expiry"},
}

// defaultTerms apply to categories without a specific requirement list.
var defaultTerms = []string{"quality", "origin", "standard"}

// ComputeScore runs the local scoring heuristic: completeness (meaningful
// answers), quality (answer detail), transparency (disclosure keywords) and
// category compliance, each 0-100, averaged into the overall score.
func ComputeScore(category models.Category, answers []models.Answer) *models.TransparencyScore {
	breakdown := models.ScoreBreakdown{
		Completeness: completenessScore(answers),
		Quality:      qualityScore(answers),
		Transparency: transparencyScore(answers),
		Compliance:   complianceScore(category, answers),
	}

	overall := round1((breakdown.Completeness + breakdown.Quality + breakdown.Transparency + breakdown.Compliance) / 4)
	level, color := scoreLevel(overall)

	return &models.TransparencyScore{
		Overall:         overall,
		Breakdown:       breakdown,
		Level:           level,
		Color:           color,
		Recommendations: basicRecommendations(breakdown),
		TotalAnswers:    len(answers),
	}
}

// answerText coerces an answer value to its scoring text form.
func answerText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// completenessScore measures how many questions got meaningful responses.
// Bare yes/no answers only count when the question is about certification.
func completenessScore(answers []models.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}

	answered := 0
	for _, a := range answers {
		text := strings.ToLower(strings.TrimSpace(answerText(a.Value)))
		if text == "" {
			continue
		}
		switch {
		case len(text) > 3 && text != "yes" && text != "no" && text != "n/a" && text != "na":
			answered++
		case (text == "yes" || text == "true") && strings.Contains(strings.ToLower(a.QuestionID), "certified"):
			answered++
		}
	}
	return round1(float64(answered) / float64(len(answers)) * 100)
}

// qualityScore rewards longer, more detailed answers on a 25/50/75/100 tier.
func qualityScore(answers []models.Answer) float64 {
	points, total := 0, 0
	for _, a := range answers {
		text := strings.TrimSpace(answerText(a.Value))
		if text == "" {
			continue
		}
		total++
		switch {
		case len(text) > 50:
			points += 100
		case len(text) > 20:
			points += 75
		case len(text) > 10:
			points += 50
		default:
			points += 25
		}
	}
	if total == 0 {
		return 0
	}
	return round1(float64(points) / float64(total))
}

// transparencyScore counts answers containing a disclosure keyword: 10
// points per answer, scaled by 10 and capped at 100.
func transparencyScore(answers []models.Answer) float64 {
	points := 0
	for _, a := range answers {
		text := strings.ToLower(answerText(a.Value))
		for _, kw := range transparencyKeywords {
			if strings.Contains(text, kw) {
				points += 10
				break
			}
		}
	}
	return math.Min(float64(points*10), 100)
}

// complianceScore checks category-specific requirement terms against answer
// text and question ids: 25 points per matching answer, capped at 100.
func complianceScore(category models.Category, answers []models.Answer) float64 {
	terms, ok := categoryTerms[category]
	if !ok {
		terms = defaultTerms
	}

	points := 0
	for _, a := range answers {
		text := strings.ToLower(answerText(a.Value))
		questionID := strings.ToLower(a.QuestionID)
		for _, term := range terms {
			if strings.Contains(text, term) || strings.Contains(questionID, term) {
				points += 25
				break
			}
		}
	}
	return math.Min(float64(points), 100)
}

// scoreLevel maps an overall score to its qualitative level and color.
func scoreLevel(overall float64) (models.ScoreLevel, string) {
	switch {
	case overall >= 80:
		return models.LevelExcellent, "green"
	case overall >= 60:
		return models.LevelGood, "blue"
	case overall >= 40:
		return models.LevelFair, "yellow"
	default:
		return models.LevelNeedsImprovement, "red"
	}
}

// recommendationByArea maps each scoring dimension to its improvement hint.
var recommendationByArea = map[string]string{
	"completeness": "Provide more detailed answers to all questions to improve transparency",
	"quality":      "Include more specific details and explanations in your responses",
	"transparency": "Add more certifications, standards compliance, and quality documentation",
	"compliance":   "Ensure all category-specific requirements and standards are addressed",
}

// basicRecommendations targets the lowest-scoring area first and pads the
// list to exactly three entries.
func basicRecommendations(b models.ScoreBreakdown) []string {
	areas := []struct {
		name  string
		score float64
	}{
		{"completeness", b.Completeness},
		{"quality", b.Quality},
		{"transparency", b.Transparency},
		{"compliance", b.Compliance},
	}
	lowest := areas[0]
	for _, a := range areas[1:] {
		if a.score < lowest.score {
			lowest = a
		}
	}

	recs := []string{recommendationByArea[lowest.name]}
	if b.Transparency < 70 {
		recs = append(recs, "Consider obtaining relevant certifications for your product category")
	}
	if b.Quality < 70 {
		recs = append(recs, "Provide more comprehensive documentation and detailed product information")
	}
	for len(recs) < 3 {
		recs = append(recs, "Continue to improve product transparency and documentation")
	}
	return recs[:3]
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
