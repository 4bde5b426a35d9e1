package service

import (
	"context"
	"strings"
	"testing"

	"github.com/hedamo/transparency_api/internal/models"
)

func TestCompletenessScore(t *testing.T) {
	cases := []struct {
		name    string
		answers []models.Answer
		want    float64
	}{
		{
			name: "detailed answers count",
			answers: []models.Answer{
				{QuestionID: "materials", Value: "full grain leather"},
				{QuestionID: "origin", Value: "made in Portugal"},
			},
			want: 100,
		},
		{
			name: "bare yes does not count",
			answers: []models.Answer{
				{QuestionID: "waterproof", Value: "yes"},
				{QuestionID: "materials", Value: "recycled polyester"},
			},
			want: 50,
		},
		{
			name: "yes counts for certification questions",
			answers: []models.Answer{
				{QuestionID: "organic_certified", Value: "yes"},
			},
			want: 100,
		},
		{
			name: "boolean true counts for certification questions",
			answers: []models.Answer{
				{QuestionID: "organic_certified", Value: true},
			},
			want: 100,
		},
		{
			name: "n/a never counts",
			answers: []models.Answer{
				{QuestionID: "allergens", Value: "n/a"},
			},
			want: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := completenessScore(c.answers); got != c.want {
				t.Fatalf("completeness = %v, want %v", got, c.want)
			}
		})
	}
}

func TestQualityScoreTiers(t *testing.T) {
	long := strings.Repeat("detailed disclosure ", 5) // > 50 chars
	cases := []struct {
		value string
		want  float64
	}{
		{long, 100},
		{"a fairly detailed answer", 75}, // > 20 chars
		{"short reply", 50},              // > 10 chars
		{"yes", 25},
	}
	for _, c := range cases {
		got := qualityScore([]models.Answer{{QuestionID: "q", Value: c.value}})
		if got != c.want {
			t.Fatalf("qualityScore(%q) = %v, want %v", c.value, got, c.want)
		}
	}

	if got := qualityScore(nil); got != 0 {
		t.Fatalf("qualityScore(nil) = %v, want 0", got)
	}
}

func TestTransparencyScoreKeywordsCapped(t *testing.T) {
	one := []models.Answer{{QuestionID: "q1", Value: "certified organic by ECOCERT"}}
	if got := transparencyScore(one); got != 100 {
		// one keyword answer: 10 points, scaled x10
		t.Fatalf("single keyword answer = %v, want 100", got)
	}

	none := []models.Answer{{QuestionID: "q1", Value: "blue color"}}
	if got := transparencyScore(none); got != 0 {
		t.Fatalf("no keywords = %v, want 0", got)
	}

	// only one hit per answer even with several keywords in the text
	multi := []models.Answer{{QuestionID: "q1", Value: "certified, tested, verified and audited"}}
	if got := transparencyScore(multi); got != 100 {
		t.Fatalf("multi keyword answer = %v, want 100", got)
	}
}

func TestComplianceScoreUsesCategoryTerms(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "warranty_period", Value: "2 years"},
		{QuestionID: "other", Value: "includes safety shutoff"},
	}
	if got := complianceScore(models.CategoryElectronics, answers); got != 50 {
		t.Fatalf("electronics compliance = %v, want 50", got)
	}

	// Home & Garden has no dedicated term list; default terms apply.
	def := []models.Answer{
		{QuestionID: "country_of_origin", Value: "grown locally"},
	}
	if got := complianceScore(models.CategoryHomeGarden, def); got != 25 {
		t.Fatalf("default compliance = %v, want 25", got)
	}

	capped := make([]models.Answer, 6)
	for i := range capped {
		capped[i] = models.Answer{QuestionID: "warranty", Value: "covered by warranty"}
	}
	if got := complianceScore(models.CategoryElectronics, capped); got != 100 {
		t.Fatalf("compliance cap = %v, want 100", got)
	}
}

func TestComputeScoreLevels(t *testing.T) {
	cases := []struct {
		overall float64
		level   models.ScoreLevel
		color   string
	}{
		{85, models.LevelExcellent, "green"},
		{80, models.LevelExcellent, "green"},
		{65, models.LevelGood, "blue"},
		{45, models.LevelFair, "yellow"},
		{12, models.LevelNeedsImprovement, "red"},
	}
	for _, c := range cases {
		level, color := scoreLevel(c.overall)
		if level != c.level || color != c.color {
			t.Fatalf("scoreLevel(%v) = (%v, %v), want (%v, %v)", c.overall, level, color, c.level, c.color)
		}
	}
}

func TestComputeScoreShape(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "organic_certification", Value: true},
		{QuestionID: "ingredients_list", Value: "olive oil, lye, lavender essential oil, no parabens"},
	}
	score := ComputeScore(models.CategoryHealthBeauty, answers)

	if score.TotalAnswers != 2 {
		t.Fatalf("total answers = %d, want 2", score.TotalAnswers)
	}
	if score.Overall < 0 || score.Overall > 100 {
		t.Fatalf("overall out of range: %v", score.Overall)
	}
	wantOverall := round1((score.Breakdown.Completeness + score.Breakdown.Quality + score.Breakdown.Transparency + score.Breakdown.Compliance) / 4)
	if score.Overall != wantOverall {
		t.Fatalf("overall = %v, want mean of breakdown %v", score.Overall, wantOverall)
	}
	if len(score.Recommendations) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(score.Recommendations))
	}
	if score.Color == "" || score.Level == "" {
		t.Fatalf("missing level or color: %+v", score)
	}
}

func TestBasicRecommendationsTargetLowestArea(t *testing.T) {
	b := models.ScoreBreakdown{Completeness: 90, Quality: 85, Transparency: 20, Compliance: 70}
	recs := basicRecommendations(b)
	if len(recs) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(recs))
	}
	if recs[0] != recommendationByArea["transparency"] {
		t.Fatalf("first recommendation should target transparency, got %q", recs[0])
	}
}

func TestScoreServiceNoAnswers(t *testing.T) {
	s := NewScoreService(nil)
	if score := s.Score(context.Background(), "Widget", models.CategoryOther, nil); score != nil {
		t.Fatalf("expected nil score for empty answers, got %+v", score)
	}
}

func TestScoreServiceLocalFallbackWithoutClient(t *testing.T) {
	s := NewScoreService(nil)
	score := s.Score(context.Background(), "Widget", models.CategoryOther, []models.Answer{
		{QuestionID: "quality_standards", Value: "ISO 9001 certified production line"},
	})
	if score == nil {
		t.Fatalf("expected local score without client")
	}
	if score.TotalAnswers != 1 {
		t.Fatalf("total answers = %d, want 1", score.TotalAnswers)
	}
}
