package report

import (
	"strings"
	"testing"
	"time"

	"github.com/hedamo/transparency_api/internal/models"
)

func TestLabelFromID(t *testing.T) {
	cases := []struct {
		id, want string
	}{
		{"organic_certification", "Organic Certification"},
		{"warranty_period", "Warranty Period"},
		{"single", "Single"},
		{"already Capitalized", "Already Capitalized"},
		{"a_b_c", "A B C"},
		{"__odd__", "Odd"},
		{"", "Question"},
	}
	for _, c := range cases {
		if got := LabelFromID(c.id); got != c.want {
			t.Fatalf("LabelFromID(%q)=%q, want %q", c.id, got, c.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{true, "Yes"},
		{false, "No"},
		{"hand-stitched leather", "hand-stitched leather"},
		{float64(42), "42"},
		{float64(3.5), "3.5"},
		{7, "7"},
		{nil, "-"},
		{"   ", "-"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Fatalf("FormatValue(%v)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderHTMLOneBlockPerAnswer(t *testing.T) {
	p := &models.Product{
		Name:     "Solar Lantern",
		Category: models.CategoryElectronics,
		Questions: models.QuestionList{
			{ID: "warranty_period", Prompt: "How long is the warranty?", Type: models.QuestionText},
		},
		Answers: models.AnswerList{
			{QuestionID: "warranty_period", Value: "2 years"},
			{QuestionID: "energy_efficiency", Value: true},
			{QuestionID: "battery_capacity_mah", Value: float64(4000)},
		},
		CreatedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}

	html, err := RenderHTML(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := strings.Count(html, `<div class="answer">`); got != len(p.Answers) {
		t.Fatalf("answer blocks = %d, want %d", got, len(p.Answers))
	}
	for _, want := range []string{
		"How long is the warranty?", "2 years",
		"Energy Efficiency", "Yes",
		"Battery Capacity Mah", "4000",
		"Solar Lantern", "Electronics",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered report missing %q", want)
		}
	}
}

func TestRenderHTMLUnknownQuestionID(t *testing.T) {
	p := &models.Product{
		Name:     "EcoSoap",
		Category: models.CategoryHealthBeauty,
		Answers: models.AnswerList{
			{QuestionID: "organic_certification", Value: true},
		},
	}

	html, err := RenderHTML(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Organic Certification") {
		t.Fatalf("missing derived label, got:\n%s", html)
	}
	if !strings.Contains(html, ">Yes</div>") {
		t.Fatalf("boolean answer not rendered as Yes")
	}
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	p := &models.Product{
		Name:     `<script>alert("x")</script>`,
		Category: models.CategoryOther,
		Answers: models.AnswerList{
			{QuestionID: "notes", Value: `<img src=x onerror=alert(1)>`},
		},
	}

	html, err := RenderHTML(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>alert") || strings.Contains(html, "<img src=x") {
		t.Fatalf("user input rendered unescaped")
	}
}

func TestRenderHTMLWithScorePanel(t *testing.T) {
	p := &models.Product{
		Name:     "Trail Jacket",
		Category: models.CategoryClothing,
		Score: &models.TransparencyScore{
			Overall: 72.5,
			Breakdown: models.ScoreBreakdown{
				Completeness: 80, Quality: 75, Transparency: 60, Compliance: 75,
			},
			Level:           models.LevelGood,
			Color:           "blue",
			Recommendations: []string{"Add material certifications"},
		},
	}

	html, err := RenderHTML(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"72.5", "Good", "score-blue", "Add material certifications"} {
		if !strings.Contains(html, want) {
			t.Fatalf("score panel missing %q", want)
		}
	}
}

func TestRenderTextNeverEmpty(t *testing.T) {
	cases := []*models.Product{
		{},
		{Name: "Bare", Category: models.CategoryOther},
		{Name: "Scored", Category: models.CategoryFoodBeverage, Answers: models.AnswerList{{QuestionID: "organic_certified", Value: true}}},
	}
	for _, p := range cases {
		if out := RenderText(p); strings.TrimSpace(out) == "" {
			t.Fatalf("RenderText returned empty output for %+v", p)
		}
	}
}

func TestRenderTextContainsAnswers(t *testing.T) {
	p := &models.Product{
		Name:     "EcoSoap",
		Category: models.CategoryHealthBeauty,
		Answers: models.AnswerList{
			{QuestionID: "organic_certification", Value: true},
			{QuestionID: "ingredients_list", Value: "olive oil, lye, lavender"},
		},
	}
	out := RenderText(p)
	for _, want := range []string{"EcoSoap", "Organic Certification: Yes", "Ingredients List: olive oil, lye, lavender"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}
}
