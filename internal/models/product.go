package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Category enumerates the supported product categories.
type Category string

const (
	CategoryElectronics  Category = "Electronics"
	CategoryFoodBeverage Category = "Food & Beverage"
	CategoryClothing     Category = "Clothing"
	CategoryHealthBeauty Category = "Health & Beauty"
	CategoryHomeGarden   Category = "Home & Garden"
	CategoryOther        Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFoodBeverage,
	CategoryClothing,
	CategoryHealthBeauty,
	CategoryHomeGarden,
	CategoryOther,
}

// Valid reports whether the category is one of the fixed values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// QuestionType enumerates the supported question input types.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionNumber   QuestionType = "number"
	QuestionBoolean  QuestionType = "boolean"
	QuestionSelect   QuestionType = "select"
	QuestionTextarea QuestionType = "textarea"
)

// Question is a single disclosure question shown on the submission form.
type Question struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"question"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

// Answer holds the submitted value for a question. Value is free-typed
// (string, number or boolean) and QuestionID is not guaranteed to resolve
// against the product's question list.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"answer"`
}

// ScoreLevel is the qualitative rating derived from the overall score.
type ScoreLevel string

const (
	LevelExcellent        ScoreLevel = "Excellent"
	LevelGood             ScoreLevel = "Good"
	LevelFair             ScoreLevel = "Fair"
	LevelNeedsImprovement ScoreLevel = "Needs Improvement"
)

// ScoreBreakdown holds the four scoring dimensions, each 0-100.
type ScoreBreakdown struct {
	Completeness float64 `json:"completeness"`
	Quality      float64 `json:"quality"`
	Transparency float64 `json:"transparency"`
	Compliance   float64 `json:"compliance"`
}

// TransparencyScore is the multi-criteria rating attached to a product at
// submission time. Best-effort: products may persist without one.
type TransparencyScore struct {
	Overall         float64        `json:"overallScore"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Level           ScoreLevel     `json:"scoreLevel"`
	Color           string         `json:"scoreColor"`
	Recommendations []string       `json:"recommendations"`
	TotalAnswers    int            `json:"totalAnswers"`
}

// Product is one disclosure submission. Questions, answers and the score are
// stored as JSONB documents; the record is never mutated after creation.
type Product struct {
	ID          string             `db:"id" json:"id"`
	Name        string             `db:"name" json:"name"`
	Category    Category           `db:"category" json:"category"`
	Description string             `db:"description" json:"description,omitempty"`
	UserRef     *string            `db:"user_ref" json:"userRef,omitempty"`
	Questions   QuestionList       `db:"questions" json:"questions"`
	Answers     AnswerList         `db:"answers" json:"answers"`
	Score       *TransparencyScore `db:"transparency_score" json:"transparencyScore,omitempty"`
	CreatedAt   time.Time          `db:"created_at" json:"createdAt"`
}

// QuestionList is a JSONB-backed slice of questions.
type QuestionList []Question

// AnswerList is a JSONB-backed slice of answers.
type AnswerList []Answer

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		q = QuestionList{}
	}
	return json.Marshal(q)
}

func (q *QuestionList) Scan(src any) error {
	return scanJSON(src, q)
}

func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		a = AnswerList{}
	}
	return json.Marshal(a)
}

func (a *AnswerList) Scan(src any) error {
	return scanJSON(src, a)
}

func (s *TransparencyScore) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *TransparencyScore) Scan(src any) error {
	if src == nil {
		return nil
	}
	return scanJSON(src, s)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON value", src)
	}
}
