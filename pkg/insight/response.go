package insight

// apiError is the error shape shared by all service responses.
type apiError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e apiError) ErrorMessage() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	default:
		return "unknown error"
	}
}

// GeneratedQuestion is one question produced by the AI service.
type GeneratedQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// QuestionsResponse is the generate-questions payload.
type QuestionsResponse struct {
	apiError
	Success   bool                `json:"success"`
	Questions []GeneratedQuestion `json:"questions"`
	Model     string              `json:"model,omitempty"`
	Category  string              `json:"category,omitempty"`
	Count     int                 `json:"count,omitempty"`
	Note      string              `json:"note,omitempty"`
}

// ScoreBreakdown carries the four 0-100 scoring dimensions.
type ScoreBreakdown struct {
	Completeness float64 `json:"completeness"`
	Quality      float64 `json:"quality"`
	Transparency float64 `json:"transparency"`
	Compliance   float64 `json:"compliance"`
}

// TransparencyScore is the scored result for one product.
type TransparencyScore struct {
	OverallScore    float64        `json:"overall_score"`
	ScoreLevel      string         `json:"score_level"`
	ScoreColor      string         `json:"score_color"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
	ProductName     string         `json:"product_name,omitempty"`
	Category        string         `json:"category,omitempty"`
	TotalAnswers    int            `json:"total_answers,omitempty"`
}

// ScoreResponse is the transparency-score payload.
type ScoreResponse struct {
	apiError
	Success           bool               `json:"success"`
	TransparencyScore *TransparencyScore `json:"transparency_score"`
}

// HealthResponse is the AI service health payload.
type HealthResponse struct {
	Status           string `json:"status"`
	AIModel          string `json:"ai_model"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}
