package insight

// QuestionsRequest asks for disclosure questions for a product.
type QuestionsRequest struct {
	Category    string `json:"category"`
	ProductName string `json:"product_name"`
	Description string `json:"description,omitempty"`
}

// ScoredAnswer is one submitted answer sent for scoring. Answer is free-typed
// (string, number or boolean) to match the submission payload.
type ScoredAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     any    `json:"answer"`
}

// ScoreRequest asks for a transparency score over the submitted answers.
type ScoreRequest struct {
	ProductName string         `json:"product_name"`
	Category    string         `json:"category"`
	Answers     []ScoredAnswer `json:"answers"`
}
