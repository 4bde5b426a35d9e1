// Package report turns a product submission into a styled HTML report and
// exports it as PDF, degrading to a plain-text rendering when the PDF
// engine is unavailable.
package report

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/hedamo/transparency_api/internal/models"
)

// answerBlock is one rendered question/answer pair.
type answerBlock struct {
	Label string
	Value string
}

// reportData is the template payload for one report.
type reportData struct {
	Name        string
	Category    models.Category
	Description string
	CreatedAt   string
	GeneratedAt string
	Score       *models.TransparencyScore
	Blocks      []answerBlock
}

// RenderHTML renders the product into a self-contained HTML document.
// It is a pure formatting function: every answer produces exactly one block,
// answers with unknown question ids get a label derived from the id, and all
// text is escaped by the template engine.
func RenderHTML(p *models.Product) (string, error) {
	data := reportData{
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Score:       p.Score,
		Blocks:      buildBlocks(p),
	}
	if !p.CreatedAt.IsZero() {
		data.CreatedAt = p.CreatedAt.Format("January 2, 2006")
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return sb.String(), nil
}

// buildBlocks resolves each answer against the question list, falling back to
// a label derived from the question id when it does not resolve.
func buildBlocks(p *models.Product) []answerBlock {
	prompts := make(map[string]string, len(p.Questions))
	for _, q := range p.Questions {
		prompts[q.ID] = q.Prompt
	}

	blocks := make([]answerBlock, 0, len(p.Answers))
	for _, a := range p.Answers {
		label, ok := prompts[a.QuestionID]
		if !ok || label == "" {
			label = LabelFromID(a.QuestionID)
		}
		blocks = append(blocks, answerBlock{
			Label: label,
			Value: FormatValue(a.Value),
		})
	}
	return blocks
}

// LabelFromID derives a human-readable label from a question id by splitting
// on underscores and capitalizing each word, e.g. "organic_certification"
// becomes "Organic Certification".
func LabelFromID(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	label := strings.TrimSpace(strings.Join(words, " "))
	if label == "" {
		return "Question"
	}
	return label
}

// FormatValue formats an answer value for display. Booleans render as
// Yes/No, numbers without trailing zeros, everything else via string
// coercion. Missing values render as a dash.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		if strings.TrimSpace(val) == "" {
			return "-"
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Transparency Report - {{.Name}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px; }
  .header { border-bottom: 3px solid #059669; padding-bottom: 16px; margin-bottom: 24px; }
  .header h1 { margin: 0 0 4px; font-size: 26px; }
  .badge { display: inline-block; background: #d1fae5; color: #065f46; border-radius: 12px; padding: 2px 12px; font-size: 13px; }
  .meta { color: #6b7280; font-size: 12px; margin-top: 8px; }
  .score-panel { background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; margin-bottom: 24px; }
  .score-overall { font-size: 32px; font-weight: bold; }
  .score-level { font-size: 14px; margin-left: 8px; }
  .score-green { color: #059669; } .score-blue { color: #2563eb; }
  .score-yellow { color: #d97706; } .score-red { color: #dc2626; }
  .bar-row { display: flex; align-items: center; margin-top: 6px; font-size: 12px; }
  .bar-label { width: 110px; color: #374151; }
  .bar-track { flex: 1; background: #e5e7eb; border-radius: 4px; height: 8px; }
  .bar-fill { background: #059669; border-radius: 4px; height: 8px; }
  .bar-value { width: 40px; text-align: right; }
  .recs { margin: 12px 0 0; padding-left: 18px; font-size: 13px; }
  h2 { font-size: 16px; border-bottom: 1px solid #e5e7eb; padding-bottom: 6px; }
  .answer { margin-bottom: 14px; page-break-inside: avoid; }
  .answer .label { font-weight: 600; font-size: 13px; }
  .answer .value { font-size: 13px; color: #374151; margin-top: 2px; white-space: pre-wrap; }
  .empty { color: #9ca3af; font-style: italic; font-size: 13px; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.Name}}</h1>
    <span class="badge">{{.Category}}</span>
    {{if .Description}}<p class="meta">{{.Description}}</p>{{end}}
    <p class="meta">
      {{if .CreatedAt}}Submitted {{.CreatedAt}} &middot; {{end}}Report generated {{.GeneratedAt}}
    </p>
  </div>

  {{with .Score}}
  <div class="score-panel">
    <span class="score-overall score-{{.Color}}">{{printf "%.1f" .Overall}}</span>
    <span class="score-level score-{{.Color}}">{{.Level}}</span>
    <div class="bar-row"><span class="bar-label">Completeness</span><span class="bar-track"><span class="bar-fill" style="width: {{printf "%.0f" .Breakdown.Completeness}}%"></span></span><span class="bar-value">{{printf "%.0f" .Breakdown.Completeness}}</span></div>
    <div class="bar-row"><span class="bar-label">Quality</span><span class="bar-track"><span class="bar-fill" style="width: {{printf "%.0f" .Breakdown.Quality}}%"></span></span><span class="bar-value">{{printf "%.0f" .Breakdown.Quality}}</span></div>
    <div class="bar-row"><span class="bar-label">Transparency</span><span class="bar-track"><span class="bar-fill" style="width: {{printf "%.0f" .Breakdown.Transparency}}%"></span></span><span class="bar-value">{{printf "%.0f" .Breakdown.Transparency}}</span></div>
    <div class="bar-row"><span class="bar-label">Compliance</span><span class="bar-track"><span class="bar-fill" style="width: {{printf "%.0f" .Breakdown.Compliance}}%"></span></span><span class="bar-value">{{printf "%.0f" .Breakdown.Compliance}}</span></div>
    {{if .Recommendations}}
    <ul class="recs">
      {{range .Recommendations}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </div>
  {{end}}

  <h2>Disclosure Answers</h2>
  {{range .Blocks}}
  <div class="answer">
    <div class="label">{{.Label}}</div>
    <div class="value">{{.Value}}</div>
  </div>
  {{else}}
  <p class="empty">No answers were submitted for this product.</p>
  {{end}}
</body>
</html>
`))
