package report

import (
	"fmt"
	"strings"

	"github.com/hedamo/transparency_api/internal/models"
)

// RenderText renders the product as a plain-text report. This is the
// guaranteed-to-succeed floor of the export pipeline: it cannot fail and
// never returns an empty string.
func RenderText(p *models.Product) string {
	var sb strings.Builder

	title := strings.TrimSpace(p.Name)
	if title == "" {
		title = "Untitled Product"
	}

	sb.WriteString("PRODUCT TRANSPARENCY REPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&sb, "Product:  %s\n", title)
	fmt.Fprintf(&sb, "Category: %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(&sb, "About:    %s\n", p.Description)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, "Submitted: %s\n", p.CreatedAt.Format("2006-01-02"))
	}
	sb.WriteString("\n")

	if s := p.Score; s != nil {
		sb.WriteString("TRANSPARENCY SCORE\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		fmt.Fprintf(&sb, "Overall:      %.1f / 100 (%s)\n", s.Overall, s.Level)
		fmt.Fprintf(&sb, "Completeness: %.1f\n", s.Breakdown.Completeness)
		fmt.Fprintf(&sb, "Quality:      %.1f\n", s.Breakdown.Quality)
		fmt.Fprintf(&sb, "Transparency: %.1f\n", s.Breakdown.Transparency)
		fmt.Fprintf(&sb, "Compliance:   %.1f\n", s.Breakdown.Compliance)
		if len(s.Recommendations) > 0 {
			sb.WriteString("Recommendations:\n")
			for i, rec := range s.Recommendations {
				fmt.Fprintf(&sb, "  %d. %s\n", i+1, rec)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("DISCLOSURE ANSWERS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	if len(p.Answers) == 0 {
		sb.WriteString("No answers were submitted for this product.\n")
	}
	for _, block := range buildBlocks(p) {
		fmt.Fprintf(&sb, "%s: %s\n", block.Label, block.Value)
	}

	return sb.String()
}
