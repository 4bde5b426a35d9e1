package report

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/hedamo/transparency_api/internal/config"
	"github.com/hedamo/transparency_api/internal/models"
)

const (
	// MIMEPDF is the content type of the primary export path.
	MIMEPDF = "application/pdf"
	// MIMEText is the content type of the fallback export path.
	MIMEText = "text/plain; charset=utf-8"
)

// A4 paper size and margins in inches for Page.printToPDF.
const (
	paperWidth   = 8.27
	paperHeight  = 11.69
	marginTop    = 0.75
	marginBottom = 0.75
	marginSide   = 0.55
)

// Document is one exported report: either a PDF byte stream or, after
// fallback, a plain-text rendering of the same fields.
type Document struct {
	Data        []byte
	ContentType string
	Filename    string
}

// IsPDF reports whether the primary export path succeeded.
func (d Document) IsPDF() bool {
	return d.ContentType == MIMEPDF
}

// engineFunc converts rendered HTML into PDF bytes.
type engineFunc func(ctx context.Context, html, header string) ([]byte, error)

// Exporter exports product reports. The primary path drives a headless
// browser launched and torn down per call; no instance is shared between
// exports, so concurrent exports need no coordination.
type Exporter struct {
	timeout    time.Duration
	chromePath string
	engine     engineFunc
}

// NewExporter constructs an Exporter from report configuration.
func NewExporter(cfg *config.ReportConfig) *Exporter {
	e := &Exporter{
		timeout:    cfg.ExportTimeout,
		chromePath: cfg.ChromePath,
	}
	if e.timeout <= 0 {
		e.timeout = 15 * time.Second
	}
	e.engine = e.printToPDF
	return e
}

// Export renders the product and converts it to PDF. Any engine failure
// (launch, content set, timeout, serialization) degrades to the plain-text
// rendering; the result is never empty.
func (e *Exporter) Export(ctx context.Context, p *models.Product) Document {
	html, err := RenderHTML(p)
	if err == nil {
		pdf, pdfErr := e.engine(ctx, html, headerBand(p.Name))
		if pdfErr == nil && len(pdf) > 0 {
			return Document{
				Data:        pdf,
				ContentType: MIMEPDF,
				Filename:    reportFilename(p.Name, "pdf"),
			}
		}
		err = pdfErr
	}

	log.Warn().Err(err).Str("product", p.Name).Msg("PDF export failed, falling back to text")

	return Document{
		Data:        []byte(RenderText(p)),
		ContentType: MIMEText,
		Filename:    reportFilename(p.Name, "txt"),
	}
}

// printToPDF launches a headless browser, sets the document content and
// prints it. The whole sequence, launch included, is bounded by the export
// timeout.
func (e *Exporter) printToPDF(ctx context.Context, html, header string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to get frame tree: %w", err)
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(marginTop).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginSide).
				WithMarginRight(marginSide).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(header).
				WithFooterTemplate(footerTemplate).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to print pdf: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("pdf engine returned empty document")
	}
	return pdf, nil
}

// headerBand builds the per-page header showing the product name.
func headerBand(productName string) string {
	return `<div style="font-size: 9px; width: 100%; padding: 0 40px; color: #6b7280;">` +
		template.HTMLEscapeString(productName) +
		` &mdash; Product Transparency Report</div>`
}

// footerTemplate shows page numbers using the printToPDF placeholder classes.
const footerTemplate = `<div style="font-size: 9px; width: 100%; text-align: center; color: #6b7280;">` +
	`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

// reportFilename builds a safe attachment filename from the product name.
func reportFilename(productName, ext string) string {
	slug := unsafeFilenameChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(productName)), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "product"
	}
	return fmt.Sprintf("transparency_report_%s.%s", slug, ext)
}
