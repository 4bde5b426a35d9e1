package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hedamo/transparency_api/internal/config"
	"github.com/hedamo/transparency_api/internal/report"
	"github.com/hedamo/transparency_api/internal/service"
)

func newReportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	exporter := report.NewExporter(&config.ReportConfig{ExportTimeout: 2 * time.Second})
	h := NewReportHandler(service.NewProductService(nil, nil), exporter)

	r := gin.New()
	r.POST("/v1/reports/pdf", h.CreateReport)
	return r
}

func TestCreateReportValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		code string
	}{
		{"missing name", `{"category":"Electronics"}`, "MISSING_NAME"},
		{"missing category", `{"name":"Solar Lantern"}`, "MISSING_CATEGORY"},
		{"malformed json", `{`, "INVALID_BODY"},
	}

	router := newReportRouter()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/reports/pdf", strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), c.code) {
				t.Fatalf("body missing error code %q: %s", c.code, w.Body.String())
			}
		})
	}
}

// The export endpoint must always deliver a document: a PDF when a browser
// is available, otherwise the plain-text fallback. Either way the body is
// non-empty and flagged through the declared content type.
func TestCreateReportAlwaysDelivers(t *testing.T) {
	body := `{
		"name": "EcoSoap",
		"category": "Health & Beauty",
		"answers": [{"questionId": "organic_certification", "answer": true}]
	}`

	router := newReportRouter()
	req := httptest.NewRequest(http.MethodPost, "/v1/reports/pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w.Body.Len() == 0 {
		t.Fatalf("export returned empty body")
	}

	ct := w.Header().Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/pdf"):
		if !strings.HasPrefix(w.Body.String(), "%PDF") {
			t.Fatalf("pdf content type with non-pdf body")
		}
	case strings.HasPrefix(ct, "text/plain"):
		if !strings.Contains(w.Body.String(), "Organic Certification: Yes") {
			t.Fatalf("text fallback missing answer:\n%s", w.Body.String())
		}
	default:
		t.Fatalf("unexpected content type %q", ct)
	}

	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if got := w.Header().Get("Content-Length"); got != strconv.Itoa(w.Body.Len()) {
		t.Fatalf("Content-Length = %q, body = %d", got, w.Body.Len())
	}
}
