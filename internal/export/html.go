// Package export renders a composed report document to its delivery formats:
// standalone HTML for printing, XML for document interchange, and email.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/utils"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// HTMLRenderer renders a report document to a standalone HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded report template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report.html.tmpl").Funcs(template.FuncMap{
		"currency":        utils.FormatCurrency,
		"currencyOrBlank": utils.FormatCurrencyOrBlank,
		"longDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	}).ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render produces the HTML document.
func (r *HTMLRenderer) Render(doc *domain.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
