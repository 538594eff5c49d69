package form

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Krimson/fluid-balance/internal/balance"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"deref": func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	},
	"mL": func(v float64) string {
		return fmt.Sprintf("%.0f", v)
	},
	"fixed1": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
}).ParseFS(templatesFS, "templates/index.html"))

// PageData данные для отрисовки страницы формы
type PageData struct {
	SessionID string
	Groups    []Group
	Inputs    balance.Inputs
	Result    balance.Result
	Notes     []string
}

// NewPageData собирает данные страницы для сессии с текущими значениями inputs
func NewPageData(sessionID string, inputs balance.Inputs, result balance.Result) PageData {
	return PageData{
		SessionID: sessionID,
		Groups:    Groups(inputs),
		Inputs:    inputs,
		Result:    result,
		Notes:     balance.ReferenceNotes,
	}
}

// RenderPage пишет HTML страницы формы в w
func RenderPage(w io.Writer, data PageData) error {
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render form page: %w", err)
	}
	return nil
}
