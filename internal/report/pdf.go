package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/Krimson/fluid-balance/internal/balance"
)

const (
	pageMargin   = 15.0
	contentWidth = 210.0 - 2*pageMargin // A4
	numberColumn = 35.0
	keyColumn    = 60.0
	lineHeight   = 6.0
	coreFont     = "Helvetica"
)

// PDFRenderer раскладывает Document на страницы A4.
// Без пути к шрифту используется встроенный Helvetica (cp1252),
// с путем - TTF-шрифт в UTF-8 (например, для японского текста).
type PDFRenderer struct {
	fontPath   string
	fontFamily string
}

func NewPDFRenderer(fontPath, fontFamily string) *PDFRenderer {
	if fontFamily == "" {
		fontFamily = "ReportFont"
	}
	return &PDFRenderer{
		fontPath:   fontPath,
		fontFamily: fontFamily,
	}
}

// pdfWriter состояние одной отрисовки
type pdfWriter struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
	bold   string
}

// Render отрисовывает документ. Любой сбой (включая панику внутри fpdf)
// возвращается как ошибка, оборачивающая ErrGenerationFailed.
func (r *PDFRenderer) Render(doc *Document, w io.Writer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrGenerationFailed, p)
		}
	}()

	pw, err := r.newWriter()
	if err != nil {
		return err
	}

	pdf := pw.pdf
	pdf.SetTitle(doc.Title, true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
		pdf.SetModificationDate(doc.CreatedAt)
	}
	pdf.AddPage()

	pw.title(doc.Title)
	for _, kv := range doc.Meta {
		pw.font(10, "")
		pdf.CellFormat(0, 5, pw.tr(kv.Key+": "+kv.Value), "", 1, "R", false, 0, "")
	}

	for _, section := range doc.Sections {
		pw.heading(section.Heading)
		for _, b := range section.Blocks {
			pw.block(b)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrGenerationFailed, pdf.Error())
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return nil
}

func (r *PDFRenderer) newWriter() (*pdfWriter, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	if r.fontPath == "" {
		return &pdfWriter{
			pdf:    pdf,
			family: coreFont,
			tr:     pdf.UnicodeTranslatorFromDescriptor(""),
			bold:   "B",
		}, nil
	}

	if _, err := os.Stat(r.fontPath); err != nil {
		return nil, fmt.Errorf("%w: font unavailable: %v", ErrGenerationFailed, err)
	}

	pdf.AddUTF8Font(r.fontFamily, "", r.fontPath)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: failed to load font %s: %v", ErrGenerationFailed, r.fontPath, pdf.Error())
	}

	// Для TTF подключено только начертание Regular
	return &pdfWriter{
		pdf:    pdf,
		family: r.fontFamily,
		tr:     func(s string) string { return s },
	}, nil
}

func (pw *pdfWriter) font(size float64, style string) {
	if style == "B" {
		style = pw.bold
	}
	pw.pdf.SetFont(pw.family, style, size)
}

func (pw *pdfWriter) title(text string) {
	pw.font(18, "B")
	pw.pdf.CellFormat(0, 12, pw.tr(text), "", 1, "C", false, 0, "")
}

func (pw *pdfWriter) heading(text string) {
	pw.pdf.Ln(4)
	pw.font(13, "B")
	pw.pdf.CellFormat(0, 8, pw.tr(text), "B", 1, "L", false, 0, "")
	pw.pdf.Ln(2)
}

func (pw *pdfWriter) block(b Block) {
	switch v := b.(type) {
	case KeyValues:
		pw.keyValues(v)
	case Table:
		pw.table(v)
	case Banner:
		pw.banner(v)
	case Paragraph:
		pw.font(10, "")
		pw.pdf.MultiCell(0, 5, pw.tr(v.Text), "", "L", false)
	case List:
		pw.font(10, "")
		for _, item := range v.Items {
			pw.pdf.MultiCell(0, 5, pw.tr("- "+item), "", "L", false)
		}
	}
}

func (pw *pdfWriter) keyValues(kvs KeyValues) {
	for _, kv := range kvs {
		pw.font(10, "B")
		pw.pdf.CellFormat(keyColumn, lineHeight, pw.tr(kv.Key), "", 0, "L", false, 0, "")
		pw.font(10, "")
		pw.pdf.CellFormat(0, lineHeight, pw.tr(kv.Value), "", 1, "L", false, 0, "")
	}
}

func (pw *pdfWriter) table(t Table) {
	if len(t.Columns) == 0 {
		return
	}

	widths := make([]float64, len(t.Columns))
	widths[0] = contentWidth - numberColumn*float64(len(t.Columns)-1)
	for i := 1; i < len(widths); i++ {
		widths[i] = numberColumn
	}

	row := func(cells []string, fill bool) {
		for i, w := range widths {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			align := "R"
			if i == 0 {
				align = "L"
			}
			ln := 0
			if i == len(widths)-1 {
				ln = 1
			}
			pw.pdf.CellFormat(w, lineHeight+1, pw.tr(text), "1", ln, align, fill, 0, "")
		}
	}

	pw.pdf.SetFillColor(230, 230, 230)

	pw.font(10, "B")
	row(t.Columns, true)

	pw.font(10, "")
	for _, cells := range t.Rows {
		row(cells, false)
	}

	pw.font(10, "B")
	for _, cells := range t.Footer {
		row(cells, true)
	}
}

func (pw *pdfWriter) banner(b Banner) {
	switch b.Level {
	case balance.LevelSuccess:
		pw.pdf.SetFillColor(212, 237, 218)
	case balance.LevelWarning:
		pw.pdf.SetFillColor(255, 243, 205)
	default:
		pw.pdf.SetFillColor(248, 215, 218)
	}

	pw.pdf.Ln(2)
	pw.font(12, "B")
	pw.pdf.CellFormat(0, 10, pw.tr(b.Text), "1", 1, "C", true, 0, "")
}
