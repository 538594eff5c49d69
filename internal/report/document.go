// Package report описывает отчет декларативно (разделы, таблицы, пары ключ-значение)
// и отрисовывает его универсальным движком разметки в PDF.
package report

import (
	"errors"
	"io"
	"time"

	"github.com/Krimson/fluid-balance/internal/balance"
)

// ErrGenerationFailed отчет не удалось сформировать (например, недоступен шрифт).
// Рассчитанные значения при этом не затрагиваются.
var ErrGenerationFailed = errors.New("report generation failed")

// Document отчет без привязки к координатам страницы
type Document struct {
	Title     string
	CreatedAt time.Time
	Meta      []KeyValue
	Sections  []Section
}

// Section раздел с заголовком и набором блоков
type Section struct {
	Heading string
	Blocks  []Block
}

// Block элемент раздела: KeyValues, Table, Banner, Paragraph или List
type Block interface {
	block()
}

type KeyValue struct {
	Key   string
	Value string
}

// KeyValues список пар "метка: значение"
type KeyValues []KeyValue

// Table таблица; первая колонка текстовая, остальные выравниваются вправо
type Table struct {
	Columns []string
	Rows    [][]string
	Footer  [][]string
}

// Banner выделенная строка с цветом по уровню
type Banner struct {
	Level balance.Level
	Text  string
}

type Paragraph struct {
	Text string
}

type List struct {
	Items []string
}

func (KeyValues) block() {}
func (Table) block()     {}
func (Banner) block()    {}
func (Paragraph) block() {}
func (List) block()      {}

// Renderer отрисовывает документ в поток байт
type Renderer interface {
	Render(doc *Document, w io.Writer) error
}
