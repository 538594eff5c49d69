package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krimson/fluid-balance/internal/balance"
)

func scenarioRecord(t *testing.T, recorder string) Record {
	t.Helper()

	in := balance.Inputs{
		Patient: balance.PatientParameters{Age: 35, Weight: 50, BodyTemperature: 36.5, RoomTemperature: 25},
		Intake:  balance.IntakeEntry{Oral: 2500},
		Output: balance.OutputEntry{
			UrineMode:           balance.UrineModeEvents,
			UrineEvents:         4,
			UrineVolumePerEvent: 250,
			StoolWeight:         150,
			StoolConsistency:    balance.StoolNormal,
		},
	}

	calc, err := balance.NewCalculator(balance.Options{})
	require.NoError(t, err)

	return Record{
		Inputs:      in,
		Result:      calc.Evaluate(in),
		Recorder:    recorder,
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func findSection(t *testing.T, doc *Document, heading string) Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Heading == heading {
			return s
		}
	}
	t.Fatalf("section %q not found", heading)
	return Section{}
}

func TestBuild_Layout(t *testing.T) {
	doc := Build(scenarioRecord(t, "Nurse Sato"))

	assert.Equal(t, "Fluid Balance Report", doc.Title)
	assert.Equal(t, []KeyValue{
		{Key: "Generated", Value: "2026-03-14 09:30"},
		{Key: "Recorded by", Value: "Nurse Sato"},
	}, doc.Meta)

	headings := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{"Basic information", "Intake / Output (mL/day)", "Fluid balance", "Reference"}, headings)
}

func TestBuild_EmptyRecorder(t *testing.T) {
	doc := Build(scenarioRecord(t, ""))
	assert.Equal(t, "-", doc.Meta[1].Value)
}

func TestBuild_IntakeOutputTable(t *testing.T) {
	doc := Build(scenarioRecord(t, ""))
	section := findSection(t, doc, "Intake / Output (mL/day)")
	require.Len(t, section.Blocks, 1)

	table, ok := section.Blocks[0].(Table)
	require.True(t, ok)

	assert.Equal(t, []string{"Item", "IN", "OUT"}, table.Columns)
	assert.Contains(t, table.Rows, []string{"Oral intake", "2500", ""})
	assert.Contains(t, table.Rows, []string{"Metabolic water", "250", ""})
	assert.Contains(t, table.Rows, []string{"Urine (4 x 250 mL)", "", "1000"})
	assert.Contains(t, table.Rows, []string{"Stool water (150 g, normal)", "", "112.5"})
	assert.Contains(t, table.Rows, []string{"Insensible loss", "", "750"})
	assert.Equal(t, [][]string{
		{"Subtotal (measured)", "2500", "1112.5"},
		{"Total", "2750", "1862.5"},
	}, table.Footer)
}

func TestBuild_BalanceBlock(t *testing.T) {
	doc := Build(scenarioRecord(t, ""))
	section := findSection(t, doc, "Fluid balance")
	require.Len(t, section.Blocks, 2)

	kvs := section.Blocks[0].(KeyValues)
	assert.Equal(t, KeyValue{Key: "Net balance", Value: "887.5 mL/day"}, kvs[0])
	assert.Equal(t, KeyValue{Key: "Judgment", Value: "overload"}, kvs[1])

	banner := section.Blocks[1].(Banner)
	assert.Equal(t, balance.LevelDanger, banner.Level)
	assert.Equal(t, balance.JudgmentOverload.Message(), banner.Text)
}

func TestBuild_DirectUrine(t *testing.T) {
	rec := scenarioRecord(t, "")
	rec.Inputs.Output.UrineMode = balance.UrineModeDirect
	rec.Inputs.Output.UrineTotal = 1430

	calc, err := balance.NewCalculator(balance.Options{})
	require.NoError(t, err)
	rec.Result = calc.Evaluate(rec.Inputs)

	table := findSection(t, Build(rec), "Intake / Output (mL/day)").Blocks[0].(Table)
	assert.Contains(t, table.Rows, []string{"Urine (daily total)", "", "1430"})
}

func TestVolume(t *testing.T) {
	assert.Equal(t, "112.5", volume(112.5))
	assert.Equal(t, "750", volume(750))
	assert.Equal(t, "862.5", volume(862.4999999))
	assert.Equal(t, "0", volume(-0.01))
	assert.Equal(t, "-312.5", volume(-312.5))
}

func TestPDFRenderer_CoreFont(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFRenderer("", "").Render(Build(scenarioRecord(t, "Nurse Sato")), &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFRenderer_MissingFont(t *testing.T) {
	renderer := NewPDFRenderer(filepath.Join(t.TempDir(), "NotoSansJP-Regular.ttf"), "NotoSansJP")

	var buf bytes.Buffer
	err := renderer.Render(Build(scenarioRecord(t, "")), &buf)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestPDFRenderer_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFRenderer("", "").Render(&Document{Title: "Empty"}, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
