package report

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Krimson/fluid-balance/internal/balance"
)

const timestampLayout = "2006-01-02 15:04"

// Record плоская запись для отчета: все исходные данные и все производные величины
type Record struct {
	Inputs      balance.Inputs
	Result      balance.Result
	Recorder    string
	GeneratedAt time.Time
}

// Build раскладывает запись в фиксированную структуру отчета
func Build(rec Record) *Document {
	in, res := rec.Inputs, rec.Result

	recorder := rec.Recorder
	if recorder == "" {
		recorder = "-"
	}

	return &Document{
		Title:     "Fluid Balance Report",
		CreatedAt: rec.GeneratedAt,
		Meta: []KeyValue{
			{Key: "Generated", Value: rec.GeneratedAt.Format(timestampLayout)},
			{Key: "Recorded by", Value: recorder},
		},
		Sections: []Section{
			{Heading: "Basic information", Blocks: []Block{basicInfo(in, res)}},
			{Heading: "Intake / Output (mL/day)", Blocks: []Block{intakeOutputTable(in, res)}},
			{Heading: "Fluid balance", Blocks: []Block{
				KeyValues{
					{Key: "Net balance", Value: volume(res.NetBalance) + " mL/day"},
					{Key: "Judgment", Value: string(res.Judgment)},
					{Key: "Judgment policy", Value: string(res.JudgmentPolicy)},
					{Key: "Metabolic water policy", Value: string(res.MetabolicPolicy)},
				},
				Banner{Level: res.JudgmentLevel, Text: res.JudgmentMessage},
			}},
			{Heading: "Reference", Blocks: []Block{List{Items: balance.ReferenceNotes}}},
		},
	}
}

func basicInfo(in balance.Inputs, res balance.Result) KeyValues {
	p := in.Patient

	gender := string(p.Gender)
	if gender == "" {
		gender = "not specified"
	}

	return KeyValues{
		{Key: "Age", Value: fmt.Sprintf("%d years", p.Age)},
		{Key: "Gender", Value: gender},
		{Key: "Body weight", Value: decimal(p.Weight) + " kg"},
		{Key: "Body temperature", Value: decimal(p.BodyTemperature) + " °C"},
		{Key: "Room temperature", Value: decimal(p.RoomTemperature) + " °C"},
		{Key: "Body water ratio", Value: fmt.Sprintf("%.1f %%", res.BodyWaterPercent)},
		{Key: "Total body water", Value: fmt.Sprintf("%.1f L", res.BodyWaterLiters)},
	}
}

func intakeOutputTable(in balance.Inputs, res balance.Result) Table {
	out := in.Output

	urineLabel := "Urine (daily total)"
	if out.UrineMode != balance.UrineModeDirect {
		urineLabel = fmt.Sprintf("Urine (%d x %s mL)", out.UrineEvents, volume(out.UrineVolumePerEvent))
	}

	rows := [][]string{
		{"Oral intake", volume(in.Intake.Oral), ""},
		{"IV fluids", volume(in.Intake.Intravenous), ""},
		{"Blood transfusion", volume(in.Intake.Transfusion), ""},
	}
	if res.MetabolicPolicy == balance.MetabolicPolicyCaloric {
		rows = append(rows, []string{
			fmt.Sprintf("Metabolic water (%s kcal)", volume(in.Intake.CaloricIntake)), volume(res.MetabolicWater), "",
		})
	} else {
		rows = append(rows, []string{"Metabolic water", volume(res.MetabolicWater), ""})
	}

	rows = append(rows,
		[]string{urineLabel, "", volume(res.UrineTotal)},
		[]string{"Bleeding", "", volume(out.Bleeding)},
		[]string{fmt.Sprintf("Stool water (%s g, %s)", volume(out.StoolWeight), out.StoolConsistency), "", volume(res.StoolWaterLoss)},
		[]string{"Insensible loss", "", volume(res.InsensibleLoss)},
	)

	return Table{
		Columns: []string{"Item", "IN", "OUT"},
		Rows:    rows,
		Footer: [][]string{
			{"Subtotal (measured)", volume(res.IntakeSubtotal), volume(res.OutputSubtotal)},
			{"Total", volume(res.TotalIntake), volume(res.TotalOutput)},
		},
	}
}

// volume объем с точностью до 0.1 мл без лишних нулей: 112.5, 750
func volume(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
