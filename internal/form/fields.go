package form

import "github.com/Krimson/fluid-balance/internal/balance"

// Kind тип элемента формы
type Kind string

const (
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

// Option вариант выбора для KindSelect
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field декларация поля формы: границы, значение по умолчанию и шаг.
// Key совпадает с путем поля в JSON balance.Inputs (например "patient.age").
type Field struct {
	Key     string      `json:"key"`
	Label   string      `json:"label"`
	Unit    string      `json:"unit,omitempty"`
	Group   string      `json:"group"`
	Kind    Kind        `json:"kind"`
	Min     *float64    `json:"min,omitempty"`
	Max     *float64    `json:"max,omitempty"`
	Step    float64     `json:"step,omitempty"`
	Default interface{} `json:"default"`
	Options []Option    `json:"options,omitempty"`
}

// Group группа полей для отображения
type Group struct {
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

const (
	GroupPatient = "patient"
	GroupIntake  = "intake"
	GroupOutput  = "output"
)

func bound(v float64) *float64 {
	return &v
}

func coefficientOrDefault(c float64) float64 {
	if c == 0 {
		return balance.DefaultMetabolicCoefficient
	}
	return c
}

// Fields декларации всех полей формы. Значения по умолчанию берутся из defaults.
func Fields(defaults balance.Inputs) []Field {
	p, in, out := defaults.Patient, defaults.Intake, defaults.Output

	return []Field{
		{Key: "patient.age", Label: "Age", Unit: "years", Group: GroupPatient, Kind: KindNumber,
			Min: bound(0), Max: bound(120), Step: 1, Default: p.Age},
		{Key: "patient.weight", Label: "Body weight", Unit: "kg", Group: GroupPatient, Kind: KindNumber,
			Min: bound(1), Max: bound(300), Step: 0.1, Default: p.Weight},
		{Key: "patient.body_temperature", Label: "Body temperature", Unit: "°C", Group: GroupPatient, Kind: KindNumber,
			Min: bound(30), Max: bound(42), Step: 0.1, Default: p.BodyTemperature},
		{Key: "patient.room_temperature", Label: "Room temperature", Unit: "°C", Group: GroupPatient, Kind: KindNumber,
			Min: bound(10), Max: bound(40), Step: 0.5, Default: p.RoomTemperature},
		{Key: "patient.gender", Label: "Gender", Group: GroupPatient, Kind: KindSelect, Default: string(p.Gender),
			Options: []Option{
				{Value: "", Label: "Not specified"},
				{Value: string(balance.GenderMale), Label: "Male"},
				{Value: string(balance.GenderFemale), Label: "Female"},
			}},

		{Key: "intake.oral", Label: "Oral intake (excluding alcohol and caffeine)", Unit: "mL/day", Group: GroupIntake, Kind: KindNumber,
			Min: bound(0), Max: bound(100000), Step: 50, Default: in.Oral},
		{Key: "intake.intravenous", Label: "IV fluids", Unit: "mL/day", Group: GroupIntake, Kind: KindNumber,
			Min: bound(0), Max: bound(100000), Step: 50, Default: in.Intravenous},
		{Key: "intake.transfusion", Label: "Blood transfusion", Unit: "mL/day", Group: GroupIntake, Kind: KindNumber,
			Min: bound(0), Max: bound(100000), Step: 50, Default: in.Transfusion},
		{Key: "intake.caloric_intake", Label: "Caloric intake", Unit: "kcal/day", Group: GroupIntake, Kind: KindNumber,
			Min: bound(0), Max: bound(20000), Step: 100, Default: in.CaloricIntake},
		{Key: "intake.metabolic_coefficient", Label: "Metabolic water coefficient", Unit: "mL/kcal", Group: GroupIntake, Kind: KindNumber,
			Min: bound(balance.MinMetabolicCoefficient), Max: bound(balance.MaxMetabolicCoefficient), Step: 0.01,
			Default: coefficientOrDefault(in.MetabolicCoefficient)},

		{Key: "output.urine_mode", Label: "Urine entry", Group: GroupOutput, Kind: KindSelect, Default: string(out.UrineMode),
			Options: []Option{
				{Value: string(balance.UrineModeEvents), Label: "Voids x volume per void"},
				{Value: string(balance.UrineModeDirect), Label: "Daily total"},
			}},
		{Key: "output.urine_events", Label: "Voids per day", Unit: "times/day", Group: GroupOutput, Kind: KindNumber,
			Min: bound(0), Max: bound(100), Step: 1, Default: out.UrineEvents},
		{Key: "output.urine_volume_per_event", Label: "Volume per void", Unit: "mL", Group: GroupOutput, Kind: KindNumber,
			Min: bound(0), Max: bound(5000), Step: 10, Default: out.UrineVolumePerEvent},
		{Key: "output.urine_total", Label: "Daily urine total", Unit: "mL/day", Group: GroupOutput, Kind: KindNumber,
			Min: bound(0), Max: bound(100000), Step: 50, Default: out.UrineTotal},
		{Key: "output.bleeding", Label: "Bleeding", Unit: "mL/day", Group: GroupOutput, Kind: KindNumber,
			Min: bound(0), Max: bound(100000), Step: 10, Default: out.Bleeding},
		{Key: "output.stool_weight", Label: "Stool weight", Unit: "g/day", Group: GroupOutput, Kind: KindNumber,
			Min: bound(0), Max: bound(10000), Step: 10, Default: out.StoolWeight},
		{Key: "output.stool_consistency", Label: "Stool consistency", Group: GroupOutput, Kind: KindSelect,
			Default: string(out.StoolConsistency),
			Options: []Option{
				{Value: string(balance.StoolNormal), Label: "Normal (formed)"},
				{Value: string(balance.StoolSoft), Label: "Soft (mushy)"},
				{Value: string(balance.StoolWatery), Label: "Watery (diarrhoea)"},
			}},
	}
}

// Groups поля, разложенные по группам в порядке отображения
func Groups(defaults balance.Inputs) []Group {
	groups := []Group{
		{Name: GroupPatient, Title: "Patient (used only for this calculation, never stored as history)"},
		{Name: GroupIntake, Title: "IN (intake)"},
		{Name: GroupOutput, Title: "OUT (output)"},
	}

	index := make(map[string]int, len(groups))
	for i, g := range groups {
		index[g.Name] = i
	}

	for _, f := range Fields(defaults) {
		i := index[f.Group]
		groups[i].Fields = append(groups[i].Fields, f)
	}

	return groups
}
