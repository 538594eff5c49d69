package form

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Krimson/fluid-balance/internal/balance"
)

func fieldKeys() map[string]Field {
	keys := make(map[string]Field)
	for _, f := range Fields(balance.DefaultInputs()) {
		keys[f.Key] = f
	}
	return keys
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(balance.DefaultInputs()))
}

func TestValidate_OutOfRange(t *testing.T) {
	v := NewValidator()
	keys := fieldKeys()

	tests := []struct {
		name   string
		mutate func(in *balance.Inputs)
		key    string
	}{
		{"age above 120", func(in *balance.Inputs) { in.Patient.Age = 121 }, "patient.age"},
		{"negative age", func(in *balance.Inputs) { in.Patient.Age = -1 }, "patient.age"},
		{"weight below 1", func(in *balance.Inputs) { in.Patient.Weight = 0.5 }, "patient.weight"},
		{"body temperature above 42", func(in *balance.Inputs) { in.Patient.BodyTemperature = 42.5 }, "patient.body_temperature"},
		{"room temperature below 10", func(in *balance.Inputs) { in.Patient.RoomTemperature = 5 }, "patient.room_temperature"},
		{"unknown gender", func(in *balance.Inputs) { in.Patient.Gender = "other" }, "patient.gender"},
		{"negative oral", func(in *balance.Inputs) { in.Intake.Oral = -10 }, "intake.oral"},
		{"negative iv", func(in *balance.Inputs) { in.Intake.Intravenous = -1 }, "intake.intravenous"},
		{"coefficient above range", func(in *balance.Inputs) { in.Intake.MetabolicCoefficient = 0.3 }, "intake.metabolic_coefficient"},
		{"negative urine events", func(in *balance.Inputs) { in.Output.UrineEvents = -2 }, "output.urine_events"},
		{"unknown urine mode", func(in *balance.Inputs) { in.Output.UrineMode = "catheter" }, "output.urine_mode"},
		{"negative bleeding", func(in *balance.Inputs) { in.Output.Bleeding = -5 }, "output.bleeding"},
		{"missing stool consistency", func(in *balance.Inputs) { in.Output.StoolConsistency = "" }, "output.stool_consistency"},
		{"unknown stool consistency", func(in *balance.Inputs) { in.Output.StoolConsistency = "bloody" }, "output.stool_consistency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := balance.DefaultInputs()
			tt.mutate(&in)

			err := v.Validate(in)
			require.Error(t, err)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.key)
			assert.Contains(t, keys, tt.key, "validation key matches a declared field")
		})
	}
}

func TestValidate_Boundaries(t *testing.T) {
	v := NewValidator()

	in := balance.DefaultInputs()
	in.Patient.Age = 0
	in.Patient.Weight = 1
	in.Patient.BodyTemperature = 42
	in.Patient.RoomTemperature = 10
	in.Intake.MetabolicCoefficient = 0.2
	assert.NoError(t, v.Validate(in))

	in.Patient.Age = 120
	in.Patient.BodyTemperature = 30
	in.Patient.RoomTemperature = 40
	in.Intake.MetabolicCoefficient = 0.1
	assert.NoError(t, v.Validate(in))
}

func TestValidationErrors_Message(t *testing.T) {
	err := ValidationErrors{"patient.weight": "must be at least 1", "patient.age": "must be at most 120"}
	assert.Equal(t, "invalid input: patient.age must be at most 120; patient.weight must be at least 1", err.Error())
}

func TestFields_DeclaredBounds(t *testing.T) {
	keys := fieldKeys()

	age := keys["patient.age"]
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	assert.Equal(t, 0.0, *age.Min)
	assert.Equal(t, 120.0, *age.Max)
	assert.Equal(t, 35, age.Default)

	perVoid := keys["output.urine_volume_per_event"]
	assert.Equal(t, 300.0, perVoid.Default, "default derived from 50 kg body weight")

	stool := keys["output.stool_consistency"]
	assert.Equal(t, KindSelect, stool.Kind)
	assert.Len(t, stool.Options, 3)
}

func TestGroups(t *testing.T) {
	groups := Groups(balance.DefaultInputs())
	require.Len(t, groups, 3)

	total := 0
	for _, g := range groups {
		assert.NotEmpty(t, g.Fields, g.Name)
		for _, f := range g.Fields {
			assert.Equal(t, g.Name, f.Group)
		}
		total += len(g.Fields)
	}
	assert.Equal(t, len(Fields(balance.DefaultInputs())), total)
}

func TestRenderPage(t *testing.T) {
	calc, err := balance.NewCalculator(balance.Options{})
	require.NoError(t, err)

	inputs := balance.DefaultInputs()
	data := NewPageData("3f1c1a52-0000-4000-8000-000000000001", inputs, calc.Evaluate(inputs))

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, data))

	html := buf.String()
	assert.Contains(t, html, `data-session="3f1c1a52-0000-4000-8000-000000000001"`)
	assert.Contains(t, html, `data-key="patient.age"`)
	assert.Contains(t, html, `data-key="output.stool_consistency"`)
	assert.Contains(t, html, `<option value="normal" selected>`)
	assert.Contains(t, html, `class="banner warning"`, "50 kg defaults give +687.5 mL/day")
	assert.Contains(t, html, balance.ReferenceNotes[0])

	// измеренные величины и промежуточные суммы рядом с итогами
	assert.Contains(t, html, `<b id="urine_total">1200</b>`)
	assert.Contains(t, html, `<b id="stool_water_loss">`)
	assert.Contains(t, html, `<b id="intake_subtotal">2500</b>`)
	assert.Contains(t, html, `<b id="output_subtotal">`)
	assert.Contains(t, html, `<b id="total_intake">2750</b>`)
}

func TestFields_UpperBoundsMatchValidation(t *testing.T) {
	v := NewValidator()

	for _, f := range Fields(balance.DefaultInputs()) {
		if f.Kind != KindNumber {
			continue
		}
		require.NotNil(t, f.Max, "%s declares an upper bound", f.Key)

		t.Run(f.Key, func(t *testing.T) {
			assert.NoError(t, v.Validate(inputsWith(t, f.Key, *f.Max)), "max is accepted")

			err := v.Validate(inputsWith(t, f.Key, *f.Max+1))
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, f.Key)
		})
	}
}

// inputsWith значения по умолчанию с одним полем, заданным по ключу формы
func inputsWith(t *testing.T, key string, value float64) balance.Inputs {
	t.Helper()

	data, err := json.Marshal(balance.DefaultInputs())
	require.NoError(t, err)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	path := strings.SplitN(key, ".", 2)
	raw[path[0]][path[1]] = value

	data, err = json.Marshal(raw)
	require.NoError(t, err)

	var in balance.Inputs
	require.NoError(t, json.Unmarshal(data, &in))
	return in
}

func TestFields_PerVoidDefaultFollowsWeight(t *testing.T) {
	for _, f := range Fields(balance.DefaultInputsFor(90)) {
		if f.Key == "output.urine_volume_per_event" {
			assert.Equal(t, 380.0, f.Default)
			return
		}
	}
	t.Fatal("output.urine_volume_per_event is not declared")
}
