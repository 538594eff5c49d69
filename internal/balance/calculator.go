package balance

import "fmt"

// MetabolicPolicy способ оценки эндогенной воды
type MetabolicPolicy string

const (
	MetabolicPolicyWeight  MetabolicPolicy = "weight"  // 5 мл/кг
	MetabolicPolicyCaloric MetabolicPolicy = "caloric" // ккал × коэффициент
)

// ParseMetabolicPolicy разбирает имя политики; пустая строка дает MetabolicPolicyWeight
func ParseMetabolicPolicy(s string) (MetabolicPolicy, error) {
	switch MetabolicPolicy(s) {
	case "", MetabolicPolicyWeight:
		return MetabolicPolicyWeight, nil
	case MetabolicPolicyCaloric:
		return MetabolicPolicyCaloric, nil
	default:
		return "", fmt.Errorf("unknown metabolic policy: %q", s)
	}
}

// Options выбор политик калькулятора
type Options struct {
	JudgmentPolicy  JudgmentPolicy
	MetabolicPolicy MetabolicPolicy
}

// Calculator чистая функция расчета водного баланса с зафиксированными политиками.
// Не хранит состояния между вызовами и безопасен для конкурентного использования.
type Calculator struct {
	judgment  JudgmentPolicy
	metabolic MetabolicPolicy
}

// NewCalculator создает калькулятор; пустые поля Options заменяются значениями по умолчанию
func NewCalculator(opts Options) (*Calculator, error) {
	judgment, err := ParseJudgmentPolicy(string(opts.JudgmentPolicy))
	if err != nil {
		return nil, err
	}

	metabolic, err := ParseMetabolicPolicy(string(opts.MetabolicPolicy))
	if err != nil {
		return nil, err
	}

	return &Calculator{
		judgment:  judgment,
		metabolic: metabolic,
	}, nil
}

func (c *Calculator) JudgmentPolicy() JudgmentPolicy {
	return c.judgment
}

func (c *Calculator) MetabolicPolicy() MetabolicPolicy {
	return c.metabolic
}

// Evaluate выполняет полный пересчет всех производных величин.
// Допустимость ввода проверяется на границе сбора данных, здесь ошибок нет.
func (c *Calculator) Evaluate(in Inputs) Result {
	p := in.Patient

	percent := BodyWaterPercentFor(p.Age, p.Gender)
	insensible := EstimateInsensibleLoss(p.Weight, p.BodyTemperature, p.RoomTemperature)

	var metabolic float64
	if c.metabolic == MetabolicPolicyCaloric {
		metabolic = MetabolicWaterByCalories(in.Intake.CaloricIntake, in.Intake.MetabolicCoefficient)
	} else {
		metabolic = MetabolicWaterByWeight(p.Weight)
	}

	urine := UrineTotal(in.Output)
	stool := StoolWaterLoss(in.Output.StoolWeight, in.Output.StoolConsistency)

	intakeSubtotal := in.Intake.Oral + in.Intake.Intravenous + in.Intake.Transfusion
	outputSubtotal := urine + in.Output.Bleeding + stool

	totalIntake := intakeSubtotal + metabolic
	totalOutput := outputSubtotal + insensible
	net := totalIntake - totalOutput

	judgment := c.judgment.Classify(net)

	return Result{
		BodyWaterPercent: percent,
		BodyWaterLiters:  BodyWaterLiters(p.Weight, percent),
		InsensibleLoss:   insensible,
		MetabolicWater:   metabolic,
		UrineTotal:       urine,
		StoolWaterLoss:   stool,
		IntakeSubtotal:   intakeSubtotal,
		OutputSubtotal:   outputSubtotal,
		TotalIntake:      totalIntake,
		TotalOutput:      totalOutput,
		NetBalance:       net,
		Judgment:         judgment,
		JudgmentLevel:    judgment.Level(),
		JudgmentMessage:  judgment.Message(),
		JudgmentPolicy:   c.judgment,
		MetabolicPolicy:  c.metabolic,
	}
}

// DefaultWeight масса тела новой формы, кг
const DefaultWeight = 50.0

// DefaultInputs значения новой формы
func DefaultInputs() Inputs {
	return DefaultInputsFor(DefaultWeight)
}

// DefaultInputsFor значения новой формы для заданной массы тела:
// объем порции мочи считается по DefaultVoidVolume.
func DefaultInputsFor(weight float64) Inputs {
	return Inputs{
		Patient: PatientParameters{
			Age:             35,
			Weight:          weight,
			BodyTemperature: 36.5,
			RoomTemperature: 25.0,
		},
		Intake: IntakeEntry{
			Oral: 2500,
		},
		Output: OutputEntry{
			UrineMode:           UrineModeEvents,
			UrineEvents:         4,
			UrineVolumePerEvent: DefaultVoidVolume(weight),
			StoolWeight:         150,
			StoolConsistency:    StoolNormal,
		},
	}
}
