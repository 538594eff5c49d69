package balance

import "fmt"

// Judgment категориальная оценка суточного баланса
type Judgment string

const (
	JudgmentOverload        Judgment = "overload"
	JudgmentMildPositive    Judgment = "mild_positive"
	JudgmentNormal          Judgment = "normal"
	JudgmentDehydrationRisk Judgment = "dehydration_risk"
)

// Level цвет баннера на форме ("светофор")
type Level string

const (
	LevelDanger  Level = "danger"
	LevelWarning Level = "warning"
	LevelSuccess Level = "success"
)

// JudgmentPolicy схема порогов классификации
type JudgmentPolicy string

const (
	// PolicyFourBand: >700 избыток; (300,700] умеренно положительный;
	// [-200,300] норма; < -200 риск дегидратации.
	PolicyFourBand JudgmentPolicy = "four_band"
	// PolicyThreeBand: >500 избыток; < -200 риск дегидратации; иначе норма.
	PolicyThreeBand JudgmentPolicy = "three_band"
)

// ParseJudgmentPolicy разбирает имя политики; пустая строка дает PolicyFourBand
func ParseJudgmentPolicy(s string) (JudgmentPolicy, error) {
	switch JudgmentPolicy(s) {
	case "", PolicyFourBand:
		return PolicyFourBand, nil
	case PolicyThreeBand:
		return PolicyThreeBand, nil
	default:
		return "", fmt.Errorf("unknown judgment policy: %q", s)
	}
}

// Classify отображает баланс (мл/сутки) в категорию.
// Верхние границы полос включительные, нижняя граница нормы тоже включительная.
func (p JudgmentPolicy) Classify(net float64) Judgment {
	if p == PolicyThreeBand {
		switch {
		case net > 500:
			return JudgmentOverload
		case net < -200:
			return JudgmentDehydrationRisk
		default:
			return JudgmentNormal
		}
	}

	switch {
	case net > 700:
		return JudgmentOverload
	case net > 300:
		return JudgmentMildPositive
	case net >= -200:
		return JudgmentNormal
	default:
		return JudgmentDehydrationRisk
	}
}

func (j Judgment) Level() Level {
	switch j {
	case JudgmentMildPositive:
		return LevelWarning
	case JudgmentNormal:
		return LevelSuccess
	default:
		return LevelDanger
	}
}

func (j Judgment) Message() string {
	switch j {
	case JudgmentOverload:
		return "Balance strongly positive: possible fluid overload"
	case JudgmentMildPositive:
		return "Slightly positive: acceptable for a typical adult"
	case JudgmentNormal:
		return "Balance is within the appropriate range"
	case JudgmentDehydrationRisk:
		return "Balance negative: risk of dehydration"
	default:
		return string(j)
	}
}

// ReferenceNotes справочные ориентиры для интерпретации результата
var ReferenceNotes = []string{
	"Neonates: high body water content, dehydration progresses quickly",
	"Elderly: low body water content, high dehydration risk",
	"Healthy adults: around +500 to +600 mL/day is appropriate",
	"Fever or hot environment: insensible loss increases",
	"Heart or renal failure: manage around zero to slightly negative",
}
