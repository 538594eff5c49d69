package balance

import "math"

const (
	insensiblePerKg       = 15.0 // мл/кг/сутки
	feverFactorPerDegree  = 0.15 // +15% на каждый градус выше 37 °C
	feverThreshold        = 37.0
	heatFactorPerDegree   = 0.175 // +17.5% на каждый градус выше 30 °C
	heatThreshold         = 30.0
	metabolicPerKg        = 5.0 // мл/кг/сутки
	femaleBodyWaterOffset = 5.0

	DefaultMetabolicCoefficient = 0.13
	MinMetabolicCoefficient     = 0.10
	MaxMetabolicCoefficient     = 0.20
)

// EstimateBodyWaterPercent доля воды в массе тела (%) по возрасту.
// Кусочно-линейная аппроксимация: 80→70 до года, 70→60 до 13 лет,
// 60→50 до 65 лет, далее 50.
func EstimateBodyWaterPercent(age int) float64 {
	a := float64(age)
	switch {
	case a <= 1:
		return 80 - (a/1)*10
	case a <= 13:
		return 70 - ((a-1)/12)*10
	case a <= 65:
		return 60 - ((a-13)/52)*10
	default:
		return 50
	}
}

// BodyWaterPercentFor учитывает пол: у женщин старше 13 лет доля воды на 5 п.п. ниже.
func BodyWaterPercentFor(age int, gender Gender) float64 {
	percent := EstimateBodyWaterPercent(age)
	if gender == GenderFemale && age > 13 {
		percent -= femaleBodyWaterOffset
	}
	return percent
}

// BodyWaterLiters общий объем воды в организме (л)
func BodyWaterLiters(weight, percent float64) float64 {
	return weight * percent / 100
}

// EstimateInsensibleLoss неощутимые потери (мл/сутки).
// Поправки на лихорадку и жару применяются последовательно к одной базе.
func EstimateInsensibleLoss(weight, bodyTemp, roomTemp float64) float64 {
	loss := insensiblePerKg * weight

	if bodyTemp > feverThreshold {
		loss *= 1 + feverFactorPerDegree*(bodyTemp-feverThreshold)
	}

	if roomTemp > heatThreshold {
		loss *= 1 + heatFactorPerDegree*(roomTemp-heatThreshold)
	}

	return loss
}

// MetabolicWaterByWeight эндогенная вода по массе тела: 5 мл/кг/сутки
func MetabolicWaterByWeight(weight float64) float64 {
	return metabolicPerKg * weight
}

// MetabolicWaterByCalories эндогенная вода по калорийности питания.
// Коэффициент вне [0.10, 0.20] приводится к границе, ноль означает значение по умолчанию.
func MetabolicWaterByCalories(kcal, coefficient float64) float64 {
	if coefficient == 0 {
		coefficient = DefaultMetabolicCoefficient
	}
	coefficient = math.Min(math.Max(coefficient, MinMetabolicCoefficient), MaxMetabolicCoefficient)
	return kcal * coefficient
}

// StoolWaterFraction доля воды в стуле по его характеру.
// Для неизвестного значения возвращается доля нормального стула и false.
func StoolWaterFraction(c StoolConsistency) (float64, bool) {
	switch c {
	case StoolNormal:
		return 0.75, true
	case StoolSoft:
		return 0.85, true
	case StoolWatery:
		return 0.90, true
	default:
		return 0.75, false
	}
}

// StoolWaterLoss потери воды со стулом (мл/сутки), граммы считаются равными миллилитрам
func StoolWaterLoss(weight float64, c StoolConsistency) float64 {
	fraction, _ := StoolWaterFraction(c)
	return weight * fraction
}

// UrineTotal суточный диурез в зависимости от режима ввода
func UrineTotal(out OutputEntry) float64 {
	if out.UrineMode == UrineModeDirect {
		return out.UrineTotal
	}
	return float64(out.UrineEvents) * out.UrineVolumePerEvent
}

// DefaultVoidVolume ориентировочный объем одной порции мочи (мл) по массе тела:
// 200 + вес/10*20, в пределах 200..400, округление вниз до целого.
func DefaultVoidVolume(weight float64) float64 {
	v := 200 + weight/10*20
	v = math.Min(math.Max(v, 200), 400)
	return math.Trunc(v)
}
