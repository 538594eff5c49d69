package balance

// Gender пол пациента (влияет на долю воды у подростков и взрослых)
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// StoolConsistency характер стула
type StoolConsistency string

const (
	StoolNormal StoolConsistency = "normal" // оформленный
	StoolSoft   StoolConsistency = "soft"   // кашицеобразный
	StoolWatery StoolConsistency = "watery" // водянистый
)

// UrineMode способ ввода диуреза
type UrineMode string

const (
	UrineModeEvents UrineMode = "events" // число мочеиспусканий × объем порции
	UrineModeDirect UrineMode = "direct" // суточный объем вводится напрямую
)

// PatientParameters основные параметры пациента и окружения.
// Верхние границы объемов держат расчет в конечных числах.
type PatientParameters struct {
	Age             int     `json:"age" validate:"gte=0,lte=120"`
	Weight          float64 `json:"weight" validate:"gte=1,lte=300"`
	BodyTemperature float64 `json:"body_temperature" validate:"gte=30,lte=42"`
	RoomTemperature float64 `json:"room_temperature" validate:"gte=10,lte=40"`
	Gender          Gender  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}

// IntakeEntry поступление жидкости за сутки (мл)
type IntakeEntry struct {
	Oral        float64 `json:"oral" validate:"gte=0,lte=100000"`
	Intravenous float64 `json:"intravenous" validate:"gte=0,lte=100000"`
	Transfusion float64 `json:"transfusion" validate:"gte=0,lte=100000"`

	// Используются только при MetabolicPolicyCaloric
	CaloricIntake        float64 `json:"caloric_intake,omitempty" validate:"gte=0,lte=20000"`
	MetabolicCoefficient float64 `json:"metabolic_coefficient,omitempty" validate:"omitempty,gte=0.1,lte=0.2"`
}

// OutputEntry потери жидкости за сутки
type OutputEntry struct {
	UrineMode           UrineMode        `json:"urine_mode,omitempty" validate:"omitempty,oneof=events direct"`
	UrineEvents         int              `json:"urine_events" validate:"gte=0,lte=100"`
	UrineVolumePerEvent float64          `json:"urine_volume_per_event" validate:"gte=0,lte=5000"`
	UrineTotal          float64          `json:"urine_total,omitempty" validate:"gte=0,lte=100000"`
	Bleeding            float64          `json:"bleeding" validate:"gte=0,lte=100000"`
	StoolWeight         float64          `json:"stool_weight" validate:"gte=0,lte=10000"`
	StoolConsistency    StoolConsistency `json:"stool_consistency" validate:"required,oneof=normal soft watery"`
}

// Inputs полный набор входных данных одного расчета.
// Значение неизменяемо: калькулятор получает копию и ничего в ней не меняет.
type Inputs struct {
	Patient PatientParameters `json:"patient"`
	Intake  IntakeEntry       `json:"intake"`
	Output  OutputEntry       `json:"output"`
}

// Result производные величины. Не хранится, пересчитывается на каждое изменение ввода.
type Result struct {
	BodyWaterPercent float64 `json:"body_water_percent"`
	BodyWaterLiters  float64 `json:"body_water_liters"`
	InsensibleLoss   float64 `json:"insensible_loss"`
	MetabolicWater   float64 `json:"metabolic_water"`

	UrineTotal     float64 `json:"urine_total"`
	StoolWaterLoss float64 `json:"stool_water_loss"`

	// Промежуточные суммы по колонкам IN/OUT без поправок
	IntakeSubtotal float64 `json:"intake_subtotal"`
	OutputSubtotal float64 `json:"output_subtotal"`

	TotalIntake float64 `json:"total_intake"`
	TotalOutput float64 `json:"total_output"`
	NetBalance  float64 `json:"net_balance"`

	Judgment        Judgment        `json:"judgment"`
	JudgmentLevel   Level           `json:"judgment_level"`
	JudgmentMessage string          `json:"judgment_message"`
	JudgmentPolicy  JudgmentPolicy  `json:"judgment_policy"`
	MetabolicPolicy MetabolicPolicy `json:"metabolic_policy"`
}
