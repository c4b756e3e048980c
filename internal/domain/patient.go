package domain

import "fmt"

// Numeric field domains for the clinical form.
const (
	AgeMin = 1
	AgeMax = 120

	RestingBPMin = 50
	RestingBPMax = 250

	CholesterolMin = 0
	CholesterolMax = 600

	MaxHRMin = 60
	MaxHRMax = 220

	OldpeakMin = -5.0
	OldpeakMax = 10.0
)

// Enumerated field domains. Option order defines the ordinal encoding fed to
// the model, so it must match the encoding used when the artifact was trained.
var (
	SexOptions        = []string{"Female", "Male"}
	ChestPainOptions  = []string{"Typical Angina", "Atypical Angina", "Non-Anginal Pain", "Asymptomatic"}
	YesNoOptions      = []string{"No", "Yes"}
	RestingECGOptions = []string{"Normal", "ST-T Wave Abnormality", "Left Ventricular Hypertrophy"}
	STSlopeOptions    = []string{"Upsloping", "Flat", "Downsloping"}
)

// enumAliases maps accepted alternate spellings to canonical option names.
var enumAliases = map[string]string{
	"ST-T Abnormality": "ST-T Wave Abnormality",
}

// FeatureNames is the canonical feature order expected by the model.
var FeatureNames = []string{
	"Age", "Sex", "ChestPainType", "RestingBP", "Cholesterol", "FastingBS",
	"RestingECG", "MaxHR", "ExerciseAngina", "Oldpeak", "ST_Slope",
}

// FieldError describes a single rejected input field with a corrective message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PatientInput carries the raw form values for one assessment request.
type PatientInput struct {
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	ChestPainType  string  `json:"chest_pain_type"`
	RestingBP      int     `json:"resting_bp"`
	Cholesterol    int     `json:"cholesterol"`
	FastingBS      string  `json:"fasting_bs"`
	RestingECG     string  `json:"resting_ecg"`
	MaxHR          int     `json:"max_hr"`
	ExerciseAngina string  `json:"exercise_angina"`
	Oldpeak        float64 `json:"oldpeak"`
	STSlope        string  `json:"st_slope"`
}

// PatientRecord is a validated, immutable snapshot of the eleven clinical
// fields. Enumerated fields are stored as ordinals into their option tables.
type PatientRecord struct {
	Age            int
	Sex            int
	ChestPainType  int
	RestingBP      int
	Cholesterol    int
	FastingBS      int
	RestingECG     int
	MaxHR          int
	ExerciseAngina int
	Oldpeak        float64
	STSlope        int
}

// NewPatientRecord validates every field of the input against its declared
// domain. All fields are checked; the returned slice contains one error per
// rejected field. On any error the zero record is returned.
func NewPatientRecord(in PatientInput) (PatientRecord, []FieldError) {
	var errs []FieldError

	checkInt := func(field string, value, min, max int) {
		if value < min || value > max {
			errs = append(errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("must be between %d and %d", min, max),
			})
		}
	}

	checkInt("age", in.Age, AgeMin, AgeMax)
	checkInt("resting_bp", in.RestingBP, RestingBPMin, RestingBPMax)
	checkInt("cholesterol", in.Cholesterol, CholesterolMin, CholesterolMax)
	checkInt("max_hr", in.MaxHR, MaxHRMin, MaxHRMax)

	if in.Oldpeak < OldpeakMin || in.Oldpeak > OldpeakMax {
		errs = append(errs, FieldError{
			Field:   "oldpeak",
			Message: fmt.Sprintf("must be between %.1f and %.1f", OldpeakMin, OldpeakMax),
		})
	}

	sex := parseEnum("sex", in.Sex, SexOptions, &errs)
	chestPain := parseEnum("chest_pain_type", in.ChestPainType, ChestPainOptions, &errs)
	fastingBS := parseEnum("fasting_bs", in.FastingBS, YesNoOptions, &errs)
	restingECG := parseEnum("resting_ecg", in.RestingECG, RestingECGOptions, &errs)
	exerciseAngina := parseEnum("exercise_angina", in.ExerciseAngina, YesNoOptions, &errs)
	stSlope := parseEnum("st_slope", in.STSlope, STSlopeOptions, &errs)

	if len(errs) > 0 {
		return PatientRecord{}, errs
	}

	return PatientRecord{
		Age:            in.Age,
		Sex:            sex,
		ChestPainType:  chestPain,
		RestingBP:      in.RestingBP,
		Cholesterol:    in.Cholesterol,
		FastingBS:      fastingBS,
		RestingECG:     restingECG,
		MaxHR:          in.MaxHR,
		ExerciseAngina: exerciseAngina,
		Oldpeak:        in.Oldpeak,
		STSlope:        stSlope,
	}, nil
}

// parseEnum resolves a form value to its ordinal within options.
func parseEnum(field, value string, options []string, errs *[]FieldError) int {
	if canonical, ok := enumAliases[value]; ok {
		value = canonical
	}
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	*errs = append(*errs, FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be one of %v", options),
	})
	return 0
}

// FeatureVector returns the record encoded in the canonical feature order.
func (r PatientRecord) FeatureVector() []float64 {
	return []float64{
		float64(r.Age),
		float64(r.Sex),
		float64(r.ChestPainType),
		float64(r.RestingBP),
		float64(r.Cholesterol),
		float64(r.FastingBS),
		float64(r.RestingECG),
		float64(r.MaxHR),
		float64(r.ExerciseAngina),
		r.Oldpeak,
		float64(r.STSlope),
	}
}

func (r PatientRecord) SexName() string            { return optionName(SexOptions, r.Sex) }
func (r PatientRecord) ChestPainName() string      { return optionName(ChestPainOptions, r.ChestPainType) }
func (r PatientRecord) FastingBSName() string      { return optionName(YesNoOptions, r.FastingBS) }
func (r PatientRecord) RestingECGName() string     { return optionName(RestingECGOptions, r.RestingECG) }
func (r PatientRecord) ExerciseAnginaName() string { return optionName(YesNoOptions, r.ExerciseAngina) }
func (r PatientRecord) STSlopeName() string        { return optionName(STSlopeOptions, r.STSlope) }

func optionName(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}

// FormField describes one input field for the single-page form.
type FormField struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Type    string      `json:"type"` // "number" or "select"
	Min     *float64    `json:"min,omitempty"`
	Max     *float64    `json:"max,omitempty"`
	Step    *float64    `json:"step,omitempty"`
	Options []string    `json:"options,omitempty"`
	Default interface{} `json:"default"`
}

// FormSchema returns the eleven field definitions the UI renders the form from.
func FormSchema() []FormField {
	return []FormField{
		numberField("age", "Age (years)", AgeMin, AgeMax, 1, 50),
		selectField("sex", "Sex", SexOptions),
		selectField("chest_pain_type", "Chest Pain Type", ChestPainOptions),
		numberField("resting_bp", "Resting Blood Pressure (mm Hg)", RestingBPMin, RestingBPMax, 1, 120),
		numberField("cholesterol", "Cholesterol (mg/dL)", CholesterolMin, CholesterolMax, 1, 200),
		selectField("fasting_bs", "Fasting Blood Sugar > 120 mg/dL", YesNoOptions),
		selectField("resting_ecg", "Resting ECG", RestingECGOptions),
		numberField("max_hr", "Maximum Heart Rate", MaxHRMin, MaxHRMax, 1, 150),
		selectField("exercise_angina", "Exercise-Induced Angina", YesNoOptions),
		numberField("oldpeak", "ST Depression (Oldpeak)", OldpeakMin, OldpeakMax, 0.1, 0.0),
		selectField("st_slope", "ST Slope", STSlopeOptions),
	}
}

func numberField(name, label string, min, max, step, def float64) FormField {
	return FormField{
		Name:    name,
		Label:   label,
		Type:    "number",
		Min:     &min,
		Max:     &max,
		Step:    &step,
		Default: def,
	}
}

func selectField(name, label string, options []string) FormField {
	return FormField{
		Name:    name,
		Label:   label,
		Type:    "select",
		Options: options,
		Default: options[0],
	}
}
