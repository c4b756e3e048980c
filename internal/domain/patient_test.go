package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PatientInput {
	return PatientInput{
		Age:            50,
		Sex:            "Male",
		ChestPainType:  "Asymptomatic",
		RestingBP:      120,
		Cholesterol:    200,
		FastingBS:      "No",
		RestingECG:     "Normal",
		MaxHR:          150,
		ExerciseAngina: "No",
		Oldpeak:        0.0,
		STSlope:        "Flat",
	}
}

func TestNewPatientRecord_Valid(t *testing.T) {
	rec, errs := NewPatientRecord(validInput())
	require.Empty(t, errs)

	assert.Equal(t, 50, rec.Age)
	assert.Equal(t, 1, rec.Sex)
	assert.Equal(t, 3, rec.ChestPainType)
	assert.Equal(t, 0, rec.FastingBS)
	assert.Equal(t, 1, rec.STSlope)
}

func TestNewPatientRecord_NumericBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*PatientInput, float64)
		min    float64
		max    float64
		step   float64
	}{
		{"age", "age", func(in *PatientInput, v float64) { in.Age = int(v) }, AgeMin, AgeMax, 1},
		{"resting_bp", "resting_bp", func(in *PatientInput, v float64) { in.RestingBP = int(v) }, RestingBPMin, RestingBPMax, 1},
		{"cholesterol", "cholesterol", func(in *PatientInput, v float64) { in.Cholesterol = int(v) }, CholesterolMin, CholesterolMax, 1},
		{"max_hr", "max_hr", func(in *PatientInput, v float64) { in.MaxHR = int(v) }, MaxHRMin, MaxHRMax, 1},
		{"oldpeak", "oldpeak", func(in *PatientInput, v float64) { in.Oldpeak = v }, OldpeakMin, OldpeakMax, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []float64{tt.min, tt.max} {
				in := validInput()
				tt.mutate(&in, v)
				_, errs := NewPatientRecord(in)
				assert.Empty(t, errs, "value %v should be accepted", v)
			}
			for _, v := range []float64{tt.min - tt.step, tt.max + tt.step} {
				in := validInput()
				tt.mutate(&in, v)
				_, errs := NewPatientRecord(in)
				require.Len(t, errs, 1, "value %v should be rejected", v)
				assert.Equal(t, tt.field, errs[0].Field)
				assert.NotEmpty(t, errs[0].Message)
			}
		})
	}
}

func TestNewPatientRecord_EnumOrdinals(t *testing.T) {
	for i, opt := range ChestPainOptions {
		in := validInput()
		in.ChestPainType = opt
		rec, errs := NewPatientRecord(in)
		require.Empty(t, errs)
		assert.Equal(t, i, rec.ChestPainType)
	}
	for i, opt := range STSlopeOptions {
		in := validInput()
		in.STSlope = opt
		rec, errs := NewPatientRecord(in)
		require.Empty(t, errs)
		assert.Equal(t, i, rec.STSlope)
	}
}

func TestNewPatientRecord_UnknownEnum(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*PatientInput)
	}{
		{"sex", func(in *PatientInput) { in.Sex = "Other" }},
		{"chest_pain_type", func(in *PatientInput) { in.ChestPainType = "Sharp" }},
		{"fasting_bs", func(in *PatientInput) { in.FastingBS = "Maybe" }},
		{"resting_ecg", func(in *PatientInput) { in.RestingECG = "Irregular" }},
		{"exercise_angina", func(in *PatientInput) { in.ExerciseAngina = "Sometimes" }},
		{"st_slope", func(in *PatientInput) { in.STSlope = "Level" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, errs := NewPatientRecord(in)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Contains(t, errs[0].Message, "must be one of")
		})
	}
}

func TestNewPatientRecord_ECGAlias(t *testing.T) {
	in := validInput()
	in.RestingECG = "ST-T Abnormality"
	rec, errs := NewPatientRecord(in)
	require.Empty(t, errs)
	assert.Equal(t, 1, rec.RestingECG)
}

func TestNewPatientRecord_CollectsAllErrors(t *testing.T) {
	in := validInput()
	in.Age = 0
	in.Cholesterol = 601
	in.Sex = "unknown"
	_, errs := NewPatientRecord(in)
	assert.Len(t, errs, 3)
}

func TestFeatureVector_Order(t *testing.T) {
	in := validInput()
	in.Age = 65
	in.ChestPainType = "Typical Angina"
	in.Oldpeak = 3.5
	in.STSlope = "Downsloping"
	rec, errs := NewPatientRecord(in)
	require.Empty(t, errs)

	got := rec.FeatureVector()
	want := []float64{65, 1, 0, 120, 200, 0, 0, 150, 0, 3.5, 2}
	assert.Equal(t, want, got)
	assert.Len(t, got, len(FeatureNames))
}

func TestFormSchema(t *testing.T) {
	fields := FormSchema()
	require.Len(t, fields, 11)

	byName := make(map[string]FormField, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	age := byName["age"]
	require.Equal(t, "number", age.Type)
	assert.Equal(t, float64(AgeMin), *age.Min)
	assert.Equal(t, float64(AgeMax), *age.Max)

	sex := byName["sex"]
	require.Equal(t, "select", sex.Type)
	assert.Equal(t, SexOptions, sex.Options)
}
