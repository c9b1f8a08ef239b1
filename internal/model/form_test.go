package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() *FormDefinition {
	return &FormDefinition{
		ID:   1,
		Name: "Hall Seat Allotment",
		Schema: []FieldSpec{
			{ID: "name", Label: "Full Name", Type: FieldText, Required: true, Score: 0},
			{ID: "cgpa", Label: "CGPA", Type: FieldNumber, Required: true, Score: 30},
			{ID: "distance", Label: "Home Distance", Type: FieldDropdown, Options: []string{"<50km", "50-150km", ">150km"}, Score: 20},
			{ID: "activities", Label: "Activities", Type: FieldCheckbox, Options: []string{"Sports", "Debate"}, Score: 10},
			{ID: "income_proof", Label: "Income Certificate", Type: FieldText, RequiresDocument: true, Score: 25},
		},
	}
}

func TestScoreEmptySubmissionIsZero(t *testing.T) {
	f := sampleForm()
	assert.Equal(t, 0, f.Score(nil))
	assert.Equal(t, 0, f.Score(map[string]FieldValue{}))
}

func TestScoreSumsOnlyAnsweredFields(t *testing.T) {
	f := sampleForm()
	data := map[string]FieldValue{
		"name":       TextValue("Rahim"),
		"cgpa":       TextValue("3.75"),
		"distance":   TextValue(">150km"),
		"activities": MultiValue(), // empty list counts as unanswered
	}
	assert.Equal(t, 50, f.Score(data))

	data["activities"] = MultiValue("Sports")
	assert.Equal(t, 60, f.Score(data))

	data["income_proof"] = FileValue("upload-17")
	assert.Equal(t, 85, f.Score(data))
}

func TestScoreIgnoresBlankAndUnknownAnswers(t *testing.T) {
	f := sampleForm()
	data := map[string]FieldValue{
		"cgpa":    TextValue("   "), // whitespace only
		"unknown": TextValue("whatever"),
	}
	assert.Equal(t, 0, f.Score(data))
}

func TestMissingRequired(t *testing.T) {
	f := sampleForm()

	missing := f.MissingRequired(map[string]FieldValue{"name": TextValue("Rahim")})
	assert.Equal(t, []string{"CGPA"}, missing)

	missing = f.MissingRequired(map[string]FieldValue{
		"name": TextValue("Rahim"),
		"cgpa": TextValue("3.75"),
	})
	assert.Empty(t, missing)

	// Blank counts the same as absent.
	missing = f.MissingRequired(map[string]FieldValue{
		"name": TextValue(""),
		"cgpa": TextValue("3.75"),
	})
	assert.Equal(t, []string{"Full Name"}, missing)
}

func TestFieldValueIsEmpty(t *testing.T) {
	assert.True(t, TextValue("").IsEmpty())
	assert.True(t, TextValue("  \t").IsEmpty())
	assert.False(t, TextValue("x").IsEmpty())
	assert.True(t, MultiValue().IsEmpty())
	assert.False(t, MultiValue("a").IsEmpty())
	assert.True(t, FileValue("").IsEmpty())
	assert.False(t, FileValue("upload-1").IsEmpty())
}

func TestFieldValueJSONWireShapes(t *testing.T) {
	var v FieldValue

	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &v))
	assert.Equal(t, ValueText, v.Kind)
	assert.Equal(t, "hello", v.Text)

	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &v))
	assert.Equal(t, ValueMultiSelect, v.Kind)
	assert.Equal(t, []string{"a", "b"}, v.Choices)

	require.NoError(t, json.Unmarshal([]byte(`{"file":"upload-9"}`), &v))
	assert.Equal(t, ValueFileRef, v.Kind)
	assert.Equal(t, "upload-9", v.File)

	assert.Error(t, json.Unmarshal([]byte(`42`), &v))

	out, err := json.Marshal(map[string]FieldValue{
		"a": TextValue("x"),
		"b": MultiValue("p", "q"),
		"c": FileValue("upload-3"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":["p","q"],"c":{"file":"upload-3"}}`, string(out))
}

func TestValidators(t *testing.T) {
	for _, ft := range []string{FieldText, FieldNumber, FieldDate, FieldDropdown, FieldCheckbox} {
		assert.True(t, ValidFieldType(ft), ft)
	}
	assert.False(t, ValidFieldType("textarea"))

	for _, s := range []string{StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected, StatusPending} {
		assert.True(t, ValidApplicationStatus(s), s)
	}
	assert.False(t, ValidApplicationStatus("Withdrawn"))
}
