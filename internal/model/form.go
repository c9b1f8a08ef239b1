package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Field types accepted in a form schema.
const (
	FieldText     = "text"     // single-line text input
	FieldNumber   = "number"   // numeric input, submitted as text
	FieldDate     = "date"     // date input, submitted as text
	FieldDropdown = "dropdown" // single choice from Options
	FieldCheckbox = "checkbox" // multiple choices from Options
)

// FieldSpec describes one field of a dynamic form.  Order within
// FormDefinition.Schema is the display order.  Options apply to
// dropdown and checkbox fields only; an empty option list is not
// rejected.  Score is the weight this field contributes to the
// submission score when answered.
type FieldSpec struct {
	ID               string   `json:"id"`
	Label            string   `json:"label"`
	Type             string   `json:"type"`
	Required         bool     `json:"required"`
	Options          []string `json:"options,omitempty"`
	RequiresDocument bool     `json:"requires_document,omitempty"`
	DocumentLabel    string   `json:"document_label,omitempty"`
	Score            int      `json:"score"`
}

// FormDefinition is a named, hall-scoped form schema.  HallID nil
// means the form is global.  At most one form per scope is active at
// a time; the invariant is maintained by the activation sweep in the
// form repository, not by a uniqueness constraint.  Editing a form
// replaces its schema wholesale; no version history is kept.
type FormDefinition struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Active    bool        `json:"active"`
	HallID    *uint64     `json:"hall_id"`
	Schema    []FieldSpec `json:"schema"`
	CreatedAt time.Time   `json:"created_at"`
}

// Kinds of submitted field values.
const (
	ValueText        = "text"
	ValueMultiSelect = "multi"
	ValueFileRef     = "file"
)

// FieldValue is the tagged variant for a submitted answer: plain
// text, a multi-select list, or a reference to an uploaded file.
// On the wire it is a JSON string, a JSON array of strings, or an
// object of the form {"file": "<handle>"} respectively.
type FieldValue struct {
	Kind    string
	Text    string
	Choices []string
	File    string
}

// TextValue builds a text answer.
func TextValue(s string) FieldValue { return FieldValue{Kind: ValueText, Text: s} }

// MultiValue builds a multi-select answer.
func MultiValue(opts ...string) FieldValue {
	return FieldValue{Kind: ValueMultiSelect, Choices: opts}
}

// FileValue builds a file-reference answer.
func FileValue(handle string) FieldValue { return FieldValue{Kind: ValueFileRef, File: handle} }

// IsEmpty reports whether the value counts as unanswered: blank
// after trimming for text, an empty list for multi-select, an empty
// handle for file references.
func (v FieldValue) IsEmpty() bool {
	switch v.Kind {
	case ValueMultiSelect:
		return len(v.Choices) == 0
	case ValueFileRef:
		return strings.TrimSpace(v.File) == ""
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// MarshalJSON encodes the variant in its wire form.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueMultiSelect:
		if v.Choices == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.Choices)
	case ValueFileRef:
		return json.Marshal(map[string]string{"file": v.File})
	default:
		return json.Marshal(v.Text)
	}
}

// UnmarshalJSON decodes a string, array or {"file": ...} object into
// the matching variant.  Anything else is rejected.
func (v *FieldValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = FieldValue{Kind: ValueText}
		return nil
	}
	switch s[0] {
	case '"':
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*v = TextValue(text)
		return nil
	case '[':
		var opts []string
		if err := json.Unmarshal(b, &opts); err != nil {
			return err
		}
		*v = FieldValue{Kind: ValueMultiSelect, Choices: opts}
		return nil
	case '{':
		var obj struct {
			File string `json:"file"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*v = FileValue(obj.File)
		return nil
	}
	return fmt.Errorf("unsupported field value: %s", s)
}

// Score computes the submission score for data against the schema:
// the sum of the score weights of every field with a non-empty
// answer.  Fields absent from data contribute nothing, so an empty
// submission scores 0.  The sum is order-independent.
func (f *FormDefinition) Score(data map[string]FieldValue) int {
	total := 0
	for _, field := range f.Schema {
		v, ok := data[field.ID]
		if ok && !v.IsEmpty() {
			total += field.Score
		}
	}
	return total
}

// MissingRequired returns the labels of required fields that are
// absent or empty in data, in schema order.
func (f *FormDefinition) MissingRequired(data map[string]FieldValue) []string {
	var missing []string
	for _, field := range f.Schema {
		if !field.Required {
			continue
		}
		v, ok := data[field.ID]
		if !ok || v.IsEmpty() {
			missing = append(missing, field.Label)
		}
	}
	return missing
}

// ValidFieldType reports whether t is one of the known field types.
func ValidFieldType(t string) bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldDropdown, FieldCheckbox:
		return true
	}
	return false
}
