package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldType identifies the kind of answer an application form field expects.
type FieldType string

// Field type constants cover the form field kinds the analyzer can suggest
// values for. Unknown values are passed through and treated as free text.
const (
	FieldSelectOne  FieldType = "select_one"
	FieldSelectMany FieldType = "select_many"
	FieldText       FieldType = "text"
	FieldTextarea   FieldType = "textarea"
	FieldNumber     FieldType = "number"
	FieldDate       FieldType = "date"
)

// IsChoice reports whether the field type selects from a fixed option list.
func (t FieldType) IsChoice() bool {
	return t == FieldSelectOne || t == FieldSelectMany
}

// CustomField describes one caller-supplied application form field.
// Suggestions are generated for every field, one entry per field name.
type CustomField struct {
	FieldName    string    `json:"field_name" validate:"required"`
	FieldType    FieldType `json:"field_type" validate:"required"`
	FieldLabel   string    `json:"field_label"`
	FieldOptions []string  `json:"field_options,omitempty"`
}

var fieldValidator = validator.New()

// ValidateFields checks custom field definitions at the boundary.
// Every field needs a name and a type; choice fields without options are
// tolerated and fall through to the free-text suggestion path.
func ValidateFields(fields []CustomField) error {
	for i, f := range fields {
		if err := fieldValidator.Struct(f); err != nil {
			return fmt.Errorf("custom field %d (%q): %w", i, f.FieldName, err)
		}
	}
	return nil
}
