package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Field validation error codes
const (
	ErrMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrNotANumber           = "NOT_A_NUMBER"
	ErrOutOfRange           = "OUT_OF_RANGE"
	ErrInvalidDate          = "INVALID_DATE"
	ErrInvalidOption        = "INVALID_OPTION"
	ErrPatternMismatch      = "PATTERN_MISMATCH"
	ErrLengthOutOfRange     = "LENGTH_OUT_OF_RANGE"
)

// FieldError is a structured, per-field validation failure
type FieldError struct {
	FieldID string `json:"fieldId"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s (%s)", e.FieldID, e.Message, e.Code)
}

// Value is the typed result of validating a raw field input
type Value struct {
	Kind   FieldKind
	Empty  bool
	Text   string
	Number float64
	Time   time.Time
}

// Accepted timestamp layouts, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw string as a calendar timestamp
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", raw)
}

// Validate checks a raw input string against a field schema and returns
// the typed value on success. A nil or empty input fails a required
// field; for optional fields it yields the schema's default value
// (validated in turn) or an explicit empty marker. Pure function, no
// side effects.
func Validate(f FieldSchema, raw *string) (Value, *FieldError) {
	if raw == nil || *raw == "" {
		if f.Required {
			return Value{}, &FieldError{
				FieldID: f.ID,
				Code:    ErrMissingRequiredField,
				Message: fmt.Sprintf("%s is required", f.Label),
			}
		}
		if f.DefaultValue != "" {
			def := f.DefaultValue
			return Validate(withoutDefault(f), &def)
		}
		return Value{Kind: f.Kind, Empty: true}, nil
	}

	value := *raw
	switch f.Kind {
	case FieldKindNumber:
		return validateNumber(f, value)
	case FieldKindDate, FieldKindDatetime:
		return validateDate(f, value)
	case FieldKindSelect, FieldKindRadio:
		return validateOption(f, value)
	case FieldKindPerson, FieldKindTeam:
		// Opaque identifiers; identity resolution is not the validator's job
		return Value{Kind: f.Kind, Text: value}, nil
	default:
		// text, textarea and unknown custom string kinds
		return validateText(f, value)
	}
}

func validateNumber(f FieldSchema, raw string) (Value, *FieldError) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, &FieldError{
			FieldID: f.ID,
			Code:    ErrNotANumber,
			Message: fmt.Sprintf("%s must be a number", f.Label),
		}
	}
	if v := f.Validation; v != nil {
		if v.Min != nil && n < *v.Min {
			return Value{}, &FieldError{
				FieldID: f.ID,
				Code:    ErrOutOfRange,
				Message: fmt.Sprintf("%s must be at least %v", f.Label, *v.Min),
			}
		}
		if v.Max != nil && n > *v.Max {
			return Value{}, &FieldError{
				FieldID: f.ID,
				Code:    ErrOutOfRange,
				Message: fmt.Sprintf("%s must be at most %v", f.Label, *v.Max),
			}
		}
	}
	return Value{Kind: f.Kind, Text: raw, Number: n}, nil
}

func validateDate(f FieldSchema, raw string) (Value, *FieldError) {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return Value{}, &FieldError{
			FieldID: f.ID,
			Code:    ErrInvalidDate,
			Message: fmt.Sprintf("%s is not a valid date", f.Label),
		}
	}
	return Value{Kind: f.Kind, Text: raw, Time: t}, nil
}

func validateOption(f FieldSchema, raw string) (Value, *FieldError) {
	if _, ok := f.OptionLabel(raw); !ok {
		return Value{}, &FieldError{
			FieldID: f.ID,
			Code:    ErrInvalidOption,
			Message: fmt.Sprintf("%q is not an allowed option for %s", raw, f.Label),
		}
	}
	return Value{Kind: f.Kind, Text: raw}, nil
}

func validateText(f FieldSchema, raw string) (Value, *FieldError) {
	if v := f.Validation; v != nil {
		length := len([]rune(raw))
		if v.MinLength != nil && length < *v.MinLength {
			return Value{}, &FieldError{
				FieldID: f.ID,
				Code:    ErrLengthOutOfRange,
				Message: fmt.Sprintf("%s must be at least %d characters", f.Label, *v.MinLength),
			}
		}
		if v.MaxLength != nil && length > *v.MaxLength {
			return Value{}, &FieldError{
				FieldID: f.ID,
				Code:    ErrLengthOutOfRange,
				Message: fmt.Sprintf("%s must be at most %d characters", f.Label, *v.MaxLength),
			}
		}
		if v.Pattern != "" {
			// Anchor the pattern so it matches the whole value; an
			// unanchored match would stop at the leftmost alternative
			re, err := regexp.Compile("^(?:" + v.Pattern + ")$")
			if err == nil && !re.MatchString(raw) {
				return Value{}, &FieldError{
					FieldID: f.ID,
					Code:    ErrPatternMismatch,
					Message: fmt.Sprintf("%s does not match the expected format", f.Label),
				}
			}
		}
	}
	return Value{Kind: f.Kind, Text: raw}, nil
}

// withoutDefault clears the default so default validation cannot recurse
func withoutDefault(f FieldSchema) FieldSchema {
	f.DefaultValue = ""
	return f
}
