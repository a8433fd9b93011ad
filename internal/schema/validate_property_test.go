package schema

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Any in-range number passes validation and any out-of-range number is
// rejected with OUT_OF_RANGE, for arbitrary inclusive bounds.
func TestProperty_NumberRangeValidation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("numbers inside the bounds pass", prop.ForAll(
		func(min, span, offset float64) bool {
			max := min + span
			f := FieldSchema{
				ID:         "n",
				Label:      "N",
				Kind:       FieldKindNumber,
				Validation: &FieldValidation{Min: &min, Max: &max},
			}
			value := min + span*offset
			raw := strconv.FormatFloat(value, 'f', -1, 64)
			_, err := Validate(f, &raw)
			return err == nil
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1),
	))

	properties.Property("numbers above the upper bound are rejected", prop.ForAll(
		func(min, span, excess float64) bool {
			max := min + span
			f := FieldSchema{
				ID:         "n",
				Label:      "N",
				Kind:       FieldKindNumber,
				Validation: &FieldValidation{Min: &min, Max: &max},
			}
			raw := strconv.FormatFloat(max+excess, 'f', -1, 64)
			_, err := Validate(f, &raw)
			return err != nil && err.Code == ErrOutOfRange
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(1, 1e6),
	))

	properties.TestingRun(t)
}

// A select field accepts exactly its declared option values.
func TestProperty_SelectOptionMembership(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("declared options pass, everything else fails", prop.ForAll(
		func(optionValues []string, probe string) bool {
			options := make([]FieldOption, 0, len(optionValues))
			seen := make(map[string]bool)
			for _, v := range optionValues {
				if v == "" || seen[v] {
					continue
				}
				seen[v] = true
				options = append(options, FieldOption{Value: v, Label: v})
			}
			if len(options) == 0 || probe == "" {
				return true
			}
			f := FieldSchema{ID: "opt", Label: "Opt", Kind: FieldKindSelect, Options: options}

			_, err := Validate(f, &probe)
			if seen[probe] {
				return err == nil
			}
			return err != nil && err.Code == ErrInvalidOption
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
