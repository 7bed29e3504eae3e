package record

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"magic-mapper/shape"
)

// Parse decodes a YAML document (JSON included) into source data.
func Parse(data []byte) (any, error) {
	var v any

	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}

	return Normalize(v), nil
}

// Normalize rewrites every mapping in v as map[string]any, with keys
// rendered by fmt.Sprint, and every sequence as []any. Scalars are kept.
// The input is not modified.
func Normalize(v any) any {
	switch shape.Of(v) {
	case shape.KindMapping:
		rv := reflect.ValueOf(v)
		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}

		return out
	case shape.KindSequence:
		items, _ := shape.Sequence(v)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Normalize(item)
		}

		return out
	default:
		return v
	}
}

// Decode stores a mapped output into target, which must be a pointer.
// Struct fields are matched by their `mapstructure` tag or, failing that,
// case-insensitively by name.
func Decode(output, target any) error {
	return decode(output, target, false)
}

// DecodeStrict is Decode that also fails on output keys no struct field
// consumes.
func DecodeStrict(output, target any) error {
	return decode(output, target, true)
}

func decode(output, target any, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: strict,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(output); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	return nil
}
