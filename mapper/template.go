package mapper

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Template describes the shape of the output. It is a closed set of
// variants: Fields, Items and resolver leaves (built-in resolvers and
// chains). Other resolvers enter a template through Compose.
type Template interface {
	Kind() KindEnum
	template()
}

// Fields is a mapping template; each value is walked against the same data.
type Fields map[string]Template

func (Fields) Kind() KindEnum { return KindFields }

func (Fields) template() {}

// Items is a sequence template; each element is walked against the same data.
type Items []Template

func (Items) Kind() KindEnum { return KindItems }

func (Items) template() {}

// NewTemplate converts a loosely typed tree of map[string]any, []any,
// templates and resolvers into a Template. Any other node is rejected
// with UnrecognizedSchemaTypeError.
func NewTemplate(v any) (Template, error) {
	switch v := v.(type) {
	case Template:
		if err := validate(v); err != nil {
			return nil, err
		}

		return v, nil
	case Resolver:
		if isNilLeaf(v) {
			return nil, &UnrecognizedSchemaTypeError{Type: typeName(v)}
		}

		return Compose(v), nil
	case map[string]any:
		out := make(Fields, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			t, err := NewTemplate(v[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			out[k] = t
		}

		return out, nil
	case []any:
		out := make(Items, len(v))
		for i, e := range v {
			t, err := NewTemplate(e)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = t
		}

		return out, nil
	default:
		return nil, &UnrecognizedSchemaTypeError{Type: typeName(v)}
	}
}

// MustTemplate is like NewTemplate but panics on error. It is meant for
// package level schema declarations.
func MustTemplate(v any) Template {
	t, err := NewTemplate(v)
	if err != nil {
		panic("mapper: " + err.Error())
	}

	return t
}

func validate(t Template) error {
	switch t := t.(type) {
	case Fields:
		for _, k := range slices.Sorted(maps.Keys(t)) {
			if err := validate(t[k]); err != nil {
				return fmt.Errorf("field %q: %w", k, err)
			}
		}
	case Items:
		for i, e := range t {
			if err := validate(e); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	default:
		if isNilLeaf(t) {
			return &UnrecognizedSchemaTypeError{Type: typeName(t)}
		}
	}

	return nil
}

// isNilLeaf reports a nil template or a resolver leaf holding a nil pointer.
func isNilLeaf(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("nil %T", v)
	}

	return fmt.Sprintf("%T", v)
}

// describe renders a template outline for traces: field names for Fields,
// element count for Items.
func describe(t Template) string {
	switch t := t.(type) {
	case Fields:
		return "{" + strings.Join(slices.Sorted(maps.Keys(t)), ", ") + "}"
	case Items:
		return "[" + strconv.Itoa(len(t)) + "]"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(t)
	}
}
