package mapper

import (
	"maps"
	"slices"
)

// Map walks the template t against data and returns a value with the
// template's shape: Fields become map[string]any, Items become []any and
// every resolver leaf is replaced by its resolved value. A nil vars is an
// empty table.
//
// Map either returns a complete result or fails; there are no partial
// results.
func Map(t Template, data any, vars Variables) (any, error) {
	if vars == nil {
		vars = Variables{}
	}

	if isNilLeaf(t) {
		return nil, &UnrecognizedSchemaTypeError{Type: typeName(t)}
	}

	switch t := t.(type) {
	case Fields:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			v, err := Map(t[k], data, vars)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}

		return out, nil
	case Items:
		out := make([]any, 0, len(t))
		for _, e := range t {
			v, err := Map(e, data, vars)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	case *Chain:
		return t.Resolve(data, vars)
	case Resolver:
		return Compose(t).Resolve(data, vars)
	default:
		return nil, &UnrecognizedSchemaTypeError{Type: typeName(t)}
	}
}
