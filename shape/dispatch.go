package shape

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrNotMapping is returned by Lookup for data that is not a mapping.
var ErrNotMapping = errors.New("value is not a mapping")

var bytesType = reflect.TypeOf([]byte(nil))

// Of reports the shape of v. Any Go map counts as a mapping and any slice
// or array counts as a sequence, except []byte which is a scalar.
func Of(v any) KindEnum {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice:
		if rv.Type() == bytesType {
			return KindScalar
		}

		return KindSequence
	case reflect.Array:
		return KindSequence
	default:
		return KindScalar
	}
}

// Sequence returns the elements of v when v is a sequence. A []any is
// returned as is; other slice and array types are copied into a new []any.
func Sequence(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	if Of(v) != KindSequence {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// Lookup fetches key from the mapping v. found is false when the key is
// absent. ErrNotMapping is returned when v is not a mapping at all.
func Lookup(v any, key string) (value any, found bool, err error) {
	if m, ok := v.(map[string]any); ok {
		value, found = m[key]
		return value, found, nil
	}

	if Of(v) != KindMapping {
		return nil, false, fmt.Errorf("lookup %q in %s: %w", key, TypeName(v), ErrNotMapping)
	}

	rv := reflect.ValueOf(v)
	kv, ok := mapKey(rv.Type().Key(), key)
	if !ok {
		return nil, false, nil
	}

	elem := rv.MapIndex(kv)
	if !elem.IsValid() {
		return nil, false, nil
	}

	return elem.Interface(), true, nil
}

// Keys returns the keys of the mapping v rendered as strings and sorted.
// It returns nil when v is not a mapping.
func Keys(v any) []string {
	if Of(v) != KindMapping {
		return nil
	}

	rv := reflect.ValueOf(v)
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, fmt.Sprint(k.Interface()))
	}
	slices.Sort(keys)

	return keys
}

// TypeName describes the dynamic type of v for error messages.
func TypeName(v any) string {
	if v == nil {
		return "null"
	}

	return reflect.TypeOf(v).String()
}

// mapKey converts a string lookup key into a value usable with a map whose
// key type is kt. Only string-like and interface key types can hold it.
func mapKey(kt reflect.Type, key string) (reflect.Value, bool) {
	kv := reflect.ValueOf(key)

	switch kt.Kind() {
	case reflect.Interface:
		if kv.Type().Implements(kt) {
			return kv.Convert(kt), true
		}
	case reflect.String:
		return kv.Convert(kt), true
	}

	return reflect.Value{}, false
}
