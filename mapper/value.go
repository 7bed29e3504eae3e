package mapper

import (
	"fmt"

	"magic-mapper/shape"
)

// ValueResolver extracts a single key from a mapping.
type ValueResolver struct {
	leaf
	key        string
	def        any
	hasDefault bool
}

// Value returns a resolver for key.
//
// A null value (or a nil default) stops the chain with nil. An absent key
// without a default fails with MissingKeyError listing the available keys.
func Value(key string, opts ...ValueOption) *ValueResolver {
	r := &ValueResolver{key: key}
	for _, o := range opts {
		o.applyValue(r)
	}

	return r
}

func (r *ValueResolver) Resolve(data any, _ Variables) (any, error) {
	v, found, err := shape.Lookup(data, r.key)
	if err != nil {
		return nil, shapeError(r, shape.KindMapping, data)
	}

	if !found {
		if !r.hasDefault {
			return nil, &MissingKeyError{Key: r.key, Available: shape.Keys(data)}
		}
		v = r.def
	}

	if v == nil {
		return nil, Stop(nil)
	}

	return v, nil
}

// Then returns a new chain running r followed by next.
func (r *ValueResolver) Then(next Resolver) *Chain {
	return Compose(r, next)
}

func (r *ValueResolver) String() string {
	if r.hasDefault {
		return fmt.Sprintf("Value(%s, default=%v)", r.key, r.def)
	}

	return "Value(" + r.key + ")"
}
