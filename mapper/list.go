package mapper

import (
	"fmt"
	"strings"

	"magic-mapper/internal/common"
	"magic-mapper/shape"
)

// ListResolver extracts a key expected to hold a sequence and validates,
// reduces, filters and indexes it.
type ListResolver struct {
	leaf
	key string

	cast bool

	index    int
	hasIndex bool

	minLength int
	hasMin    bool
	maxLength int
	hasMax    bool

	reduce ReduceFunc
	zero   ZeroFunc
	filter Predicate

	def        any
	hasDefault bool
}

// List returns a resolver for the sequence under key.
func List(key string, opts ...ListOption) *ListResolver {
	r := &ListResolver{key: key}
	for _, o := range opts {
		o.applyList(r)
	}

	return r
}

// Resolve runs the steps in a fixed order: fetch, null short-circuit, cast,
// max_length, min_length, reduce, filter, index. Length bounds apply to the
// fetched (and cast) sequence, before any reduce or filter. Without cast or
// any other option a value that is not a sequence is returned as is.
func (r *ListResolver) Resolve(data any, _ Variables) (any, error) {
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

	var out any = v
	if items, ok := shape.Sequence(v); ok {
		out = items
	} else if r.cast {
		out = []any{v}
	}

	if r.hasMax {
		items, err := r.sequence(out)
		if err != nil {
			return nil, err
		}
		if len(items) > r.maxLength {
			return nil, &ListValidationError{Key: r.key, Length: len(items), Bound: "max_length", Limit: r.maxLength}
		}
	}

	if r.hasMin {
		items, err := r.sequence(out)
		if err != nil {
			return nil, err
		}
		if len(items) < r.minLength {
			return nil, &ListValidationError{Key: r.key, Length: len(items), Bound: "min_length", Limit: r.minLength}
		}
	}

	if r.reduce != nil {
		items, err := r.sequence(out)
		if err != nil {
			return nil, err
		}

		var zero any
		if r.zero != nil {
			zero = r.zero()
		}

		out, err = common.Fold(items, zero, r.reduce)
		if err != nil {
			return nil, err
		}
	}

	if r.filter != nil {
		seq, err := r.sequence(out)
		if err != nil {
			return nil, err
		}

		out, err = common.Filter(seq, r.filter)
		if err != nil {
			return nil, err
		}
	}

	if r.hasIndex {
		seq, err := r.sequence(out)
		if err != nil {
			return nil, err
		}

		elem, ok := common.At(seq, r.index)
		if !ok {
			return nil, &IndexError{Key: r.key, Index: r.index, Length: len(seq)}
		}

		return elem, nil
	}

	return out, nil
}

// sequence returns v as a sequence for the steps that need one.
func (r *ListResolver) sequence(v any) ([]any, error) {
	items, ok := shape.Sequence(v)
	if !ok {
		return nil, shapeError(r, shape.KindSequence, v)
	}

	return items, nil
}

// Then returns a new chain running r followed by next.
func (r *ListResolver) Then(next Resolver) *Chain {
	return Compose(r, next)
}

func (r *ListResolver) String() string {
	parts := []string{r.key}
	if r.cast {
		parts = append(parts, "cast")
	}
	if r.hasMax {
		parts = append(parts, fmt.Sprintf("max=%d", r.maxLength))
	}
	if r.hasMin {
		parts = append(parts, fmt.Sprintf("min=%d", r.minLength))
	}
	if r.reduce != nil {
		parts = append(parts, "reduce")
	}
	if r.filter != nil {
		parts = append(parts, "filter")
	}
	if r.hasIndex {
		parts = append(parts, fmt.Sprintf("index=%d", r.index))
	}
	if r.hasDefault {
		parts = append(parts, fmt.Sprintf("default=%v", r.def))
	}

	return "List(" + strings.Join(parts, ", ") + ")"
}
