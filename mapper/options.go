package mapper

// ValueOption configures a ValueResolver.
type ValueOption interface {
	applyValue(*ValueResolver)
}

// ListOption configures a ListResolver.
type ListOption interface {
	applyList(*ListResolver)
}

// ReduceFunc folds one element into the accumulator. It must be pure.
type ReduceFunc func(acc, elem any) (any, error)

// ZeroFunc builds a fresh accumulator for every fold. It must be pure.
type ZeroFunc func() any

// Predicate reports whether an element is kept. It must be pure.
type Predicate func(elem any) (bool, error)

type defaultOption struct {
	value any
}

func (o defaultOption) applyValue(r *ValueResolver) {
	r.def, r.hasDefault = o.value, true
}

func (o defaultOption) applyList(r *ListResolver) {
	r.def, r.hasDefault = o.value, true
}

// DefaultOption applies to both Value and List resolvers.
type DefaultOption interface {
	ValueOption
	ListOption
}

// WithDefault sets the value used when the key is absent. A nil default
// short-circuits the chain with nil, like a present null.
func WithDefault(v any) DefaultOption {
	return defaultOption{value: v}
}

type listOptionFunc func(*ListResolver)

func (f listOptionFunc) applyList(r *ListResolver) { f(r) }

// Cast wraps a value that is not a sequence into a single element sequence.
func Cast() ListOption {
	return listOptionFunc(func(r *ListResolver) { r.cast = true })
}

// Index selects one element of the result. Negative positions count from the end.
func Index(i int) ListOption {
	return listOptionFunc(func(r *ListResolver) { r.index, r.hasIndex = i, true })
}

// MinLength rejects sequences shorter than n.
func MinLength(n int) ListOption {
	return listOptionFunc(func(r *ListResolver) { r.minLength, r.hasMin = n, true })
}

// MaxLength rejects sequences longer than n.
func MaxLength(n int) ListOption {
	return listOptionFunc(func(r *ListResolver) { r.maxLength, r.hasMax = n, true })
}

// Reduce folds the sequence left to right starting from zero().
func Reduce(fn ReduceFunc, zero ZeroFunc) ListOption {
	return listOptionFunc(func(r *ListResolver) { r.reduce, r.zero = fn, zero })
}

// Filter keeps the elements for which keep reports true.
func Filter(keep Predicate) ListOption {
	return listOptionFunc(func(r *ListResolver) { r.filter = keep })
}

// SchemaOption configures a SchemaResolver.
type SchemaOption func(*SchemaResolver)

// WithVariables adds local variables that take precedence over the
// caller's table inside the schema.
func WithVariables(vars Variables) SchemaOption {
	return func(r *SchemaResolver) {
		r.variables = Variables(nil).Merge(vars)
	}
}
