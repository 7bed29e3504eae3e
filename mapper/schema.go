package mapper

import (
	"magic-mapper/shape"
)

// SchemaResolver applies a nested template to the current data.
type SchemaResolver struct {
	leaf
	schema    Template
	variables Variables
}

// Schema returns a resolver walking t against the current data. Sequence
// data is broadcast: t is applied to every element and the results are
// collected in order.
func Schema(t Template, opts ...SchemaOption) *SchemaResolver {
	r := &SchemaResolver{schema: t}
	for _, o := range opts {
		o(r)
	}

	return r
}

func (r *SchemaResolver) Resolve(data any, vars Variables) (any, error) {
	effective := vars.Merge(r.variables)

	items, ok := shape.Sequence(data)
	if !ok {
		return Map(r.schema, data, effective)
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		v, err := Map(r.schema, item, effective)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Then returns a new chain running r followed by next.
func (r *SchemaResolver) Then(next Resolver) *Chain {
	return Compose(r, next)
}

func (r *SchemaResolver) String() string {
	return "Schema(" + describe(r.schema) + ")"
}
