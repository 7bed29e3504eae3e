package mapper

// VariableResolver indirects through the variable table.
type VariableResolver struct {
	leaf
	name string
}

// Variable returns a resolver delegating to the table entry called name.
//
// The table is trusted: an entry that references its own name, directly or
// through other entries, recurses without bound.
func Variable(name string) *VariableResolver {
	return &VariableResolver{name: name}
}

func (r *VariableResolver) Resolve(data any, vars Variables) (any, error) {
	target, err := vars.Lookup(r.name)
	if err != nil {
		return nil, err
	}

	// a chain behind a variable acts as a single link: its stop signal
	// ends the enclosing chain too
	if c, ok := target.(*Chain); ok {
		return c.run(data, vars)
	}

	return target.Resolve(data, vars)
}

// Then returns a new chain running r followed by next.
func (r *VariableResolver) Then(next Resolver) *Chain {
	return Compose(r, next)
}

func (r *VariableResolver) String() string {
	return "Variable(" + r.name + ")"
}
