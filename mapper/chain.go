package mapper

import (
	"strings"

	"magic-mapper/internal/common"
	"magic-mapper/internal/diagnostic"
)

// Chain is an ordered, immutable composition of resolvers. The output of
// each member is the input of the next.
type Chain struct {
	leaf
	links []Resolver
}

// Compose joins resolvers into a new chain. Operands that are chains
// contribute their members in order. Operands are never modified, so a
// partial chain can be reused in any number of compositions.
func Compose(first Resolver, rest ...Resolver) *Chain {
	links := common.Concat[[]Resolver](nil, unwrap(first))
	for _, r := range rest {
		links = common.Concat(links, unwrap(r))
	}

	return &Chain{links: links}
}

func unwrap(r Resolver) []Resolver {
	switch r := r.(type) {
	case nil:
		panic("mapper: cannot compose a nil resolver")
	case *Chain:
		return r.links
	default:
		return []Resolver{r}
	}
}

// Then returns a new chain running c followed by next.
func (c *Chain) Then(next Resolver) *Chain {
	return Compose(c, next)
}

// Links returns a copy of the chain members.
func (c *Chain) Links() []Resolver {
	return common.Concat[[]Resolver](nil, c.links)
}

// Len returns the number of chain members.
func (c *Chain) Len() int {
	return len(c.links)
}

// Resolve runs the members in order. A member that stops the chain makes
// its final value the result. Any other failure is reported with the trace
// of executed members and returned unchanged.
func (c *Chain) Resolve(data any, vars Variables) (any, error) {
	out, err := c.run(data, vars)
	if stop, ok := asStop(err); ok {
		return stop.Final, nil
	}

	return out, err
}

// run is Resolve without consuming the stop signal, for chains nested as a
// single link of another chain.
func (c *Chain) run(data any, vars Variables) (any, error) {
	current := data
	for i, link := range c.links {
		next, err := link.Resolve(current, vars)
		if err != nil {
			if _, ok := asStop(err); !ok {
				diagnostic.Report(diagnostic.Trace{
					Links: render(c.links[:i+1]),
					Err:   err,
					Input: current,
				})
			}

			return nil, err
		}
		current = next
	}

	return current, nil
}

func (c *Chain) String() string {
	return strings.Join(render(c.links), "->")
}

func render(links []Resolver) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}

	return out
}
