package mapper

import (
	"errors"
	"fmt"
	"maps"

	"github.com/sirupsen/logrus"

	"magic-mapper/internal/diagnostic"
)

// Resolver maps the current data and variable table to a value.
//
// Implementations must not mutate data or vars. Returning Stop(v) ends the
// enclosing chain early with v; any other error aborts resolution.
type Resolver interface {
	Resolve(data any, vars Variables) (any, error)
	String() string
}

// Variables maps names to resolvers for Variable indirection.
type Variables map[string]Resolver

// Lookup returns the resolver registered under name.
func (v Variables) Lookup(name string) (Resolver, error) {
	r, ok := v[name]
	if !ok {
		return nil, &MissingVariableError{Name: name}
	}

	return r, nil
}

// Merge returns a new table holding v's entries overridden by local's.
// Neither table is modified.
func (v Variables) Merge(local Variables) Variables {
	out := make(Variables, len(v)+len(local))
	maps.Copy(out, v)
	maps.Copy(out, local)

	return out
}

// StopChain ends a chain early with Final as its result. It is consumed by
// the chain and never reaches callers of Map.
type StopChain struct {
	Final any
}

func (s *StopChain) Error() string {
	return fmt.Sprintf("stop chain with %v", s.Final)
}

// Stop returns the signal that short-circuits the enclosing chain with final.
func Stop(final any) error {
	return &StopChain{Final: final}
}

func asStop(err error) (*StopChain, bool) {
	var stop *StopChain
	if errors.As(err, &stop) {
		return stop, true
	}

	return nil, false
}

// leaf marks built-in resolvers as Template leaves.
type leaf struct{}

func (leaf) Kind() KindEnum { return KindResolver }

func (leaf) template() {}

// SetLogger replaces the logger chain failures are reported to. A nil
// logger restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	diagnostic.SetLogger(l)
}
