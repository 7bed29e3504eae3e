// Package mapper is a declarative data-mapping engine.
//
// A schema (Template) describes the shape of the desired output. Its leaves
// are resolvers that extract or derive values from arbitrary nested source
// data: mappings, sequences and scalars. Map walks the schema against one
// source record and returns a value with the schema's shape.
//
// # Resolvers
//
//   - Value: a single key of a mapping, with optional default
//   - List: a key holding a sequence, with cast, length bounds, reduce,
//     filter and index
//   - Variable: indirection through a named table of resolvers
//   - Schema: a nested template, broadcast over sequence data, with local
//     variable overrides
//
// # Chains
//
// Resolvers compose into chains with Compose or Then. Each member receives
// the previous member's output:
//
//	names := mapper.Fields{
//	    "names": mapper.Variable("testvar").
//	        Then(mapper.List("bar", mapper.MinLength(1))).
//	        Then(mapper.Schema(mapper.Fields{"name": mapper.Value("name")})),
//	}
//
// Composition never modifies its operands, so chains and templates can be
// declared once and shared by any number of concurrent Map calls, as long
// as the functions given to Reduce and Filter are pure.
//
// A null value fetched by Value or List stops the chain: the remaining
// members are skipped and the chain resolves to nil. Custom resolvers do the
// same by returning Stop(v).
//
// # Errors
//
// Failures are typed (MissingKeyError, MissingVariableError,
// ListValidationError, IndexError, ShapeError, UnrecognizedSchemaTypeError)
// and match the Err* sentinels with errors.Is. A failing chain logs the
// members it executed up to the failing one and returns the original error
// unchanged. See SetLogger.
package mapper
