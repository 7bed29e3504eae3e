// Package diagnostic records why a resolver chain failed and reports it
// for post-mortem tracing.
//
// Key capabilities:
//   - Trace of the links executed up to and including the failing one
//   - Structured error report through a replaceable logrus logger
//   - Debug-level dump of the input the failing link received
package diagnostic
