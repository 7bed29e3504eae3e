// Package record converts between the wire form of source records and the
// shapes the mapper works on.
//
// Parse decodes YAML or JSON payloads into map[string]any, []any and
// scalars. Normalize does the same for values that are already decoded but
// carry other Go map or slice types. Decode turns a mapped output into a
// typed Go struct.
package record
