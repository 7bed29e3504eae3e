// Package shape classifies arbitrary decoded data (mappings, sequences,
// scalars and null) and gives uniform access to it regardless of the
// concrete Go map or slice type that carries it.
package shape
