package common

// Concat returns a freshly allocated slice holding a's elements followed by
// b's. Neither argument is modified and the result never shares a backing
// array with them.
func Concat[S ~[]E, E any](a, b S) S {
	out := make(S, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Fold combines the elements of s from left to right, starting with zero.
// The first error returned by fn stops the fold.
func Fold[S ~[]E, E, A any](s S, zero A, fn func(acc A, elem E) (A, error)) (A, error) {
	acc := zero
	for _, e := range s {
		var err error
		if acc, err = fn(acc, e); err != nil {
			return acc, err
		}
	}

	return acc, nil
}

// Filter returns a new slice with the elements of s for which keep reports
// true, in their original order.
func Filter[S ~[]E, E any](s S, keep func(E) (bool, error)) (S, error) {
	out := make(S, 0, len(s))
	for _, e := range s {
		ok, err := keep(e)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, e)
		}
	}

	return out, nil
}

// At returns the element at position i. Negative positions count from the
// end, so -1 is the last element.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 {
		i += len(s)
	}

	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}
