package mapper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magic-mapper/mapper"
)

func nested() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": "deep",
				"d": "other",
			},
		},
	}
}

func TestChainThreadsOutput(t *testing.T) {
	t.Parallel()

	got, err := mapper.Compose(mapper.Value("a"), mapper.Value("b"), mapper.Value("c")).Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, "deep", got)
}

func TestChainAssociativity(t *testing.T) {
	t.Parallel()

	a, b, c := mapper.Value("a"), mapper.Value("b"), mapper.Value("c")

	left := a.Then(b).Then(c)
	right := a.Then(b.Then(c))

	assert.Equal(t, left.String(), right.String())
	assert.Equal(t, 3, left.Len())
	assert.Equal(t, 3, right.Len())

	l, err := left.Resolve(nested(), nil)
	require.NoError(t, err)
	r, err := right.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, l, r)

	got, err := a.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, nested()["a"], got)
}

func TestChainCompositionDoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	ab := mapper.Value("a").Then(mapper.Value("b"))
	abc := ab.Then(mapper.Value("c"))
	abd := ab.Then(mapper.Value("d"))

	assert.Equal(t, "Value(a)->Value(b)", ab.String())
	assert.Equal(t, "Value(a)->Value(b)->Value(c)", abc.String())
	assert.Equal(t, "Value(a)->Value(b)->Value(d)", abd.String())

	got, err := ab.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, nested()["a"].(map[string]any)["b"], got)

	got, err = abc.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, "deep", got)

	got, err = abd.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, "other", got)
}

func TestChainLinksIsACopy(t *testing.T) {
	t.Parallel()

	chain := mapper.Value("a").Then(mapper.Value("b"))
	links := chain.Links()
	links[0] = mapper.Value("z")

	assert.Equal(t, "Value(a)->Value(b)", chain.String())
}

func TestComposeSingleResolver(t *testing.T) {
	t.Parallel()

	chain := mapper.Compose(mapper.Value("a"))
	assert.Equal(t, 1, chain.Len())

	again := mapper.Compose(chain)
	assert.Equal(t, 1, again.Len())
	assert.NotSame(t, chain, again)
}

func TestComposeNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { mapper.Compose(nil) })
	assert.Panics(t, func() { mapper.Value("a").Then(nil) })
}

func TestChainStopSkipsRemainingLinks(t *testing.T) {
	t.Parallel()

	chain := mapper.Compose(mapper.Value("a"), stopping{final: "early"}, failing{err: errors.New("unreachable")})

	got, err := chain.Resolve(nested(), nil)
	require.NoError(t, err)
	assert.Equal(t, "early", got)
}

func TestChainReturnsOriginalError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	chain := mapper.Compose(mapper.Value("a"), failing{err: errBoom}, mapper.Value("c"))

	got, err := chain.Resolve(nested(), nil)
	assert.Nil(t, got)
	assert.Same(t, errBoom, err)
}

func TestChainLogsTraceOnFailure(t *testing.T) {
	logs := captureLogs(t)

	chain := mapper.Value("a").Then(mapper.Value("missing")).Then(mapper.Value("never"))
	_, err := chain.Resolve(nested(), nil)
	require.ErrorIs(t, err, mapper.ErrMissingKey)

	out := logs.String()
	assert.Contains(t, out, "chain failed to resolve")
	assert.Contains(t, out, "Value(a)->Value(missing)")
	assert.NotContains(t, out, "Value(never)")
}

func TestChainDoesNotLogStop(t *testing.T) {
	logs := captureLogs(t)

	_, err := mapper.Value("a").Then(mapper.Value("b")).Resolve(map[string]any{"a": nil}, nil)
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestCustomResolverInTemplate(t *testing.T) {
	t.Parallel()

	schema := mapper.Fields{"early": mapper.Compose(stopping{final: 42})}

	got, err := mapper.Map(schema, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"early": 42}, got)
}
