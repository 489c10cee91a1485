package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinWhitespaceAwareInsertsSpace(t *testing.T) {
	assert.Equal(t, "a b", JoinWhitespaceAware([]string{"a", "b"}))
}

func TestJoinWhitespaceAwareSkipsWhenBoundaryHasSpace(t *testing.T) {
	assert.Equal(t, "a b", JoinWhitespaceAware([]string{"a ", "b"}))
	assert.Equal(t, "a b", JoinWhitespaceAware([]string{"a", " b"}))
	assert.Equal(t, "a\nb", JoinWhitespaceAware([]string{"a\n", "b"}))
}

func TestJoinWhitespaceAwareEmpty(t *testing.T) {
	assert.Equal(t, "", JoinWhitespaceAware(nil))
}

func TestJoinWhitespaceAwareSingle(t *testing.T) {
	assert.Equal(t, "solo", JoinWhitespaceAware([]string{"solo"}))
}

func TestToStringString(t *testing.T) {
	s, err := ToString(String("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestToStringVectorDropsEmpty(t *testing.T) {
	v := Vector{String("a"), String(""), String("b")}
	s, err := ToString(v)
	require.NoError(t, err)
	assert.Equal(t, "a b", s)
}

func TestToStringNestedVector(t *testing.T) {
	v := Vector{String("a"), Vector{String("b"), String("c")}}
	s, err := ToString(v)
	require.NoError(t, err)
	assert.Equal(t, "a b c", s)
}

func TestToStringLambdaHasNoStableCanonicalForm(t *testing.T) {
	lam := &Lambda{Params: []string{"x", "rest"}, Variadic: true}
	s, err := ToString(lam)
	require.NoError(t, err)
	assert.Contains(t, s, "x")
	assert.Contains(t, s, "rest")
}

func TestToStringBuiltinIsError(t *testing.T) {
	_, err := ToString(&Builtin{Name: "print"})
	assert.ErrorContains(t, err, "builtin")
}

func TestStringifyAndJoin(t *testing.T) {
	s, err := StringifyAndJoin([]Value{String("a"), String(""), String("b")})
	require.NoError(t, err)
	assert.Equal(t, "a b", s)
}
