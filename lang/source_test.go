package lang

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLoader map[string]string

func (m mapLoader) Load(path string) ([]byte, error) {
	src, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("no such source: %s", path)
	}
	return []byte(src), nil
}

func TestRunSharesEnvironmentWithCaller(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime()
	rt.Stdout = &out
	rt.Loader = mapLoader{
		"/virtual/main.tart": `[run "lib.tart"] [get greeting]`,
		"/virtual/lib.tart":  `[let greeting "hi"]`,
	}
	require.NoError(t, Run("/virtual/main.tart", rt))
	assert.Equal(t, "hi\n", out.String())
}

func TestRunRestoresFileBindingAfterReturn(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime()
	rt.Stdout = &out
	loader := mapLoader{
		"/virtual/main.tart": `[run "lib.tart"] [get file]`,
		"/virtual/lib.tart":  `[let unused "x"]`,
	}
	rt.Loader = loader
	require.NoError(t, Run("/virtual/main.tart", rt))
	assert.Equal(t, "/virtual/main.tart\n", out.String())
}

func TestRunResolvesRelativeToIncludingFile(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime()
	rt.Stdout = &out
	rt.Loader = mapLoader{
		"/virtual/main.tart":    `[run "sub/lib.tart"] [get value]`,
		"/virtual/sub/lib.tart": `[let value "nested"]`,
	}
	require.NoError(t, Run("/virtual/main.tart", rt))
	assert.Equal(t, "nested\n", out.String())
}

func TestEvalSourceEvaluatesIntoSameEnv(t *testing.T) {
	env := newTestRoot()
	InstallBuiltins(env)
	require.NoError(t, EvalSource("inc.tart", `[let x "1"]`, env))
	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, String("1"), v)
}

func TestRunOmitsEmptyTrailingOutput(t *testing.T) {
	var out bytes.Buffer
	rt := NewRuntime()
	rt.Stdout = &out
	rt.Loader = mapLoader{"/virtual/main.tart": `[let x "1"]`}
	require.NoError(t, Run("/virtual/main.tart", rt))
	assert.Equal(t, "", out.String())
}
