package lang

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsInstallEveryEntry(t *testing.T) {
	env := newTestRoot()
	InstallBuiltins(env)
	for _, b := range Builtins {
		v, err := env.Get(b.Name)
		require.NoError(t, err)
		_, ok := v.(*Builtin)
		assert.True(t, ok, "%s should install as a *Builtin", b.Name)
	}
}

func TestLetArityError(t *testing.T) {
	out, err := evalSrc(t, `[let "only-one-arg"]`)
	assert.Empty(t, out)
	assert.ErrorContains(t, err, "expected 2 argument")
}

func TestLetRejectsNonStringName(t *testing.T) {
	_, err := evalSrc(t, `[let [vector] "v"]`)
	assert.ErrorContains(t, err, "expected string")
}

func TestPrintWritesToStdoutAndReturnsEmpty(t *testing.T) {
	rt := NewRuntime()
	var stdout bytes.Buffer
	rt.Stdout = &stdout
	env := NewRootEnv(rt)
	InstallBuiltins(env)
	_ = env.Let("file", String("test.tart"))

	out, err := evalProgramSrc(t, env, `[print "hello" "world"]`)
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestJoinRequiresVectorSecondArg(t *testing.T) {
	_, err := evalSrc(t, `[join "," "not-a-vector"]`)
	assert.ErrorContains(t, err, "expected vector")
}

func TestMapRequiresLambdaFirstArg(t *testing.T) {
	_, err := evalSrc(t, `[map "not-a-lambda" [vector "a"]]`)
	assert.ErrorContains(t, err, "expected lambda")
}

func TestCanonicalPathIsAbsolute(t *testing.T) {
	p := canonicalPath("relative/path.tart")
	assert.True(t, len(p) > 0 && p[0] == '/')
}
