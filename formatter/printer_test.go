package formatter

import (
	"testing"

	"github.com/ashn-dot-dev/tart/ast"
	"github.com/ashn-dot-dev/tart/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := parser.New("test.tart", src)
	require.NoError(t, err)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestPrintBareWords(t *testing.T) {
	out := Print(mustParseProgram(t, "hello world"))
	assert.Equal(t, "hello\nworld\n", out)
}

func TestPrintVectorInline(t *testing.T) {
	out := Print(mustParseProgram(t, `[string "a" "b"]`))
	assert.Equal(t, "[string a b]\n", out)
}

func TestPrintQuotesWhitespace(t *testing.T) {
	out := Print(mustParseProgram(t, `"hello world"`))
	assert.Equal(t, "\"hello world\"\n", out)
}

func TestPrintQuotesEmptyString(t *testing.T) {
	out := Print(mustParseProgram(t, `""`))
	assert.Equal(t, "\"\"\n", out)
}

func TestPrintEscapesSpecialCharacters(t *testing.T) {
	out := Print(mustParseProgram(t, "\"a\\tb\""))
	assert.Contains(t, out, `\t`)
}

func TestPrintEmptyProgram(t *testing.T) {
	out := Print(mustParseProgram(t, ""))
	assert.Equal(t, "", out)
}
