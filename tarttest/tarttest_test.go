package tarttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerEvalReturnsValueAndStdout(t *testing.T) {
	r := &Runner{}
	res := r.MustEval(t, "test.tart", `[print "hi"] "done"`)
	assert.Equal(t, "done", res.Value)
	assert.Equal(t, "hi\n", res.Stdout)
}

func TestRunnerEvalPropagatesErrors(t *testing.T) {
	r := &Runner{}
	_, err := r.Eval(t, "test.tart", `[get missing]`)
	assert.ErrorContains(t, err, "undeclared variable")
}

func TestRunnerWithMapLoaderSupportsRun(t *testing.T) {
	r := &Runner{Loader: MapLoader{
		"/virtual/main.tart": `[run "lib.tart"] [get value]`,
		"/virtual/lib.tart":  `[let value "loaded"]`,
	}}
	res := r.MustEval(t, "/virtual/main.tart", `[run "lib.tart"] [get value]`)
	assert.Equal(t, "loaded", res.Value)
}
