package lang

import (
	"io"
	"os"
)

// DefaultMaxCallDepth bounds lambda invocation nesting to guard against
// uncontrolled stack growth from recursive lambdas, per the runtime's
// resource model.
const DefaultMaxCallDepth = 10000

// SourceLoader is the narrow interface the core uses to read source text.
// The command-line wrapper's byte-level file reader satisfies it; tests
// can substitute an in-memory loader.
type SourceLoader interface {
	Load(path string) ([]byte, error)
}

// FileLoader reads source files from the local filesystem.
type FileLoader struct{}

func (FileLoader) Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Runtime holds the resources shared by every Env in a single evaluation:
// the source loader, the output sinks, and the call-depth limit. Every
// child Env inherits its parent's Runtime pointer.
type Runtime struct {
	Loader   SourceLoader
	Stdout   io.Writer
	Stderr   io.Writer
	MaxDepth int

	depth int
}

// NewRuntime returns a Runtime with the standard file loader and standard
// output streams.
func NewRuntime() *Runtime {
	return &Runtime{
		Loader:   FileLoader{},
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		MaxDepth: DefaultMaxCallDepth,
	}
}

// enter increments the call depth counter, reporting whether the new depth
// is within the maximum (false means the maximum was exceeded). Each call that returns true must be paired with a
// call to leave; a false return leaves the counter unchanged.
func (rt *Runtime) enter() bool {
	rt.depth++
	if rt.depth > rt.MaxDepth {
		rt.depth--
		return false
	}
	return true
}

func (rt *Runtime) leave() {
	rt.depth--
}
