package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgCountError(t *testing.T) {
	err := argCountError("join", "2", 1)
	assert.EqualError(t, err, "join: expected 2 argument(s), got 1")
}

func TestArgTypeError(t *testing.T) {
	err := argTypeError("join", 2, KindVector, KindString)
	assert.EqualError(t, err, "join: argument 2: expected vector, got string")
}
