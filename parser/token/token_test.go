package token

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationString(t *testing.T) {
	loc := &Location{Path: "doc.tart", Line: 3}
	assert.Equal(t, "doc.tart, line 3", loc.String())
}

func TestLocationStringNil(t *testing.T) {
	var loc *Location
	assert.Equal(t, "<unknown>", loc.String())
}

func TestLocationCopyIsIndependent(t *testing.T) {
	loc := &Location{Path: "doc.tart", Line: 1}
	cp := loc.Copy()
	cp.Line = 2
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 2, cp.Line)
}

func TestErrorfFormatsLocationPrefix(t *testing.T) {
	loc := &Location{Path: "doc.tart", Line: 5}
	err := Errorf(loc, "bad thing: %d", 7)
	assert.Equal(t, "[doc.tart, line 5] bad thing: 7", err.Error())
	assert.Equal(t, loc, err.Location)
}

func TestLocationErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	lerr := &LocationError{Err: inner, Location: NewLocation("x")}
	assert.True(t, errors.Is(lerr, inner))
}

func TestRewrapRelocatesPlainError(t *testing.T) {
	inner := fmt.Errorf("plain")
	loc := &Location{Path: "outer.tart", Line: 9}
	got := Rewrap(inner, loc)
	var lerr *LocationError
	require.True(t, errors.As(got, &lerr))
	assert.Equal(t, loc, lerr.Location)
	assert.Equal(t, inner, lerr.Err)
}

func TestRewrapReplacesExistingLocation(t *testing.T) {
	innerLoc := &Location{Path: "inner.tart", Line: 1}
	outerLoc := &Location{Path: "outer.tart", Line: 2}
	original := Errorf(innerLoc, "failure")
	got := Rewrap(original, outerLoc)
	var lerr *LocationError
	require.True(t, errors.As(got, &lerr))
	assert.Equal(t, outerLoc, lerr.Location)
	assert.Equal(t, original.Err, lerr.Err)
}

func TestRewrapNilIsNil(t *testing.T) {
	assert.Nil(t, Rewrap(nil, NewLocation("x")))
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		EOF:      "EOF",
		LBRACKET: "[",
		RBRACKET: "]",
		STRING:   "string",
		INVALID:  "invalid",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.String())
	}
}
