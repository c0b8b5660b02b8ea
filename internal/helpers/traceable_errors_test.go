package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))

	assert.False(t, IsNil(Errorf("oops")))
}

func TestJoin(t *testing.T) {
	assert.True(t, IsNil(Join(NilError, NilError)))
	assert.False(t, IsNil(Join(NilError, Errorf("oops"))))
}

func TestErrorWrapping(t *testing.T) {
	inner := Errorf("inner")
	outer := Errorf("outer: %w", inner)
	assert.Contains(t, outer.Error(), "outer")
	assert.Contains(t, outer.Error(), "inner")
}
