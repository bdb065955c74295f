package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStreamsAreIdentical(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "streams diverged at draw %d", i)
	}
}

func TestSeededRange(t *testing.T) {
	src := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestIntnRange(t *testing.T) {
	src := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v := src.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestFixedPickerClamps(t *testing.T) {
	assert.Equal(t, 2, Fixed(2)(5))
	assert.Equal(t, 4, Fixed(10)(5))
	assert.Equal(t, 0, Fixed(-1)(5))
}

func TestSourcePicker(t *testing.T) {
	p := SourcePicker(NewSeeded(3))
	for i := 0; i < 100; i++ {
		v := p(4)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
	}
}
