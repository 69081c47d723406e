package carousel

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// TestNormalizeDefaults verifies zero-value options pick up the package
// defaults.
func TestNormalizeDefaults(t *testing.T) {
	opts := Options{}
	opts.normalize(nopLogger())

	assert.Equal(t, DefaultGap, opts.Gap)
	assert.InDelta(t, DefaultDragThreshold, opts.DragThreshold, 1e-9)
	assert.Equal(t, DefaultOverscan, opts.Overscan)
	assert.InDelta(t, DefaultStiffness, opts.Spring.Stiffness, 1e-9)
	assert.InDelta(t, DefaultDamping, opts.Spring.Damping, 1e-9)
	assert.InDelta(t, DefaultMass, opts.Spring.Mass, 1e-9)
}

// TestNormalizeDegradesMalformedValues verifies malformed settings are
// repaired instead of rejected.
func TestNormalizeDegradesMalformedValues(t *testing.T) {
	opts := Options{
		Gap:           -4,
		DragThreshold: 1.5,
		Overscan:      -1,
		Breakpoints: []Breakpoint{
			{Width: 100, Items: 3},
			{Width: -5, Items: 2},
			{Width: 200, Items: 0},
		},
	}
	opts.normalize(nopLogger())

	assert.Equal(t, DefaultGap, opts.Gap)
	assert.InDelta(t, DefaultDragThreshold, opts.DragThreshold, 1e-9)
	assert.Equal(t, DefaultOverscan, opts.Overscan)
	assert.Equal(t, []Breakpoint{{Width: 100, Items: 3}}, opts.Breakpoints)
}

// TestNormalizeZeroGapMeansUnset verifies a zero gap is treated as unset
// and floored to the default, as documented on the field.
func TestNormalizeZeroGapMeansUnset(t *testing.T) {
	opts := Options{Gap: 0}
	opts.normalize(nopLogger())
	assert.Equal(t, DefaultGap, opts.Gap)
}

// TestNormalizeDoesNotMutateCallerBreakpoints verifies filtering invalid
// entries leaves the caller's slice intact.
func TestNormalizeDoesNotMutateCallerBreakpoints(t *testing.T) {
	original := []Breakpoint{
		{Width: 100, Items: 3},
		{Width: -5, Items: 2},
		{Width: 200, Items: 4},
	}
	callerCopy := make([]Breakpoint, len(original))
	copy(callerCopy, original)

	opts := Options{Breakpoints: original}
	opts.normalize(nopLogger())

	assert.Equal(t, callerCopy, original, "caller's slice must be untouched")
	assert.Equal(t, []Breakpoint{{Width: 100, Items: 3}, {Width: 200, Items: 4}}, opts.Breakpoints)
}

// TestDefaultOptionsVirtualizes confirms the packaged defaults enable
// windowed rendering.
func TestDefaultOptionsVirtualizes(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Virtualize)
	assert.Equal(t, DefaultGap, opts.Gap)
}
