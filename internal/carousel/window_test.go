package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVisibleRange verifies the windowing math across offsets, overscan
// settings, and degenerate layouts.
func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name           string
		offset         float64
		containerWidth int
		itemWidth      int
		gap            int
		length         int
		overscan       int
		virtualize     bool
		wantStart      int
		wantEnd        int
	}{
		{
			name:           "at origin covers first viewport plus overscan",
			offset:         0,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         100,
			overscan:       2,
			virtualize:     true,
			wantStart:      0,
			wantEnd:        6,
		},
		{
			name:           "scrolled into the middle of the strip",
			offset:         -1080,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         100,
			overscan:       2,
			virtualize:     true,
			wantStart:      8,
			wantEnd:        16,
		},
		{
			name:           "end clamps to collection length",
			offset:         -1080,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         12,
			overscan:       2,
			virtualize:     true,
			wantStart:      8,
			wantEnd:        12,
		},
		{
			name:           "zero overscan renders exactly the viewport",
			offset:         -108,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         100,
			overscan:       0,
			virtualize:     true,
			wantStart:      1,
			wantEnd:        5,
		},
		{
			name:           "virtualization disabled returns full range",
			offset:         -5000,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         100,
			overscan:       2,
			virtualize:     false,
			wantStart:      0,
			wantEnd:        100,
		},
		{
			name:           "empty collection",
			offset:         0,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         0,
			overscan:       2,
			virtualize:     true,
			wantStart:      0,
			wantEnd:        0,
		},
		{
			name:           "zero stride falls back to full range",
			offset:         -100,
			containerWidth: 424,
			itemWidth:      0,
			gap:            0,
			length:         10,
			overscan:       2,
			virtualize:     true,
			wantStart:      0,
			wantEnd:        10,
		},
		{
			name:           "offset far past the end stays in bounds",
			offset:         -100000,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         10,
			overscan:       2,
			virtualize:     true,
			wantStart:      10,
			wantEnd:        10,
		},
		{
			name:           "positive offset (peeked past origin) stays at zero",
			offset:         15,
			containerWidth: 424,
			itemWidth:      100,
			gap:            8,
			length:         100,
			overscan:       2,
			virtualize:     true,
			wantStart:      0,
			wantEnd:        6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleRange(
				tt.offset, tt.containerWidth,
				tt.itemWidth, tt.gap,
				tt.length, tt.overscan, tt.virtualize,
			)
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
		})
	}
}

// TestVisibleRangeBounds fuzzes a grid of inputs and checks the structural
// invariant 0 <= start <= end <= length always holds.
func TestVisibleRangeBounds(t *testing.T) {
	for _, offset := range []float64{1000, 0, -54, -108.5, -10000} {
		for _, length := range []int{0, 1, 4, 100} {
			for _, overscan := range []int{0, 2, 50} {
				start, end := VisibleRange(offset, 424, 100, 8, length, overscan, true)
				assert.GreaterOrEqual(t, start, 0)
				assert.LessOrEqual(t, start, end)
				assert.LessOrEqual(t, end, length)
			}
		}
	}
}
