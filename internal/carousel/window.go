package carousel

import "math"

// VisibleRange computes the half-open index range [start, end) of cards that
// must be rendered for the current offset. This is the core windowing
// invariant: the rendered card count is bounded by the viewport (plus
// overscan) regardless of collection size.
//
// offset is the signed horizontal translation of the strip in cells
// (negative values reveal higher indices). With virtualization disabled the
// full range [0, length) is returned. The result always satisfies
// 0 <= start <= end <= length, including for degenerate inputs.
func VisibleRange(offset float64, containerWidth, itemWidth, gap, length, overscan int, virtualize bool) (int, int) {
	if length <= 0 {
		return 0, 0
	}
	if !virtualize {
		return 0, length
	}

	stride := itemWidth + gap
	if stride <= 0 {
		// Unmeasured or degenerate layout: render everything rather than
		// divide by zero.
		return 0, length
	}

	start := int(math.Floor(-offset/float64(stride))) - overscan
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}

	end := int(math.Ceil((-offset+float64(containerWidth))/float64(stride))) + overscan
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}

	return start, end
}
