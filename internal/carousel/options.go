package carousel

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Default option values applied by Options.normalize.
const (
	// DefaultGap is the spacing between adjacent cards in cells.
	DefaultGap = 2

	// DefaultDragThreshold is the fraction of a card width a drag must cover
	// before releasing commits a slide change.
	DefaultDragThreshold = 0.2

	// DefaultOverscan is the number of extra cards rendered on each side of
	// the visible window to mask pop-in during fast movement.
	DefaultOverscan = 2
)

// Default pseudo-spring parameters. The values mirror the common
// stiffness/damping/mass presets used by UI spring libraries.
const (
	DefaultStiffness = 170.0
	DefaultDamping   = 26.0
	DefaultMass      = 1.0
)

// Breakpoint maps a container width threshold to an items-per-view count.
// A breakpoint applies when its Width is less than or equal to the current
// container width.
type Breakpoint struct {
	// Width is the minimum container width in cells for this entry to apply.
	Width int
	// Items is the number of cards shown at once at this width.
	Items int
}

// Peek controls partial visibility of the card adjacent to the viewport
// edge, hinting that more content exists.
type Peek struct {
	// Enabled turns peeking on.
	Enabled bool
	// Amount is either a cell count ("4") or a percentage of the card width
	// ("15%"). Malformed values degrade to zero peek.
	Amount string
}

// Spring parameterizes the pseudo-spring easing curve used for offset
// animation. See animator.go for the exact formula.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Options is the immutable-per-render settings record for a carousel.
// The zero value is usable after normalize fills in defaults.
type Options struct {
	// Gap is the spacing between cards in cells. Zero means unset and is
	// replaced with DefaultGap; a zero-cell gap is not representable.
	Gap int

	// Peek configures partial visibility of the adjacent card.
	Peek Peek

	// Breakpoints is an explicit responsive breakpoint list. When non-empty
	// it takes precedence over the built-in width-tier table.
	Breakpoints []Breakpoint

	// TierOverrides adjusts individual entries of the built-in width-tier
	// table (width threshold -> items per view).
	TierOverrides map[int]int

	// DragThreshold is the fraction of a card width a drag must cover to
	// commit a slide change on release.
	DragThreshold float64

	// Spring holds the easing curve parameters.
	Spring Spring

	// Virtualize enables windowed rendering. When false the full collection
	// is rendered every frame.
	Virtualize bool

	// Overscan is the number of extra cards rendered beyond each edge of the
	// visible window when virtualization is on.
	Overscan int
}

// DefaultOptions returns Options populated with the package defaults:
// virtualized rendering, no peek, and the built-in breakpoint tiers.
func DefaultOptions() Options {
	opts := Options{Virtualize: true}
	opts.normalize(zerolog.Nop())
	return opts
}

// normalize fills zero fields with defaults and degrades malformed values to
// safe ones, logging a warning for anything it had to repair. Degradation is
// deliberate: configuration problems must never disable the widget.
func (o *Options) normalize(logger zerolog.Logger) {
	if o.Gap < 0 {
		logger.Warn().Int("gap", o.Gap).Msg("negative gap, using default")
		o.Gap = DefaultGap
	}
	if o.Gap == 0 {
		o.Gap = DefaultGap
	}
	if o.DragThreshold <= 0 || o.DragThreshold >= 1 {
		if o.DragThreshold != 0 {
			logger.Warn().
				Float64("drag_threshold", o.DragThreshold).
				Msg("drag threshold outside (0,1), using default")
		}
		o.DragThreshold = DefaultDragThreshold
	}
	if o.Spring.Stiffness <= 0 {
		o.Spring.Stiffness = DefaultStiffness
	}
	if o.Spring.Damping <= 0 {
		o.Spring.Damping = DefaultDamping
	}
	if o.Spring.Mass <= 0 {
		o.Spring.Mass = DefaultMass
	}
	if o.Overscan < 0 {
		logger.Warn().Int("overscan", o.Overscan).Msg("negative overscan, using default")
		o.Overscan = DefaultOverscan
	}
	if o.Overscan == 0 {
		o.Overscan = DefaultOverscan
	}

	// Drop breakpoint entries that could never resolve, into a fresh slice
	// so the caller's list is never mutated. An empty list after filtering
	// falls back to the tier table.
	if len(o.Breakpoints) > 0 {
		valid := make([]Breakpoint, 0, len(o.Breakpoints))
		for _, bp := range o.Breakpoints {
			if bp.Items > 0 && bp.Width >= 0 {
				valid = append(valid, bp)
				continue
			}
			logger.Warn().
				Int("width", bp.Width).
				Int("items", bp.Items).
				Msg("dropping invalid breakpoint entry")
		}
		o.Breakpoints = valid
	}
}

// parsePeekAmount converts a peek amount string into cells. Numeric values
// are cells; values with a trailing '%' are a percentage of itemWidth.
// Malformed input returns 0 (graceful degradation, never an error).
func parsePeekAmount(amount string, itemWidth int) float64 {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0
	}

	if strings.HasSuffix(amount, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(amount, "%"), 64)
		if err != nil || pct < 0 {
			return 0
		}
		return float64(itemWidth) * pct / 100
	}

	cells, err := strconv.ParseFloat(amount, 64)
	if err != nil || cells < 0 {
		return 0
	}
	return cells
}
