package carousel

import "sort"

// Built-in width-tier table: container width threshold (cells) -> cards per
// view. The terminal analog of the usual 480/768/1024/1280 pixel tiers.
//
//nolint:gochecknoglobals // Compile-time lookup table.
var defaultTiers = map[int]int{
	0:   1,
	80:  2,
	120: 3,
	160: 4,
}

// Metrics is the breakpoint-derived viewport state of a carousel: how many
// cards fit, how wide each card is, and how much of the adjacent card peeks
// into view. Recomputed on (throttled) resize and on Refresh.
type Metrics struct {
	// Width is the container width in cells; 0 until the first measurement.
	Width int

	// ItemsPerView is the resolved cards-per-view count for Width.
	ItemsPerView int

	// ItemWidth is the card width in cells.
	ItemWidth int

	// Gap is the spacing between cards in cells.
	Gap int

	// PeekWidth is the resolved peek amount in cells, zero when disabled.
	PeekWidth float64
}

// Measure derives the full Metrics for a container width under opts.
func Measure(opts Options, width int) Metrics {
	n := ResolveItemsPerView(opts, width)

	// Item width estimate: the container minus inter-card gaps, split evenly.
	itemWidth := 0
	if width > 0 {
		itemWidth = (width - opts.Gap*(n-1)) / n
		if itemWidth < 1 {
			itemWidth = 1
		}
	}

	return Metrics{
		Width:        width,
		ItemsPerView: n,
		ItemWidth:    itemWidth,
		Gap:          opts.Gap,
		PeekWidth:    ResolvePeekWidth(opts, itemWidth),
	}
}

// ResolveItemsPerView returns the cards-per-view count for the given
// container width.
//
// An explicit responsive breakpoint list takes precedence: entries are
// considered in descending width order and the first whose width fits the
// container wins, falling back to the narrowest entry. Without a list, the
// built-in width-tier table (merged with any user overrides) is consulted
// the same way. The result is always at least 1.
func ResolveItemsPerView(opts Options, width int) int {
	if len(opts.Breakpoints) > 0 {
		return resolveFromBreakpoints(opts.Breakpoints, width)
	}
	return resolveFromTiers(opts.TierOverrides, width)
}

// ResolvePeekWidth returns the peek width in cells for the given card width
// estimate. Zero unless peek is enabled; malformed amounts degrade to zero.
func ResolvePeekWidth(opts Options, itemWidth int) float64 {
	if !opts.Peek.Enabled {
		return 0
	}
	return parsePeekAmount(opts.Peek.Amount, itemWidth)
}

// resolveFromBreakpoints picks the first breakpoint (widest first) whose
// width threshold fits the container, else the narrowest entry.
func resolveFromBreakpoints(breakpoints []Breakpoint, width int) int {
	sorted := make([]Breakpoint, len(breakpoints))
	copy(sorted, breakpoints)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Width > sorted[j].Width })

	for _, bp := range sorted {
		if bp.Width <= width {
			return bp.Items
		}
	}

	// Container narrower than every threshold: use the narrowest entry.
	return sorted[len(sorted)-1].Items
}

// resolveFromTiers resolves against the built-in tier table with user
// overrides merged on top.
func resolveFromTiers(overrides map[int]int, width int) int {
	merged := make(map[int]int, len(defaultTiers)+len(overrides))
	for w, n := range defaultTiers {
		merged[w] = n
	}
	for w, n := range overrides {
		if n > 0 && w >= 0 {
			merged[w] = n
		}
	}

	widths := make([]int, 0, len(merged))
	for w := range merged {
		widths = append(widths, w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(widths)))

	for _, w := range widths {
		if w <= width {
			return merged[w]
		}
	}
	return merged[widths[len(widths)-1]]
}
