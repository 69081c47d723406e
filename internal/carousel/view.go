package carousel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model. It renders only the visible window of cards
// (plus overscan), joins them into a strip, and crops the strip to the
// container at the current offset. Rendering cost is bounded by the viewport,
// not the collection size.
func (m *Model) View() string {
	if len(m.items) == 0 || m.width <= 0 || m.metrics.ItemsPerView <= 0 {
		return ""
	}

	start, end := VisibleRange(
		m.offset, m.width,
		m.metrics.ItemWidth, m.metrics.Gap,
		len(m.items), m.opts.Overscan, m.opts.Virtualize,
	)
	if start >= end {
		return ""
	}

	cards := m.renderCards(start, end)

	blocks := make([]string, 0, len(cards)*2-1)
	gap := strings.Repeat(" ", m.metrics.Gap)
	for i, card := range cards {
		if i > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, card)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	// The strip starts at card index start; translate the global offset into
	// strip-local columns.
	stripOrigin := start * (m.metrics.ItemWidth + m.metrics.Gap)
	cut := int(math.Round(-m.offset)) - stripOrigin

	return cropStrip(strip, cut, m.width)
}

// renderCards renders cards [start, end) through the render delegate and
// normalizes them to a uniform width and height so the strip joins cleanly.
func (m *Model) renderCards(start, end int) []string {
	raw := make([]string, 0, end-start)
	maxHeight := 0
	for i := start; i < end; i++ {
		card := m.render(m.items[i], m.metrics.ItemWidth, i == m.index)
		if h := lipgloss.Height(card); h > maxHeight {
			maxHeight = h
		}
		raw = append(raw, card)
	}

	frame := lipgloss.NewStyle().
		Width(m.metrics.ItemWidth).
		MaxWidth(m.metrics.ItemWidth).
		Height(maxHeight).
		MaxHeight(maxHeight)

	cards := make([]string, len(raw))
	for i, card := range raw {
		cards[i] = frame.Render(card)
	}
	return cards
}

// cropStrip cuts a horizontal window of width cells from the strip starting
// at column left. Negative left pads from the left edge (the strip is pulled
// right of the container origin, which happens with peek at index > 0). The
// cut is ANSI-aware so styling escape sequences survive.
func cropStrip(strip string, left, width int) string {
	lines := strings.Split(strip, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		pad := 0
		from := left
		if from < 0 {
			pad = -from
			if pad > width {
				pad = width
			}
			from = 0
		}

		seg := ansi.Cut(line, from, from+width-pad)
		if pad > 0 {
			seg = strings.Repeat(" ", pad) + seg
		}
		out[i] = seg
	}

	return strings.Join(out, "\n")
}
