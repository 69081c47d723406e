package carousel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRender wraps a render delegate and records which indices were
// rendered, by item identifier.
type countingRender struct {
	rendered []string
}

func (c *countingRender) render(item Item, width int, selected bool) string {
	_ = width
	_ = selected
	c.rendered = append(c.rendered, item.ItemID())
	return item.ItemID()
}

// TestViewRendersOnlyVisibleWindow verifies virtualization keeps the render
// delegate calls bounded by the viewport plus overscan.
func TestViewRendersOnlyVisibleWindow(t *testing.T) {
	counter := &countingRender{}
	m := New(testItems(100), counter.render, Options{Gap: 8, Virtualize: true})
	m.SetSize(424, 5)

	out := m.View()
	require.NotEmpty(t, out)

	// 4 visible plus 2 overscan past the trailing edge at offset 0.
	assert.Len(t, counter.rendered, 6)
	assert.Equal(t, "item-0", counter.rendered[0])
	assert.Equal(t, "item-5", counter.rendered[5])
}

// TestViewFullRenderWithoutVirtualization verifies the delegate sees the
// whole collection when virtualization is off.
func TestViewFullRenderWithoutVirtualization(t *testing.T) {
	counter := &countingRender{}
	m := New(testItems(20), counter.render, Options{Gap: 8, Virtualize: false})
	m.SetSize(424, 5)

	m.View()
	assert.Len(t, counter.rendered, 20)
}

// TestViewWidth verifies every output line is cropped to the container
// width.
func TestViewWidth(t *testing.T) {
	m := New(testItems(10), plainRender, Options{Gap: 8, Virtualize: true})
	m.SetSize(424, 5)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 424)
	}
}

// TestViewNormalizesCardHeight verifies cards of differing heights join into
// a rectangular strip.
func TestViewNormalizesCardHeight(t *testing.T) {
	tall := func(item Item, _ int, _ bool) string {
		if item.ItemID() == "item-1" {
			return "a\nb\nc"
		}
		return "x"
	}
	m := New(testItems(4), tall, Options{Gap: 8, Virtualize: true})
	m.SetSize(424, 5)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 3)
}

// TestViewEmptyStates covers the blank-output conditions.
func TestViewEmptyStates(t *testing.T) {
	m := New(nil, plainRender, Options{Gap: 8, Virtualize: true})
	m.SetSize(424, 5)
	assert.Empty(t, m.View(), "no items")

	m = New(testItems(5), plainRender, Options{Gap: 8, Virtualize: true})
	assert.Empty(t, m.View(), "unmeasured container")
}

// TestViewMarksSelectedCard verifies the delegate receives the selected flag
// for the current index only.
func TestViewMarksSelectedCard(t *testing.T) {
	var selected []string
	render := func(item Item, _ int, sel bool) string {
		if sel {
			selected = append(selected, item.ItemID())
		}
		return item.ItemID()
	}
	m := New(testItems(10), render, Options{Gap: 8, Virtualize: true})
	m.SetSize(424, 5)

	m.View()
	assert.Equal(t, []string{"item-0"}, selected)
}

// TestCropStrip exercises the ANSI-aware crop helper directly, including the
// left padding path used when the strip sits right of the container origin.
func TestCropStrip(t *testing.T) {
	tests := []struct {
		name  string
		strip string
		left  int
		width int
		want  string
	}{
		{name: "plain window", strip: "abcdefghij", left: 2, width: 4, want: "cdef"},
		{name: "window past end", strip: "abcd", left: 2, width: 10, want: "cd"},
		{name: "negative left pads", strip: "abcd", left: -3, width: 6, want: "   abc"},
		{name: "multi-line", strip: "abcd\nefgh", left: 1, width: 2, want: "bc\nfg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cropStrip(tt.strip, tt.left, tt.width))
		})
	}
}
