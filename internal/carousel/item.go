package carousel

// Item is a single entry in the carousel. Items are opaque to the widget:
// it only needs a stable identifier for lookups (ScrollToItem) and hands the
// item back to the render delegate for display.
type Item interface {
	// ItemID returns the stable identifier of this item.
	ItemID() string
}

// RenderFunc renders a single card. width is the card width in cells and
// selected indicates whether the card is at the current index. The returned
// string may be multi-line; the widget normalizes all visible cards to the
// tallest one so the strip keeps a uniform row height.
type RenderFunc func(item Item, width int, selected bool) string

// StringItem is a minimal Item implementation whose identifier is the string
// itself. Convenient for tests and simple collections.
type StringItem string

// ItemID implements Item.
func (s StringItem) ItemID() string { return string(s) }
