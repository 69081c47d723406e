package carousel

// Navigation messages. Parents forward these through Update to drive the
// carousel from outside the keyboard/mouse paths, e.g. via program.Send.

// NextMsg advances to the next slide.
type NextMsg struct{}

// PreviousMsg moves to the previous slide.
type PreviousMsg struct{}

// ScrollToIndexMsg animates to a specific slide index.
type ScrollToIndexMsg struct {
	Index int
}

// ScrollToItemMsg animates to the slide holding the item with the given
// identifier. Unknown identifiers are ignored.
type ScrollToItemMsg struct {
	ID string
}

// RefreshMsg forces a re-measurement of the container.
type RefreshMsg struct{}
