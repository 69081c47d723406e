package carousel

import tea "github.com/charmbracelet/bubbletea"

// Handle is the imperative control surface of a carousel, for parents that
// hold a reference to the widget and drive it directly instead of routing
// messages. All methods delegate to the underlying Model; commands they
// return must be executed by the program loop for animations to run.
type Handle struct {
	model *Model
}

// NewHandle wraps a Model in its imperative facade.
func NewHandle(m *Model) *Handle {
	return &Handle{model: m}
}

// Next advances to the next slide.
func (h *Handle) Next() tea.Cmd {
	return h.model.Next()
}

// Previous moves to the previous slide.
func (h *Handle) Previous() tea.Cmd {
	return h.model.Previous()
}

// ScrollToIndex animates to the given slide index. Bounds are the caller's
// responsibility.
func (h *Handle) ScrollToIndex(index int) tea.Cmd {
	return h.model.ScrollToIndex(index)
}

// ScrollToItem animates to the item with the given identifier. Unknown
// identifiers are silently ignored.
func (h *Handle) ScrollToItem(id string) tea.Cmd {
	return h.model.ScrollToItem(id)
}

// CurrentIndex returns the current slide index. Pure read, no side effects.
func (h *Handle) CurrentIndex() int {
	return h.model.CurrentIndex()
}

// Refresh re-measures the container and recomputes layout state.
func (h *Handle) Refresh() tea.Cmd {
	return h.model.Refresh()
}
