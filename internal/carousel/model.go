package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// resizeThrottle is the minimum interval between applied container
// measurements. Resizes arriving inside the window are applied when it
// elapses rather than dropped.
const resizeThrottle = 100 * time.Millisecond

// measureMsg triggers application of a resize that arrived while the
// throttle window was still open.
type measureMsg struct{}

// Model is the Bubble Tea model for a horizontal card carousel. Use New to
// construct one; the zero value is not usable.
//
// Each Model owns its viewport and slide state exclusively; instances share
// nothing.
type Model struct {
	items  []Item
	render RenderFunc
	opts   Options

	metrics Metrics
	index   int
	offset  float64

	dragging   bool
	dragStartX int
	dragLastX  int

	anim animator
	keys KeyMap

	width  int
	height int

	lastMeasure  time.Time
	pendingWidth int

	onChange func(index int)
	logger   zerolog.Logger

	// now is the clock, injectable for tests.
	now func() time.Time
}

// New creates a carousel over items rendered by render. Malformed options
// are degraded to safe defaults rather than rejected.
func New(items []Item, render RenderFunc, opts Options) *Model {
	logger := zerolog.Nop()
	opts.normalize(logger)

	m := &Model{
		items:        items,
		render:       render,
		opts:         opts,
		anim:         newAnimator(opts.Spring),
		keys:         DefaultKeyMap(),
		logger:       logger,
		pendingWidth: -1,
		now:          time.Now,
	}
	return m
}

// SetLogger attaches a logger for debug tracing. The default is a no-op
// logger; the widget never requires one.
func (m *Model) SetLogger(logger zerolog.Logger) {
	m.logger = logger
}

// SetOnChange registers a callback invoked with the new index whenever the
// current slide changes.
func (m *Model) SetOnChange(fn func(index int)) {
	m.onChange = fn
}

// SetKeyMap replaces the navigation key bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// KeyMap returns the active navigation key bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// SetItems replaces the item collection. The current index is clamped to the
// new bounds and the offset snaps to the settled position.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.clampIndex()
	m.animateTo(m.offsetFor(m.index), true)
}

// Items returns the current item collection.
func (m *Model) Items() []Item {
	return m.items
}

// SetSize sets the container dimensions directly, bypassing the resize
// throttle. Used when the parent lays the carousel out itself.
func (m *Model) SetSize(width, height int) {
	m.height = height
	m.applyMeasure(width)
}

// CurrentIndex returns the current slide index. Pure read.
func (m *Model) CurrentIndex() int {
	return m.index
}

// Offset returns the current strip offset in cells (signed; negative values
// reveal higher indices).
func (m *Model) Offset() float64 {
	return m.offset
}

// Metrics returns the current breakpoint-derived viewport state.
func (m *Model) Metrics() Metrics {
	return m.metrics
}

// Animating reports whether an offset animation is in flight.
func (m *Model) Animating() bool {
	return m.anim.animating()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg.Width, msg.Height)

	case measureMsg:
		if m.pendingWidth >= 0 {
			m.applyMeasure(m.pendingWidth)
			m.pendingWidth = -1
		}
		return m, nil

	case frameMsg:
		return m, m.handleFrame(msg)

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case NextMsg:
		return m, m.Next()

	case PreviousMsg:
		return m, m.Previous()

	case ScrollToIndexMsg:
		return m, m.ScrollToIndex(msg.Index)

	case ScrollToItemMsg:
		return m, m.ScrollToItem(msg.ID)

	case RefreshMsg:
		return m, m.Refresh()
	}

	return m, nil
}

// Next advances to the next slide, clamped to the last reachable index.
// Calling it at the last reachable index is a no-op: the index is unchanged
// and no new animation is started.
func (m *Model) Next() tea.Cmd {
	target := m.index + 1
	if max := m.maxIndex(); target > max {
		target = max
	}
	if target == m.index {
		return nil
	}
	return m.goToIndex(target)
}

// Previous moves to the previous slide, clamped to index 0. Calling it at
// index 0 is a no-op.
func (m *Model) Previous() tea.Cmd {
	target := m.index - 1
	if target < 0 {
		target = 0
	}
	if target == m.index {
		return nil
	}
	return m.goToIndex(target)
}

// ScrollToIndex animates to the given index. No bounds validation is applied
// beyond what the offset formula tolerates; callers are responsible for
// passing sane values.
func (m *Model) ScrollToIndex(index int) tea.Cmd {
	if index == m.index {
		return nil
	}
	return m.goToIndex(index)
}

// ScrollToItem animates to the item with the given identifier. Unknown
// identifiers are silently ignored.
func (m *Model) ScrollToItem(id string) tea.Cmd {
	for i, item := range m.items {
		if item.ItemID() == id {
			return m.ScrollToIndex(i)
		}
	}
	m.logger.Debug().Str("item_id", id).Msg("scroll target not found")
	return nil
}

// Refresh re-measures the container and recomputes breakpoint-derived
// state. Used when the layout changed outside the resize path, e.g. after a
// visibility toggle.
func (m *Model) Refresh() tea.Cmd {
	m.applyMeasure(m.width)
	return nil
}

// goToIndex commits a new index, notifies the change callback, and starts
// the offset animation.
func (m *Model) goToIndex(index int) tea.Cmd {
	m.index = index
	m.notifyChange()
	return m.animateTo(m.offsetFor(m.index), false)
}

// animateTo moves the offset to target. Immediate snaps synchronously;
// otherwise a new animation starts, cancelling any in-flight one before its
// first frame runs.
func (m *Model) animateTo(target float64, immediate bool) tea.Cmd {
	if immediate {
		m.anim.cancel()
		m.offset = target
		return nil
	}
	return m.anim.animateTo(m.offset, target)
}

// handleFrame applies one animation frame. Stale frames from superseded
// animations are dropped without touching the offset.
func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	offset, done, ok := m.anim.step(msg.seq)
	if !ok {
		return nil
	}
	m.offset = offset
	if done {
		return nil
	}
	return frameTick(msg.seq)
}

// handleKeyMsg processes navigation keys.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}

	switch {
	case keyMatches(msg, m.keys.Next):
		return m.Next()
	case keyMatches(msg, m.keys.Previous):
		return m.Previous()
	case keyMatches(msg, m.keys.First):
		return m.ScrollToIndex(0)
	case keyMatches(msg, m.keys.Last):
		return m.ScrollToIndex(m.maxIndex())
	}
	return nil
}

// handleMouse processes drag and wheel input. Wheel events are ignored while
// a drag is active so the drag keeps exclusive control of the offset.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragStart(msg.X)
		return nil

	case m.dragging && msg.Action == tea.MouseActionMotion:
		m.dragMove(msg.X)
		return nil

	case m.dragging && msg.Action == tea.MouseActionRelease:
		return m.dragEnd()

	case m.dragging:
		return nil

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		return m.Next()

	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		return m.Previous()
	}
	return nil
}

// dragStart begins a drag at pointer column x, cancelling any running
// animation so the drag owns the offset.
func (m *Model) dragStart(x int) {
	m.dragging = true
	m.dragStartX = x
	m.dragLastX = x
	m.anim.cancel()
}

// dragMove applies the delta since the last seen pointer position, clamped
// so the strip cannot be pulled past its first or last settled position.
func (m *Model) dragMove(x int) {
	if !m.dragging {
		return
	}
	delta := float64(x - m.dragLastX)
	m.dragLastX = x

	next := m.offset + delta
	if min := m.minOffset(); next < min {
		next = min
	}
	if max := m.maxOffset(); next > max {
		next = max
	}
	m.offset = next
}

// dragEnd commits one slide in the drag direction when the accumulated drag
// magnitude reaches the threshold fraction of a card width, otherwise snaps
// back to the pre-drag slide's offset.
func (m *Model) dragEnd() tea.Cmd {
	if !m.dragging {
		return nil
	}
	m.dragging = false

	total := float64(m.dragLastX - m.dragStartX)
	threshold := float64(m.metrics.ItemWidth) * m.opts.DragThreshold

	if threshold > 0 && abs(total) >= threshold {
		prev := m.index
		if total < 0 {
			if m.index < m.maxIndex() {
				m.index++
			}
		} else if m.index > 0 {
			m.index--
		}
		if m.index != prev {
			m.notifyChange()
		}
	}

	return m.animateTo(m.offsetFor(m.index), false)
}

// handleResize throttles container measurements to resizeThrottle. The
// first measurement always applies immediately.
func (m *Model) handleResize(width, height int) tea.Cmd {
	m.height = height

	since := m.now().Sub(m.lastMeasure)
	if m.metrics.Width == 0 || since >= resizeThrottle {
		m.applyMeasure(width)
		return nil
	}

	m.pendingWidth = width
	return tea.Tick(resizeThrottle-since, func(time.Time) tea.Msg {
		return measureMsg{}
	})
}

// applyMeasure recomputes metrics for the given width, clamps the index to
// the new bounds, and snaps the offset to the settled position. Direct state
// write: any in-flight animation is cancelled.
func (m *Model) applyMeasure(width int) {
	m.width = width
	m.lastMeasure = m.now()
	m.metrics = Measure(m.opts, width)
	m.clampIndex()
	m.animateTo(m.offsetFor(m.index), true)

	m.logger.Debug().
		Int("width", width).
		Int("items_per_view", m.metrics.ItemsPerView).
		Int("item_width", m.metrics.ItemWidth).
		Float64("peek", m.metrics.PeekWidth).
		Msg("measured viewport")
}

// offsetFor returns the settled offset for an index:
// -(index * (itemWidth + gap)) plus the peek adjustment. Once scrolled past
// the first slide the strip shifts right by the peek width so the previous
// card peeks at the leading edge.
func (m *Model) offsetFor(index int) float64 {
	offset := -float64(index) * float64(m.metrics.ItemWidth+m.metrics.Gap)
	if index > 0 {
		offset += m.metrics.PeekWidth
	}
	return offset
}

// maxIndex is the last reachable index: length - itemsPerView, floored at 0.
func (m *Model) maxIndex() int {
	if m.metrics.ItemsPerView <= 0 {
		return 0
	}
	max := len(m.items) - m.metrics.ItemsPerView
	if max < 0 {
		return 0
	}
	return max
}

// minOffset is the drag floor: the settled offset of the last reachable
// index, keeping the last card's trailing edge at the container edge.
func (m *Model) minOffset() float64 {
	return m.offsetFor(m.maxIndex())
}

// maxOffset is the drag ceiling: the peek width, or 0 without peek.
func (m *Model) maxOffset() float64 {
	return m.metrics.PeekWidth
}

func (m *Model) clampIndex() {
	if m.index < 0 {
		m.index = 0
	}
	if max := m.maxIndex(); m.index > max {
		m.index = max
	}
}

func (m *Model) notifyChange() {
	if m.onChange != nil {
		m.onChange(m.index)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
