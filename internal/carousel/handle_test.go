package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleDelegation verifies the imperative facade drives the underlying
// model and that reads stay side-effect free.
func TestHandleDelegation(t *testing.T) {
	m, clock := newTestModel(t, Options{Gap: 8, Virtualize: true})
	h := NewHandle(m)

	assert.Equal(t, 0, h.CurrentIndex())

	cmd := h.Next()
	require.NotNil(t, cmd)
	settle(t, m, clock)
	assert.Equal(t, 1, h.CurrentIndex())

	cmd = h.ScrollToIndex(4)
	require.NotNil(t, cmd)
	settle(t, m, clock)
	assert.Equal(t, 4, h.CurrentIndex())

	cmd = h.Previous()
	require.NotNil(t, cmd)
	settle(t, m, clock)
	assert.Equal(t, 3, h.CurrentIndex())

	cmd = h.ScrollToItem("item-0")
	require.NotNil(t, cmd)
	settle(t, m, clock)
	assert.Equal(t, 0, h.CurrentIndex())

	before := h.CurrentIndex()
	assert.Equal(t, before, h.CurrentIndex(), "reads must not mutate state")
	assert.False(t, m.Animating())
}

// TestHandleRefresh verifies Refresh re-measures without disturbing a valid
// index.
func TestHandleRefresh(t *testing.T) {
	m, clock := newTestModel(t, Options{Gap: 8, Virtualize: true})
	h := NewHandle(m)

	h.Next()
	settle(t, m, clock)
	require.Equal(t, 1, h.CurrentIndex())

	assert.Nil(t, h.Refresh())
	assert.Equal(t, 1, h.CurrentIndex())
	assert.InDelta(t, -108.0, m.Offset(), 1e-9)
}
