package carousel

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Animation timing constants.
const (
	// animDuration is the fixed duration of an offset animation.
	animDuration = 300 * time.Millisecond

	// frameInterval approximates one frame per display refresh.
	frameInterval = time.Second / 60
)

// frameMsg drives one animation frame. It carries the sequence number of the
// animation that scheduled it so frames from a cancelled animation can be
// recognized and dropped.
type frameMsg struct {
	seq uint64
}

// animator interpolates a scalar offset from a start value to a target over
// a fixed duration using a pseudo-spring easing curve.
//
// At most one animation is active at a time: starting a new one bumps the
// sequence number, which invalidates every frame message the previous
// animation scheduled (last-writer-wins). The curve is a cosmetic easing
// approximation built from two exponential terms, not a physical spring
// simulation; for normal stiffness/damping/mass it stays within
// [start, target].
type animator struct {
	seq       uint64
	active    bool
	start     float64
	target    float64
	startedAt time.Time
	spring    Spring

	// now is the clock, injectable for tests.
	now func() time.Time
}

func newAnimator(spring Spring) animator {
	return animator{spring: spring, now: time.Now}
}

// animateTo starts a new animation from the current offset to target and
// returns the command scheduling its first frame. Any in-flight animation is
// cancelled before the first frame of the new one runs.
func (a *animator) animateTo(current, target float64) tea.Cmd {
	a.seq++
	a.active = true
	a.start = current
	a.target = target
	a.startedAt = a.now()
	return frameTick(a.seq)
}

// cancel invalidates the in-flight animation, if any. Frames it already
// scheduled become stale and are dropped by step.
func (a *animator) cancel() {
	a.seq++
	a.active = false
}

// step advances the animation for the given frame. ok is false when the
// frame belongs to a cancelled or superseded animation and must be ignored.
// done is true once the target has been reached; the returned offset is then
// exactly the target.
func (a *animator) step(seq uint64) (offset float64, done, ok bool) {
	if !a.active || seq != a.seq {
		return 0, false, false
	}

	elapsed := a.now().Sub(a.startedAt)
	progress := float64(elapsed) / float64(animDuration)
	if progress >= 1 {
		a.active = false
		return a.target, true, true
	}

	return a.start + (a.target-a.start)*a.eased(progress), false, true
}

// animating reports whether an animation is in flight.
func (a *animator) animating() bool {
	return a.active
}

// eased maps linear progress in [0,1] to the pseudo-spring curve
//
//	p = (1 − e^(−stiffness·t/mass)) · (1 − e^(−damping·t))
//
// Both factors approach 1 monotonically, so p never exceeds 1 and the offset
// never materially overshoots the target.
func (a *animator) eased(t float64) float64 {
	return (1 - math.Exp(-a.spring.Stiffness*t/a.spring.Mass)) * (1 - math.Exp(-a.spring.Damping*t))
}

// frameTick schedules the next frame for the animation identified by seq.
func frameTick(seq uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}
