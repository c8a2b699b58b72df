package puzzle

import "github.com/vovakirdan/numtap/internal/core"

// DefaultAnimationDuration is how long a reshuffle move takes, in seconds.
const DefaultAnimationDuration = 0.2

// tween moves one cell from a start to a target position over a fixed
// duration, eased with smoothstep.
type tween struct {
	handle   Handle
	from     core.Vec
	to       core.Vec
	elapsed  float64
	duration float64
}

// advance moves the tween forward by dt seconds and returns the new position.
// The last step lands exactly on the target.
func (t *tween) advance(dt float64) (pos core.Vec, done bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to, true
	}
	return core.Lerp(t.from, t.to, core.Smoothstep(t.elapsed/t.duration)), false
}
