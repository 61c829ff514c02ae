package flowerclock

import "github.com/tanema/gween/ease"

// DefaultOvershoot is the back-out overshoot used by DefaultOptions. It is
// gentler than the 1.70158 baked into ease.OutBack.
const DefaultOvershoot = 1

// BackOut returns a back-out easing that overshoots the target by an amount
// controlled by s before settling. s == 0 degrades to a cubic ease-out.
func BackOut(s float64) ease.TweenFunc {
	s32 := float32(s)
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		t = t/d - 1
		return c*(t*t*((s32+1)*t+s32)+1) + b
	}
}
