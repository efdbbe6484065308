package header

import "time"

// SettleDuration is how long end-of-gesture animations take.
const SettleDuration = 350 * time.Millisecond

// Point is a 2D vector. Locations handed to the pinch controller are
// normalized to [0,1]x[0,1] of the view.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) IsZero() bool        { return p.X == 0 && p.Y == 0 }

// Tween eases a value from a start to a target over a fixed duration. It is
// advanced explicitly by frame ticks so it stays deterministic under test.
type Tween struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
	running  bool
}

// Start begins animating from the current value v toward target.
func (t *Tween) Start(v, target float64, d time.Duration) {
	t.from = v
	t.to = target
	t.elapsed = 0
	t.duration = d
	t.running = d > 0
}

// Stop abandons the animation where it is.
func (t *Tween) Stop() { t.running = false }

func (t *Tween) Running() bool { return t.running }

// Advance moves the animation forward and returns the new value and whether
// it reached the target on this step.
func (t *Tween) Advance(dt time.Duration) (v float64, done bool) {
	if !t.running {
		return t.to, false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.running = false
		return t.to, true
	}
	f := easeInOut(float64(t.elapsed) / float64(t.duration))
	return t.from + (t.to-t.from)*f, false
}

// easeInOut is a cubic ease-in-out curve on [0,1].
func easeInOut(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	y := -2*x + 2
	return 1 - y*y*y/2
}
