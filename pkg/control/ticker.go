package control

// Ticker turns wall-clock frame time into a whole number of fixed
// simulation ticks. Time beyond the per-frame tick budget is dropped.
type Ticker struct {
	step     float64
	maxTicks int
	acc      float64
}

// NewTicker creates a ticker firing every step seconds, at most maxTicks
// times per frame
func NewTicker(step float64, maxTicks int) *Ticker {
	if maxTicks < 1 {
		maxTicks = 1
	}
	return &Ticker{step: step, maxTicks: maxTicks}
}

// Advance adds elapsed seconds and returns how many ticks to run now and
// how many were dropped to stay within budget
func (t *Ticker) Advance(elapsed float64) (ticks, dropped int) {
	if t.step <= 0 || elapsed <= 0 {
		return 0, 0
	}
	t.acc += elapsed

	n := int(t.acc / t.step)
	t.acc -= float64(n) * t.step
	if t.acc < 0 {
		t.acc = 0
	}
	ticks = min(n, t.maxTicks)
	return ticks, n - ticks
}

// Pending returns the unspent time carried into the next frame
func (t *Ticker) Pending() float64 {
	return t.acc
}

// Step returns the tick interval in seconds
func (t *Ticker) Step() float64 {
	return t.step
}
