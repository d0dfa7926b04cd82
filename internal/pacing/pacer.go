package pacing

import "time"

// Pacer caps the frame rate when vsync is not driving the loop
type Pacer struct {
	interval time.Duration
	deadline time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a pacer for fps frames per second. Zero or negative disables it.
func New(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		p.interval = time.Second / time.Duration(fps)
	}
	return p
}

// Enabled reports whether Wait ever blocks
func (p *Pacer) Enabled() bool {
	return p.interval > 0
}

// Interval is the frame budget, zero when disabled
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait sleeps until the current frame's deadline and schedules the next one.
// A frame that overruns by more than a whole interval restarts the schedule
// from now instead of bursting to catch up.
func (p *Pacer) Wait() {
	if p.interval == 0 {
		return
	}
	now := p.now()
	next := p.deadline.Add(p.interval)
	if p.deadline.IsZero() || now.Sub(next) > p.interval {
		next = now.Add(p.interval)
	}
	p.deadline = next
	if d := next.Sub(now); d > 0 {
		p.sleep(d)
	}
}
