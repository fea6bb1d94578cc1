package sim

import "time"

// Clock abstracts timer creation so the driver can be stepped in tests
// without wall-clock delays.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type Timer interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop() bool
}

func NewClock() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time {
	return r.t.C
}

func (r *realTimer) Reset(d time.Duration) {
	r.t.Reset(d)
}

func (r *realTimer) Stop() bool {
	return r.t.Stop()
}
