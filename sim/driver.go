package sim

import (
	"sync"
	"time"

	"github.com/zucenko/snaker/model"
)

type DriverState int

const (
	DRV_IDLE DriverState = iota + 1
	DRV_RUNNING
	DRV_ENDED
)

func (s DriverState) Name() string {
	switch s {
	case DRV_IDLE:
		return "IDLE"
	case DRV_RUNNING:
		return "RUNNING"
	case DRV_ENDED:
		return "ENDED"
	default:
		return "N/A"
	}
}

// Driver schedules Advance on the grid at the period implied by the current
// speed. All grid mutation happens on the driver goroutine; direction
// requests arrive over a channel and snapshots leave over a channel, so no
// tick ever overlaps another and collaborators never touch the grid.
type Driver struct {
	Grid *Grid

	clock      Clock
	directions chan model.Vec
	snapshots  chan model.Snapshot
	stop       chan struct{}
	done       chan struct{}

	// state is read from collaborator goroutines while the loop ends a
	// session, so it sits behind a mutex.
	mu    sync.Mutex
	state DriverState
}

func NewDriver(grid *Grid, clock Clock) *Driver {
	if clock == nil {
		clock = NewClock()
	}
	return &Driver{
		Grid:       grid,
		clock:      clock,
		state:      DRV_IDLE,
		directions: make(chan model.Vec, 10),
		snapshots:  make(chan model.Snapshot, 10),
	}
}

// Snapshots delivers the initial snapshot of every session plus one
// snapshot per tick. The last one of a session carries Ended and the
// reason.
func (d *Driver) Snapshots() <-chan model.Snapshot {
	return d.snapshots
}

func (d *Driver) State() DriverState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// transition flips state only when it still holds the expected value, so a
// session ending on its final tick cannot clobber an external Stop.
func (d *Driver) transition(from, to DriverState) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != from {
		return false
	}
	d.state = to
	return true
}

// RequestDirection forwards operator intent to the driver goroutine. Only
// the latest legal request before a tick is honored anyway, so a full
// channel just drops an already superseded intent.
func (d *Driver) RequestDirection(v model.Vec) {
	select {
	case d.directions <- v:
	default:
	}
}

// Start resets the grid, schedules the first tick and begins ticking.
// Legal from IDLE and ENDED; no-op while RUNNING.
func (d *Driver) Start() {
	d.mu.Lock()
	if d.state == DRV_RUNNING {
		d.mu.Unlock()
		return
	}
	d.Grid.Reset()
	if !d.Grid.Running() {
		// a board with no room for food is over before the first tick
		d.state = DRV_ENDED
		d.mu.Unlock()
		d.snapshots <- d.Grid.Snapshot()
		return
	}
	d.state = DRV_RUNNING
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	timer := d.clock.NewTimer(d.period())
	d.mu.Unlock()
	d.snapshots <- d.Grid.Snapshot()
	go d.loop(timer)
}

// Stop cancels scheduling without signalling game over. Idempotent; waits
// for the loop goroutine so no timer stays live.
func (d *Driver) Stop() {
	if !d.transition(DRV_RUNNING, DRV_IDLE) {
		return
	}
	close(d.stop)
	<-d.done
}

func (d *Driver) period() time.Duration {
	return time.Duration(float64(time.Second) / d.Grid.Speed())
}

// loop owns the one timer handle of the session; it is replaced in place
// by Reset, so two live timers can never double-tick.
func (d *Driver) loop(timer Timer) {
	defer close(d.done)
	defer timer.Stop()
	for {
		select {
		case <-d.stop:
			return
		case v := <-d.directions:
			d.Grid.RequestDirection(v)
		case <-timer.C():
			// Apply every request that arrived before this tick fired;
			// the grid keeps the last legal one.
		drain:
			for {
				select {
				case v := <-d.directions:
					d.Grid.RequestDirection(v)
				default:
					break drain
				}
			}
			snap := d.Grid.Advance()
			if snap.Ended {
				d.transition(DRV_RUNNING, DRV_ENDED)
				d.publish(snap)
				return
			}
			d.publish(snap)
			// Reschedule at the latest speed; a food tick changed it, so
			// the new cadence takes effect from the next tick on.
			timer.Reset(d.period())
		}
	}
}

func (d *Driver) publish(snap model.Snapshot) {
	select {
	case d.snapshots <- snap:
	case <-d.stop:
	}
}
