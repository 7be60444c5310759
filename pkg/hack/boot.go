package hack

import (
	"errors"
	"sync"
	"time"
)

// ErrInitTimeout reports that the machine never published its RAM within
// the boot deadline.
var ErrInitTimeout = errors.New("machine did not publish RAM before timeout")

// Machine is the emulator collaborator contract. Run executes the machine
// program, calling publish exactly once as soon as the RAM exists (further
// calls are ignored), and returns the program's exit status. Run keeps
// writing the published RAM for as long as it executes.
type Machine interface {
	Run(publish func(*RAM)) int
}

// Boot is a machine started on its own goroutine. The display path waits
// for the RAM and then never joins the goroutine; process exit tears it
// down, which is fine because RAM needs no flush. The console path waits
// for the exit status as well.
type Boot struct {
	ram    chan *RAM
	status chan int
}

// Start launches m on a new goroutine and returns its handshake handle.
func Start(m Machine) *Boot {
	b := &Boot{
		ram:    make(chan *RAM, 1),
		status: make(chan int, 1),
	}
	var once sync.Once
	go func() {
		code := m.Run(func(r *RAM) {
			once.Do(func() { b.ram <- r })
		})
		b.status <- code
	}()
	return b
}

// WaitRAM blocks until the machine publishes its RAM or the timeout
// elapses, in which case it returns ErrInitTimeout. A timeout of zero or
// less waits forever, reproducing the original unbounded handshake.
func (b *Boot) WaitRAM(timeout time.Duration) (*RAM, error) {
	if timeout <= 0 {
		return <-b.ram, nil
	}
	select {
	case r := <-b.ram:
		return r, nil
	case <-time.After(timeout):
		return nil, ErrInitTimeout
	}
}

// Wait blocks until the machine's Run returns and yields its exit status.
func (b *Boot) Wait() int {
	code := <-b.status
	b.status <- code // keep Wait idempotent
	return code
}
