// Package sched chains sequential units of work through completion handles.
// The simulation step is a small dependency graph: narrow phase, then contact
// modification, then the solver. Each unit runs to completion on one goroutine
// and exclusivity over shared buffers comes from the handle chain, not from
// locks.
package sched

// Handle signals completion of one unit of work. It is closed exactly once,
// when the unit finishes.
type Handle <-chan struct{}

// Completed returns an already-signalled handle, used as the dependency of a
// root unit.
func Completed() Handle {
	done := make(chan struct{})
	close(done)
	return done
}

// Run executes fn as one unit with no upstream dependency.
func Run(fn func()) Handle {
	return After(Completed(), fn)
}

// After executes fn once dep has signalled and returns the handle downstream
// units gate on. The unit is never suspended or cancelled mid-run.
func After(dep Handle, fn func()) Handle {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-dep
		fn()
	}()
	return done
}

// Wait blocks until the unit behind h has completed.
func (h Handle) Wait() {
	<-h
}
