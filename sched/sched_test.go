package sched

import (
	"testing"
	"time"
)

func TestCompletedIsAlreadySignalled(t *testing.T) {
	select {
	case <-Completed():
	case <-time.After(time.Second):
		t.Fatal("Completed handle never signalled")
	}
}

func TestRunSignalsAfterFunc(t *testing.T) {
	ran := false
	h := Run(func() { ran = true })
	h.Wait()

	if !ran {
		t.Error("unit did not run before handle signalled")
	}
}

func TestAfterWaitsForDependency(t *testing.T) {
	release := make(chan struct{})
	order := make(chan string, 2)

	upstream := After(Handle(release), func() { order <- "upstream" })
	downstream := After(upstream, func() { order <- "downstream" })

	close(release)
	downstream.Wait()

	if first := <-order; first != "upstream" {
		t.Errorf("expected upstream to run first, got %q", first)
	}
	if second := <-order; second != "downstream" {
		t.Errorf("expected downstream to run second, got %q", second)
	}
}
