package reactive

import (
	"testing"
	"time"
)

func TestManualSchedulerFiresInOrder(t *testing.T) {
	m := NewManualScheduler()
	var fired []string
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })
	m.AfterFunc(50*time.Millisecond, func() { fired = append(fired, "a") })
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "c") })

	m.Advance(99 * time.Millisecond)
	if len(fired) != 1 || fired[0] != "a" {
		t.Fatalf("after 99ms fired = %v, want [a]", fired)
	}
	if m.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", m.Pending())
	}

	m.Advance(time.Millisecond)
	if len(fired) != 3 || fired[1] != "b" || fired[2] != "c" {
		t.Errorf("after 100ms fired = %v, want [a b c]", fired)
	}
	if m.Now() != 100*time.Millisecond {
		t.Errorf("Now() = %v, want 100ms", m.Now())
	}
}

func TestManualSchedulerNestedScheduling(t *testing.T) {
	m := NewManualScheduler()
	count := 0
	m.AfterFunc(10*time.Millisecond, func() {
		count++
		m.AfterFunc(10*time.Millisecond, func() { count++ })
		m.AfterFunc(100*time.Millisecond, func() { count++ })
	})

	m.Advance(20 * time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestSchedulerFunc(t *testing.T) {
	var gotDelay time.Duration
	s := SchedulerFunc(func(d time.Duration, fn func()) {
		gotDelay = d
		fn()
	})
	ran := false
	s.AfterFunc(5*time.Millisecond, func() { ran = true })
	if !ran || gotDelay != 5*time.Millisecond {
		t.Errorf("ran=%v delay=%v", ran, gotDelay)
	}
}

func TestSystemScheduler(t *testing.T) {
	done := make(chan struct{})
	SystemScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SystemScheduler callback did not fire")
	}
}
