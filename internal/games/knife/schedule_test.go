package knife

import (
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	s.after(0, 300*time.Millisecond, scheduleLevelComplete)
	s.after(0, 100*time.Millisecond, scheduleLevelComplete)
	s.after(100*time.Millisecond, 0, scheduleLevelComplete)

	if got := s.popDue(50 * time.Millisecond); got != nil {
		t.Fatalf("popDue(50ms) = %v, want nothing", got)
	}

	due := s.popDue(100 * time.Millisecond)
	if len(due) != 2 {
		t.Fatalf("popDue(100ms) returned %d events, want 2", len(due))
	}
	if due[0].seq != 2 || due[1].seq != 3 {
		t.Errorf("events with equal due time fired out of insertion order: %+v", due)
	}

	if !s.pending(scheduleLevelComplete) {
		t.Error("300ms event should still be pending")
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s scheduler
	s.after(0, time.Second, scheduleLevelComplete)
	s.after(0, 2*time.Second, scheduleLevelComplete)

	if n := s.cancel(); n != 2 {
		t.Errorf("cancel() = %d, want 2", n)
	}
	if s.pending(scheduleLevelComplete) {
		t.Error("event pending after cancel")
	}
	if got := s.popDue(time.Hour); got != nil {
		t.Errorf("cancelled events fired: %v", got)
	}
}
