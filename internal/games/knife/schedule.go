package knife

import (
	"sort"
	"time"
)

// scheduledKind identifies a deferred driver event.
type scheduledKind int

const (
	scheduleLevelComplete scheduledKind = iota
)

type scheduledEvent struct {
	due  time.Duration // loop time at which the event fires
	kind scheduledKind
	seq  uint64
}

// scheduler is the driver's deferred event queue. It runs on the loop's
// clock, so firing and cancellation happen on the simulation thread.
type scheduler struct {
	queue []scheduledEvent
	seq   uint64
}

// after schedules kind to fire delay after now.
func (s *scheduler) after(now, delay time.Duration, kind scheduledKind) {
	s.seq++
	ev := scheduledEvent{due: now + delay, kind: kind, seq: s.seq}
	i := sort.Search(len(s.queue), func(i int) bool {
		q := s.queue[i]
		return q.due > ev.due || (q.due == ev.due && q.seq > ev.seq)
	})
	s.queue = append(s.queue, scheduledEvent{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = ev
}

// popDue removes and returns every event due at or before now, in order.
func (s *scheduler) popDue(now time.Duration) []scheduledEvent {
	n := 0
	for n < len(s.queue) && s.queue[n].due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := append([]scheduledEvent(nil), s.queue[:n]...)
	s.queue = append(s.queue[:0], s.queue[n:]...)
	return due
}

// pending reports whether an event of kind is queued.
func (s *scheduler) pending(kind scheduledKind) bool {
	for _, ev := range s.queue {
		if ev.kind == kind {
			return true
		}
	}
	return false
}

// cancel drops every queued event and returns how many were dropped.
func (s *scheduler) cancel() int {
	n := len(s.queue)
	s.queue = nil
	return n
}
