package event

import (
	"sync/atomic"

	"github.com/lixenwraith/edgecam/parameter"
)

// EventQueue is a fixed ring shared by any number of producers and the frame loop
// When full, the oldest unread events are discarded and counted
type EventQueue struct {
	slots [parameter.EventQueueSize]slot
	head  atomic.Uint64 // next index to read
	tail  atomic.Uint64 // next index to reserve

	dropped atomic.Uint64
}

type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves a slot, fills it, then marks it ready for the consumer
func (eq *EventQueue) Push(ev GameEvent) {
	n := eq.tail.Add(1)
	s := &eq.slots[(n-1)&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	eq.discardBefore(n - min(n, parameter.EventQueueSize))
}

// discardBefore moves head up to floor, counting skipped events
func (eq *EventQueue) discardBefore(floor uint64) {
	for {
		h := eq.head.Load()
		if h >= floor {
			return
		}
		if eq.head.CompareAndSwap(h, floor) {
			eq.dropped.Add(floor - h)
			return
		}
	}
}

// Consume drains ready events in order; a slot still being written ends the batch
func (eq *EventQueue) Consume() []GameEvent {
	for {
		h := eq.head.Load()
		pending := eq.tail.Load() - h
		if pending == 0 {
			return nil
		}
		pending = min(pending, parameter.EventQueueSize)

		var out []GameEvent
		for i := uint64(0); i < pending; i++ {
			s := &eq.slots[(h+i)&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		// Producers overwrote part of the batch, retry from the new head
		if !eq.head.CompareAndSwap(h, h+uint64(len(out))) {
			continue
		}
		return out
	}
}

// Len is the pending count, exact only when no producer is active
func (eq *EventQueue) Len() int {
	h, t := eq.head.Load(), eq.tail.Load()
	if t <= h {
		return 0
	}
	return int(min(t-h, parameter.EventQueueSize))
}

// Dropped reports events overwritten before they were consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
