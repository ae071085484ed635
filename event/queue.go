package event

import (
	"sync/atomic"

	"github.com/lixenwraith/neon-serpent/parameter"
)

// EventQueue carries game events from any goroutine to the tick
// orchestrator. Producers claim slots by CAS on the write cursor and a
// per-slot published flag keeps the single consumer from observing a
// half-written event. When producers lap the consumer the ring
// overwrites the oldest unread events rather than ever blocking a tick
type EventQueue struct {
	slots     [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	read      atomic.Uint64
	write     atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next slot and publishes the event; safe from any
// goroutine
func (q *EventQueue) Push(ev GameEvent) {
	for {
		cursor := q.write.Load()
		if !q.write.CompareAndSwap(cursor, cursor+1) {
			continue
		}
		idx := cursor & parameter.EventBufferMask
		q.slots[idx] = ev
		q.published[idx].Store(true) // publish strictly after the slot write

		// Drag the read cursor forward when lapping unread events
		read := q.read.Load()
		if cursor+1-read > parameter.EventQueueSize {
			q.read.CompareAndSwap(read, cursor+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains all published events in FIFO order
// Single consumer only. Stops at the first unpublished slot, so an
// event mid-write by a producer is simply picked up next drain
func (q *EventQueue) Consume() []GameEvent {
	for {
		read := q.read.Load()
		write := q.write.Load()
		if write == read {
			return nil
		}

		pending := write - read
		if pending > parameter.EventQueueSize {
			pending = parameter.EventQueueSize
			read = write - parameter.EventQueueSize
		}

		batch := make([]GameEvent, 0, pending)
		for i := uint64(0); i < pending; i++ {
			idx := (read + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			batch = append(batch, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.read.CompareAndSwap(read, read+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}

// Len reports the pending event count, approximate under concurrent
// producers. The ticker publishes it as a queue depth gauge
func (q *EventQueue) Len() int {
	read := q.read.Load()
	write := q.write.Load()
	if write <= read {
		return 0
	}
	if write-read > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return int(write - read)
}
