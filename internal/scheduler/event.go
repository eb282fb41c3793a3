package scheduler

import "time"

type EventType int

const (
	// PollEvents drains the native event queue.
	PollEvents EventType = iota
	// Render uploads, composites and presents a frame.
	Render

	eventTypes
)

type Event struct {
	at        time.Duration
	period    time.Duration
	eventType EventType
	scheduled bool
	next      *Event
}

func (e *Event) Reset() {
	e.at = 0
	e.period = 0
	e.scheduled = false
	e.next = nil
}
