package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// Scheduler is a simple event scheduler driven by an external clock. The
// host advances the clock with Tick, from a timer, a game loop or a test,
// and every event due at the new time is executed.
//
// The scheduler is a linked list of events, sorted by the time at which
// they should be executed. Events due at the same time run in the order
// they were scheduled. Periodic events are re-armed before their handler
// runs, so a handler may deschedule its own event.
type Scheduler struct {
	now  time.Duration
	root *Event

	eventHandlers [eventTypes]func()
	events        [eventTypes]*Event // only one event of each type can be scheduled at a time
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}

	// initialize the events with the number of event types
	// to avoid allocating a new event each time one is scheduled
	for i := 0; i < int(eventTypes); i++ {
		s.events[i] = &Event{eventType: EventType(i)}
	}

	return s
}

// Now returns the time elapsed on the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// RegisterEvent registers the function to be called when an event of the
// given type is executed.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// ScheduleEvent schedules a one-shot event after the given delay. An event
// of the same type that is already scheduled is replaced.
func (s *Scheduler) ScheduleEvent(eventType EventType, after time.Duration) {
	s.schedule(eventType, after, 0)
}

// SchedulePeriodic schedules an event to run every period, starting one
// period from now. Ticks that are missed because the clock jumped ahead
// are dropped rather than run back to back.
func (s *Scheduler) SchedulePeriodic(eventType EventType, period time.Duration) {
	if period <= 0 {
		panic(fmt.Sprintf("scheduler: non-positive period %v", period))
	}
	s.schedule(eventType, period, period)
}

func (s *Scheduler) schedule(eventType EventType, after, period time.Duration) {
	s.DescheduleEvent(eventType)

	this := s.events[eventType]
	this.Reset()
	this.period = period
	s.insert(this, s.now+after)
}

// insert places the event after every event due at or before at.
func (s *Scheduler) insert(this *Event, at time.Duration) {
	this.at = at
	this.scheduled = true
	this.next = nil

	if s.root == nil || at < s.root.at {
		this.next = s.root
		s.root = this
		return
	}

	event := s.root
	for event.next != nil && event.next.at <= at {
		event = event.next
	}
	this.next = event.next
	event.next = this
}

// DescheduleEvent removes the event of the given type, if scheduled.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			event.next = nil
			event.scheduled = false
			return
		}
		prev = event
	}
}

// Scheduled reports whether an event of the given type is pending.
func (s *Scheduler) Scheduled(eventType EventType) bool {
	return s.events[eventType].scheduled
}

// Until returns the time left before the event of the given type is due,
// or false if it is not scheduled.
func (s *Scheduler) Until(eventType EventType) (time.Duration, bool) {
	e := s.events[eventType]
	if !e.scheduled {
		return 0, false
	}
	return e.at - s.now, true
}

// Tick advances the clock by d and executes every event due at the new
// time, returning how many handlers ran.
func (s *Scheduler) Tick(d time.Duration) int {
	s.now += d

	n := 0
	for s.root != nil && s.root.at <= s.now {
		event := s.root
		s.root = event.next
		event.next = nil
		event.scheduled = false

		if event.period > 0 {
			next := event.at + event.period
			if next <= s.now {
				next = s.now + event.period
			}
			s.insert(event, next)
		}

		if fn := s.eventHandlers[event.eventType]; fn != nil {
			fn()
		}
		n++
	}

	return n
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%d:%v->", event.eventType, event.at)
	}
	return b.String()
}
