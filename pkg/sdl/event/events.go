// Package event defines the structured events republished by the binding
// and the bus that fans them out to subscribers. This package is separate
// from the sdl package so that subscribers do not need to depend on the
// native binding.
package event

// Name identifies an event variant. Subscribers select events by name.
type Name string

const (
	// NameQuit is published when the native library requests that the
	// application terminate. It is the authoritative signal to stop.
	NameQuit Name = "quit"
	// NameWindow is published for window state changes, including close
	// requests.
	NameWindow Name = "window"
	// NameMotion is published when the mouse moves over a window.
	NameMotion Name = "motion"
)

// Event is a decoded native event.
type Event interface {
	Name() Name
}

// Quit is the payload of a quit event.
type Quit struct {
	Timestamp uint32 `json:"timestamp"`
}

// Window is the payload of a window event.
type Window struct {
	Timestamp uint32        `json:"timestamp"`
	WindowID  uint32        `json:"windowID"`
	Event     WindowEventID `json:"event"`
	Data1     int32         `json:"data1"`
	Data2     int32         `json:"data2"`
}

// Motion is the payload of a mouse motion event.
type Motion struct {
	Timestamp uint32 `json:"timestamp"`
	WindowID  uint32 `json:"windowID"`
	// Which is the mouse instance id.
	Which uint32 `json:"which"`
	// State is the button state bitmask.
	State uint32 `json:"state"`
	X     int32  `json:"x"`
	Y     int32  `json:"y"`
	XRel  int32  `json:"xrel"`
	YRel  int32  `json:"yrel"`
}

func (Quit) Name() Name   { return NameQuit }
func (Window) Name() Name { return NameWindow }
func (Motion) Name() Name { return NameMotion }
