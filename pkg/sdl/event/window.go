package event

import (
	"errors"
	"fmt"
)

// WindowEventID is the sub-event carried by a window event.
type WindowEventID uint8

const (
	WindowNone WindowEventID = iota
	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
)

// windowEventNames is indexed by native sub-event code.
var windowEventNames = [...]string{
	"none",
	"shown",
	"hidden",
	"exposed",
	"moved",
	"resized",
	"size_changed",
	"minimized",
	"maximized",
	"restored",
	"enter",
	"leave",
	"focus_gained",
	"focus_lost",
	"close",
	"take_focus",
	"hit_test",
}

// ErrUnknownWindowEvent is returned for sub-event codes outside the table.
var ErrUnknownWindowEvent = errors.New("event: unknown window event")

// LookupWindowEvent translates a native sub-event code. Codes outside the
// table are rejected.
func LookupWindowEvent(code uint8) (WindowEventID, error) {
	if int(code) >= len(windowEventNames) {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownWindowEvent, code)
	}
	return WindowEventID(code), nil
}

// ParseWindowEvent returns the sub-event with the given symbolic name.
func ParseWindowEvent(name string) (WindowEventID, error) {
	for i, n := range windowEventNames {
		if n == name {
			return WindowEventID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindowEvent, name)
}

// Valid reports whether id is in the table.
func (id WindowEventID) Valid() bool {
	return int(id) < len(windowEventNames)
}

func (id WindowEventID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("WindowEventID(%d)", uint8(id))
	}
	return windowEventNames[id]
}

func (id WindowEventID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownWindowEvent, uint8(id))
	}
	return []byte(windowEventNames[id]), nil
}

func (id *WindowEventID) UnmarshalText(b []byte) error {
	v, err := ParseWindowEvent(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
