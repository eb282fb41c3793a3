package abi

import "unsafe"

// Event type discriminants. The native library defines many more; the
// binding only models these.
const (
	EventQuit        uint32 = 0x100
	EventWindow      uint32 = 0x200
	EventMouseMotion uint32 = 0x400
)

// Window sub-event codes carried in WindowEvent.Event.
const (
	WindowEventNone uint8 = iota
	WindowEventShown
	WindowEventHidden
	WindowEventExposed
	WindowEventMoved
	WindowEventResized
	WindowEventSizeChanged
	WindowEventMinimized
	WindowEventMaximized
	WindowEventRestored
	WindowEventEnter
	WindowEventLeave
	WindowEventFocusGained
	WindowEventFocusLost
	WindowEventClose
	WindowEventTakeFocus
	WindowEventHitTest
)

// EventSize is the size in bytes of the native event union.
const EventSize = 56

// QuitEvent mirrors SDL_QuitEvent.
type QuitEvent struct {
	Type      uint32
	Timestamp uint32
}

// WindowEvent mirrors SDL_WindowEvent.
type WindowEvent struct {
	Type      uint32
	Timestamp uint32
	WindowID  uint32
	Event     uint8
	_         [3]uint8
	Data1     int32
	Data2     int32
}

// MouseMotionEvent mirrors SDL_MouseMotionEvent.
type MouseMotionEvent struct {
	Type      uint32
	Timestamp uint32
	WindowID  uint32
	Which     uint32
	State     uint32
	X, Y      int32
	XRel      int32
	YRel      int32
}

// Event mirrors the SDL_Event union. The native union contains 64-bit
// members, so the record is 8-byte aligned and padded to EventSize bytes.
// Only the discriminant may be read directly; variants must be obtained
// through the accessors, which check it.
type Event struct {
	_         [0]uint64
	Type      uint32
	Timestamp uint32
	_         [EventSize - 8]byte
}

// Quit returns the quit variant of e, or false if e holds another variant.
func (e *Event) Quit() (*QuitEvent, bool) {
	if e.Type != EventQuit {
		return nil, false
	}
	return (*QuitEvent)(unsafe.Pointer(e)), true
}

// Window returns the window variant of e, or false if e holds another variant.
func (e *Event) Window() (*WindowEvent, bool) {
	if e.Type != EventWindow {
		return nil, false
	}
	return (*WindowEvent)(unsafe.Pointer(e)), true
}

// Motion returns the mouse motion variant of e, or false if e holds another variant.
func (e *Event) Motion() (*MouseMotionEvent, bool) {
	if e.Type != EventMouseMotion {
		return nil, false
	}
	return (*MouseMotionEvent)(unsafe.Pointer(e)), true
}

// Bytes returns the raw storage of e. The slice aliases e.
func (e *Event) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(e)), EventSize)
}

// Reset zeroes the record so it can be reused for the next poll.
func (e *Event) Reset() {
	*e = Event{}
}

// EventFromBytes copies a native-order record into an Event. Short input is
// zero padded; bytes beyond EventSize are ignored.
func EventFromBytes(b []byte) Event {
	var e Event
	copy(e.Bytes(), b)
	return e
}

// NewQuitEvent builds a record holding the quit variant.
func NewQuitEvent(q QuitEvent) Event {
	var e Event
	q.Type = EventQuit
	*(*QuitEvent)(unsafe.Pointer(&e)) = q
	return e
}

// NewWindowEvent builds a record holding the window variant.
func NewWindowEvent(w WindowEvent) Event {
	var e Event
	w.Type = EventWindow
	*(*WindowEvent)(unsafe.Pointer(&e)) = w
	return e
}

// NewMotionEvent builds a record holding the mouse motion variant.
func NewMotionEvent(m MouseMotionEvent) Event {
	var e Event
	m.Type = EventMouseMotion
	*(*MouseMotionEvent)(unsafe.Pointer(&e)) = m
	return e
}
