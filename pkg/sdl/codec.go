package sdl

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

// ErrUnknownEventType is returned by Decode for discriminants the binding
// does not model. The poller drops such records silently.
var ErrUnknownEventType = errors.New("sdl: unknown event type")

// Decode reads the discriminant of rec and decodes the matching variant.
// No other variant is ever read.
func Decode(rec *abi.Event) (event.Event, error) {
	switch rec.Type {
	case abi.EventQuit:
		q, _ := rec.Quit()
		return event.Quit{Timestamp: q.Timestamp}, nil
	case abi.EventWindow:
		w, _ := rec.Window()
		id, err := event.LookupWindowEvent(w.Event)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", w.WindowID, err)
		}
		return event.Window{
			Timestamp: w.Timestamp,
			WindowID:  w.WindowID,
			Event:     id,
			Data1:     w.Data1,
			Data2:     w.Data2,
		}, nil
	case abi.EventMouseMotion:
		m, _ := rec.Motion()
		return event.Motion{
			Timestamp: m.Timestamp,
			WindowID:  m.WindowID,
			Which:     m.Which,
			State:     m.State,
			X:         m.X,
			Y:         m.Y,
			XRel:      m.XRel,
			YRel:      m.YRel,
		}, nil
	}
	return nil, fmt.Errorf("%w: %#x", ErrUnknownEventType, rec.Type)
}

// Encode writes ev back into a native record.
func Encode(ev event.Event) (abi.Event, error) {
	switch e := ev.(type) {
	case event.Quit:
		return abi.NewQuitEvent(abi.QuitEvent{Timestamp: e.Timestamp}), nil
	case *event.Quit:
		return Encode(*e)
	case event.Window:
		if !e.Event.Valid() {
			return abi.Event{}, fmt.Errorf("window %d: %w: code %d", e.WindowID, event.ErrUnknownWindowEvent, uint8(e.Event))
		}
		return abi.NewWindowEvent(abi.WindowEvent{
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Event:     uint8(e.Event),
			Data1:     e.Data1,
			Data2:     e.Data2,
		}), nil
	case *event.Window:
		return Encode(*e)
	case event.Motion:
		return abi.NewMotionEvent(abi.MouseMotionEvent{
			Timestamp: e.Timestamp,
			WindowID:  e.WindowID,
			Which:     e.Which,
			State:     e.State,
			X:         e.X,
			Y:         e.Y,
			XRel:      e.XRel,
			YRel:      e.YRel,
		}), nil
	case *event.Motion:
		return Encode(*e)
	}
	return abi.Event{}, fmt.Errorf("%w: %T", ErrUnknownEventType, ev)
}
