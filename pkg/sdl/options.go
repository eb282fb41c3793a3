package sdl

import (
	"time"

	"github.com/thelolagemann/gosdl/internal/abi"
	"github.com/thelolagemann/gosdl/pkg/log"
)

// Opt configures a Binding.
type Opt func(b *Binding)

// WithLogger sets the logger used by the binding and everything it creates.
func WithLogger(l log.Logger) Opt {
	return func(b *Binding) {
		b.log = l
	}
}

// WithInitFlags replaces the subsystem flags passed to the native init
// call. The default starts the video subsystem only.
func WithInitFlags(flags uint32) Opt {
	return func(b *Binding) {
		b.initFlags = flags
	}
}

// DefaultWidth and DefaultHeight size windows created without WithSize.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type windowConfig struct {
	x, y          int32
	width, height int32
	flags         uint32
}

func defaultWindowConfig() windowConfig {
	return windowConfig{
		x:      abi.WindowPosUndefined,
		y:      abi.WindowPosUndefined,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// WindowOpt configures a window at creation.
type WindowOpt func(c *windowConfig)

// WithSize sets the window size in pixels.
func WithSize(width, height int) WindowOpt {
	return func(c *windowConfig) {
		c.width, c.height = int32(width), int32(height)
	}
}

// WithPosition places the window. Without it the native library chooses.
func WithPosition(x, y int) WindowOpt {
	return func(c *windowConfig) {
		c.x, c.y = int32(x), int32(y)
	}
}

// WithWindowFlags sets native window creation flags.
func WithWindowFlags(flags uint32) WindowOpt {
	return func(c *windowConfig) {
		c.flags = flags
	}
}

// Default tick periods of a Loop.
const (
	DefaultPollEvery   = time.Second / 60
	DefaultRenderEvery = time.Second / 60
)

// LoopOpt configures a Loop.
type LoopOpt func(l *Loop)

// PollEvery sets the period of the event poll tick.
func PollEvery(d time.Duration) LoopOpt {
	return func(l *Loop) {
		l.pollEvery = d
	}
}

// RenderEvery sets the period of the render tick.
func RenderEvery(d time.Duration) LoopOpt {
	return func(l *Loop) {
		l.renderEvery = d
	}
}

// WithResolution sets how often Run advances the loop clock. It defaults
// to the shorter of the two tick periods.
func WithResolution(d time.Duration) LoopOpt {
	return func(l *Loop) {
		l.resolution = d
	}
}
