//go:build cgo

// Command sdlcanvas rasterizes a red canvas with a blue square in one
// corner and blits it into a window once per render tick.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gogpu/gg"
	"github.com/thelolagemann/gosdl/internal/config"
	"github.com/thelolagemann/gosdl/internal/native/sdl2"
	"github.com/thelolagemann/gosdl/pkg/log"
	"github.com/thelolagemann/gosdl/pkg/sdl"
	"github.com/thelolagemann/gosdl/pkg/sdl/relay"
)

func init() {
	// native windowing calls must stay on the main thread
	runtime.LockOSThread()
}

// draw paints the canvas and returns it in the texture layout.
func draw(width, height int) ([]byte, int, error) {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return nil, 0, err
	}
	dc.SetRGB(0, 0, 1)
	dc.DrawRectangle(0, 0, 50, 50)
	if err := dc.Fill(); err != nil {
		return nil, 0, err
	}

	pix, pitch := sdl.Pixels(dc.Image(), width, height)
	return pix, pitch, nil
}

func main() {
	configFile := flag.String("config", "", "The YAML config file to load")
	logLevel := flag.String("log", "", "The log level. Can be debug, info, warn or error")
	relayAddr := flag.String("relay", "", "Serve events to websocket clients on this address")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *relayAddr != "" {
		cfg.Relay = *relayAddr
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger := log.NewWithWriter(os.Stderr, level)

	wc := cfg.Windows[0]
	pix, pitch, err := draw(wc.Width, wc.Height)
	if err != nil {
		log.Fatal(err.Error())
	}

	b := sdl.New(sdl2.Library{}, sdl.WithLogger(logger))
	if err := b.Init(); err != nil {
		log.Fatal(err.Error())
	}

	win, err := b.NewWindow("Canvas test", sdl.WithSize(wc.Width, wc.Height))
	if err != nil {
		b.Quit()
		log.Fatal(err.Error())
	}
	renderer, err := win.CreateRenderer()
	if err != nil {
		b.Quit()
		log.Fatal(err.Error())
	}
	texture, err := renderer.CreateTexture(wc.Width, wc.Height)
	if err != nil {
		b.Quit()
		log.Fatal(err.Error())
	}
	b.Track(win, renderer, texture)

	render := func() error {
		// the window may have been closed while the loop keeps running
		if texture.Destroyed() {
			return nil
		}
		if _, err := texture.UpdateIfChanged(pix, pitch); err != nil {
			return err
		}
		if err := renderer.RenderTexture(texture); err != nil {
			return err
		}
		return renderer.Present()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Relay != "" {
		hub := relay.New(b.Events(), relay.WithLogger(logger), relay.WithInfoEvery(time.Second))
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.Relay); err != nil {
				logger.Errorf("relay: %v", err)
			}
		}()
	}

	loop := b.NewLoop(render, sdl.PollEvery(cfg.PollEvery()), sdl.RenderEvery(cfg.RenderEvery()))
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("%v", err)
	}
	b.Quit()
}
