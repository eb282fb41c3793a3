//go:build cgo

// Command sdlwindows opens the configured windows, closes each one when
// its close button is pressed and exits on quit.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

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

	b := sdl.New(sdl2.Library{}, sdl.WithLogger(logger))
	if err := b.Init(); err != nil {
		log.Fatal(err.Error())
	}

	for _, wc := range cfg.Windows {
		w, err := b.NewWindow(wc.Title, sdl.WithSize(wc.Width, wc.Height))
		if err != nil {
			b.Quit()
			log.Fatal(err.Error())
		}
		b.Track(w, nil, nil)
	}
	b.Tracker().OnClose(func(g *sdl.Group) {
		logger.Infof("closed window %d, %d left", g.Window.ID(), b.Tracker().Len())
	})

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

	loop := b.NewLoop(nil, sdl.PollEvery(cfg.PollEvery()))
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("%v", err)
	}
	b.Quit()
}
