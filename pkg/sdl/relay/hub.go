// Package relay mirrors the events published on a bus to websocket
// clients, so that a browser or a second process can observe windows
// driven by the binding.
package relay

import (
	"cmp"
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gosdl/pkg/log"
	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

// NameInfo is the name of the periodic client list message.
const NameInfo event.Name = "info"

// Message is the JSON document sent to clients. Events carry Event;
// info messages carry Clients.
type Message struct {
	Name    event.Name   `json:"name"`
	Event   event.Event  `json:"event,omitempty"`
	Clients []ClientInfo `json:"clients,omitempty"`
}

// ClientInfo describes a connected client in an info message.
type ClientInfo struct {
	ID         uint32 `json:"id"`
	RemoteAddr string `json:"remoteAddr"`
	// Latency is the smoothed round trip time in milliseconds, or 0 where
	// the platform does not expose it.
	Latency uint32 `json:"latency"`
}

// Hub fans events out to every connected client. Clients that cannot keep
// up are disconnected rather than slowing the publisher down.
type Hub struct {
	log log.Logger
	sub *event.Subscription

	clients              map[*Client]bool
	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}

	infoEvery time.Duration
	nextID    atomic.Uint32
	count     atomic.Int32
	dropped   atomic.Uint64
}

// Opt configures a Hub.
type Opt func(h *Hub)

// WithLogger sets the hub logger.
func WithLogger(l log.Logger) Opt {
	return func(h *Hub) {
		h.log = l
	}
}

// WithInfoEvery makes the hub broadcast the client list every d. It is
// disabled by default.
func WithInfoEvery(d time.Duration) Opt {
	return func(h *Hub) {
		h.infoEvery = d
	}
}

// New returns a hub relaying every event published on bus. Run must be
// called for clients to be served.
func New(bus *event.Bus, opts ...Opt) *Hub {
	h := &Hub{
		log:        log.NewNullLogger(),
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.sub = bus.SubscribeAll(h.publish)
	return h
}

// publish runs on the publisher's goroutine and must never block it.
func (h *Hub) publish(e event.Event) {
	msg, err := json.Marshal(Message{Name: e.Name(), Event: e})
	if err != nil {
		h.log.Errorf("encoding %s event: %v", e.Name(), err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.dropped.Add(1)
	}
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Dropped returns how many events were discarded because the broadcast
// queue was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// ServeHTTP upgrades the request to a websocket connection and registers
// the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := &Client{
		hub:        h,
		conn:       conn,
		Send:       make(chan []byte, 256),
		ID:         h.nextID.Add(1),
		RemoteAddr: r.RemoteAddr,
		UserAgent:  r.Header.Get("User-Agent"),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.ReadPump()
	go c.WritePump()
}

// Run serves registrations and broadcasts until ctx is done, then
// disconnects every client and stops relaying events.
func (h *Hub) Run(ctx context.Context) error {
	var info <-chan time.Time
	if h.infoEvery > 0 {
		t := time.NewTicker(h.infoEvery)
		defer t.Stop()
		info = t.C
	}

	defer func() {
		h.sub.Unsubscribe()
		close(h.done)
		for c := range h.clients {
			h.remove(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-h.register:
			h.clients[c] = true
			h.count.Add(1)
			h.log.Infof("client %d connected from %s", c.ID, c.RemoteAddr)
		case c := <-h.unregister:
			if h.clients[c] {
				h.remove(c)
				h.log.Infof("client %d disconnected", c.ID)
			}
		case msg := <-h.broadcast:
			h.send(msg)
		case <-info:
			msg, err := json.Marshal(Message{Name: NameInfo, Clients: h.info()})
			if err != nil {
				h.log.Errorf("encoding client list: %v", err)
				continue
			}
			h.send(msg)
		}
	}
}

// ListenAndServe serves the hub on addr and runs it until ctx is done. It
// returns nil after ctx is done, or the error that stopped the server.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go h.Run(ctx)

	srv := &http.Server{Addr: addr, Handler: h}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	h.log.Infof("relaying events on %s", addr)

	select {
	case <-ctx.Done():
		srv.Close()
		return nil
	case err := <-errc:
		return err
	}
}

func (h *Hub) send(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			h.log.Errorf("client %d is too slow, disconnecting", c.ID)
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *Client) {
	close(c.Send)
	delete(h.clients, c)
	h.count.Add(-1)
}

// info lists the registered clients, oldest first.
func (h *Hub) info() []ClientInfo {
	list := make([]ClientInfo, 0, len(h.clients))
	for c := range h.clients {
		list = append(list, ClientInfo{ID: c.ID, RemoteAddr: c.RemoteAddr, Latency: c.Latency()})
	}
	slices.SortFunc(list, func(a, b ClientInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}

// leave hands a client back to the hub. It never blocks once Run has
// returned.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 4,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
