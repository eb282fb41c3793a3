package relay

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gosdl/pkg/sdl/event"
)

type received struct {
	Name    event.Name      `json:"name"`
	Event   json.RawMessage `json:"event"`
	Clients []ClientInfo    `json:"clients"`
}

func startHub(t *testing.T, opts ...Opt) (*event.Bus, *Hub, *websocket.Conn, context.CancelFunc) {
	t.Helper()
	bus := event.NewBus()
	hub := New(bus, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(hub)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		cancel()
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
		srv.Close()
	})

	waitFor(t, func() bool { return hub.Clients() == 1 })
	return bus, hub, conn, cancel
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg received
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decoding %s: %v", data, err)
	}
	return msg
}

func TestHub_RelaysEventsInOrder(t *testing.T) {
	bus, _, conn, _ := startHub(t)

	bus.Publish(event.Window{Timestamp: 10, WindowID: 2, Event: event.WindowClose, Data1: -1, Data2: 3})
	bus.Publish(event.Motion{WindowID: 2, X: 4, Y: 5})
	bus.Publish(event.Quit{Timestamp: 11})

	tests := []struct {
		name  event.Name
		event string
	}{
		{event.NameWindow, `{"timestamp":10,"windowID":2,"event":"close","data1":-1,"data2":3}`},
		{event.NameMotion, `{"timestamp":0,"windowID":2,"which":0,"state":0,"x":4,"y":5,"xrel":0,"yrel":0}`},
		{event.NameQuit, `{"timestamp":11}`},
	}
	for _, tt := range tests {
		msg := read(t, conn)
		if msg.Name != tt.name {
			t.Errorf("expected %s, got %s", tt.name, msg.Name)
		}
		if string(msg.Event) != tt.event {
			t.Errorf("expected %s, got %s", tt.event, msg.Event)
		}
	}
}

func TestHub_Info(t *testing.T) {
	_, _, conn, _ := startHub(t, WithInfoEvery(10*time.Millisecond))

	msg := read(t, conn)
	if msg.Name != NameInfo {
		t.Fatalf("expected an info message, got %s", msg.Name)
	}
	if len(msg.Clients) != 1 || msg.Clients[0].ID != 1 {
		t.Errorf("expected client 1 in the list, got %+v", msg.Clients)
	}
	if msg.Clients[0].RemoteAddr == "" {
		t.Error("expected the remote address to be reported")
	}
}

func TestHub_ClientDisconnect(t *testing.T) {
	bus, hub, conn, _ := startHub(t)

	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })

	// publishing with no clients must not block the bus
	for i := 0; i < 1000; i++ {
		bus.Publish(event.Quit{})
	}
}

func TestHub_StopClosesClients(t *testing.T) {
	bus, hub, conn, cancel := startHub(t)

	cancel()
	waitFor(t, func() bool { return hub.Clients() == 0 })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected a normal close, got %v", err)
	}
	if bus.Len() != 0 {
		t.Errorf("expected the hub to unsubscribe, got %d subscriptions", bus.Len())
	}
}

func TestHub_DropsWhenQueueFull(t *testing.T) {
	bus := event.NewBus()
	hub := New(bus)

	// nothing drains the queue until Run is called
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		bus.Publish(event.Quit{})
	}
	if got := hub.Dropped(); got != 10 {
		t.Errorf("expected 10 dropped events, got %d", got)
	}
}
