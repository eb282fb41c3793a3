package relay

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Client is a websocket connection registered on a Hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	Send chan []byte

	ID         uint32
	RemoteAddr string
	UserAgent  string

	latency atomic.Uint32
}

// Latency returns the smoothed round trip time in milliseconds.
func (c *Client) Latency() uint32 {
	return c.latency.Load()
}

// ReadPump discards incoming messages until the connection closes, then
// unregisters the client. The relay is one way; reading is only needed to
// process control frames.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// WritePump writes queued messages to the connection until the hub closes
// Send or a write fails.
func (c *Client) WritePump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	for message := range c.Send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}

		rtt, err := roundTrip(c.conn.UnderlyingConn())
		if err != nil {
			continue
		}
		ms := uint32(rtt / time.Millisecond)
		c.latency.Store((c.latency.Load()*9 + ms) / 10)
	}

	// the hub closed the connection
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
