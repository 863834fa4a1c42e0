package host

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/google/uuid"

	"github.com/oortcore/simulator/snapshot"
)

// writeWait bounds how long a single frame write may take, mirroring the
// teacher's per-write deadline in server/websocket.go's writePump.
const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	// A snapshot stream has no same-origin browser UI to protect against
	// CSRF-style cross-site reads; any caller that can reach the port may
	// subscribe, matching the teacher's permissive isValidOrigin default
	// for non-browser clients.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket subscriber to a single run's snapshot stream.
// It only ever receives; the run loop is not driven by client input
// (spec.md §6's host/worker stream is one-directional).
type Client struct {
	conn *websocket.Conn
	send chan snapshot.Snapshot
}

// HandleSnapshotStream upgrades r to a websocket and streams runID's
// snapshots to it until the run ends or the connection drops. Generalizes
// the teacher's HandleWebSocket+writePump pair.
func (h *Hub) HandleSnapshotStream(w http.ResponseWriter, r *http.Request, runID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := &Client{conn: conn, send: make(chan snapshot.Snapshot, 8)}
	if !h.Subscribe(runID, c) {
		conn.Close()
		return
	}

	go c.readDiscard(h, runID)
	c.writePump(h)
}

// readDiscard drains and discards any inbound frame (this stream has no
// client->server protocol) purely to detect the connection closing, the
// same role the teacher's readPump plays for close detection.
func (c *Client) readDiscard(h *Hub, runID uuid.UUID) {
	defer func() {
		h.Unsubscribe(runID, c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *Client) writePump(h *Hub) {
	defer c.conn.Close()
	for snap := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(snap); err != nil {
			return
		}
	}
	// The channel was closed because the run ended; tell the subscriber.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"))
}
