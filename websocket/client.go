package websocket

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Clients send nothing but pong and close frames.
	maxMessageSize = 512

	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cookie auth already ran; same-site cookies cover cross-origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket connection of a logged in parent.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	ParentID string
	send     chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn, parentID string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		ParentID: parentID,
		send:     make(chan []byte, sendBuffer),
	}
}

// ServeWs upgrades the request and starts the client's pumps.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, parentID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := NewClient(hub, conn, parentID)
	hub.Register(client)
	slog.Debug("Websocket client connected", "parent_id", parentID)

	go client.WritePump()
	go client.ReadPump()
	return nil
}

// ReadPump drains the connection so pong and close frames are processed.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("Websocket read failed", "parent_id", c.ParentID, "error", err)
			}
			return
		}
	}
}

// WritePump sends queued events and pings to the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				slog.Debug("Websocket write failed", "parent_id", c.ParentID, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
