package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mcoot/semantly-go/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one live websocket connection
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewClient wraps a websocket connection (exported for hub tests, which
// exercise groups without a real connection)
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Send returns the client's outbound channel
func (c *Client) Send() <-chan []byte {
	return c.send
}

// writePump drains the send channel onto the connection. Exits when the
// hub closes the channel or a write fails.
func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump consumes inbound frames until the connection drops. Inbound
// text carries no state changes; it is logged and discarded.
func (c *Client) readPump(logger *slog.Logger) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		logger.Info("ws received data", slog.String("data", string(data)))
	}
}

// ServeWS upgrades the request to a websocket and joins the connection
// to the game code's broadcast group. Blocks until the client
// disconnects, then tears the subscription down.
func ServeWS(w http.ResponseWriter, r *http.Request, manager *HubManager, code model.GameCode, logger *slog.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws upgrade failed",
			slog.String("game", string(code)),
			slog.String("error", err.Error()))
		return
	}

	client := NewClient(conn)
	manager.Subscribe(code, client)
	defer manager.Unsubscribe(code, client)

	go client.writePump()
	client.readPump(logger.With(slog.String("game", string(code))))
}
