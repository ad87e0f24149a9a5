package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer   = 256
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// ErrSlowClient is returned by Send when the client's buffer is full.
var ErrSlowClient = errors.New("ws: client send buffer full")

// ErrClientClosed is returned by Send after the client shut down.
var ErrClientClosed = errors.New("ws: client closed")

// Client wraps one websocket connection and implements
// broadcast.Subscriber. Payloads are queued on a buffered channel and
// written by a single pump goroutine.
type Client struct {
	conn   *websocket.Conn
	logger logger.Interface

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps conn and starts its write pump.
func NewClient(conn *websocket.Conn, logger logger.Interface) *Client {
	client := &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	go client.writePump()
	return client
}

// Send queues a payload for delivery. It fails fast instead of
// blocking when the client cannot keep up.
func (c *Client) Send(message []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- message:
		return nil
	default:
		return ErrSlowClient
	}
}

// Wait blocks until the client disconnects. It reads and discards
// inbound frames so close and pong control frames are processed.
func (c *Client) Wait() {
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("websocket client disconnected", logger.Field{
					Key:   "reason",
					Value: err.Error(),
				})
			}
			break
		}
	}
	c.Close()
}

// Close tears the connection down and stops the write pump.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}
