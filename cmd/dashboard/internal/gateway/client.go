package gateway

import (
	"encoding/json"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/hub"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/protocol"
)

const (
	maxMessageSize = 512 * 1024
)

type ClientAdapter struct {
	id     string
	conn   net.Conn
	hub    *hub.Hub
	send   chan []byte
	logger *zap.Logger

	closeOnce sync.Once
	done      chan struct{}

	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
}

func NewClient(conn net.Conn, h *hub.Hub, logger *zap.Logger) *ClientAdapter {
	id := uuid.NewString()
	return &ClientAdapter{
		id:         id,
		conn:       conn,
		hub:        h,
		send:       make(chan []byte, 256),
		logger:     logger.With(zap.String("client_id", id)),
		done:       make(chan struct{}),
		writeWait:  5 * time.Second,
		pongWait:   60 * time.Second,
		pingPeriod: 50 * time.Second,
	}
}

func (c *ClientAdapter) Start() {
	c.logger.Debug("Client connected", zap.String("remote", c.conn.RemoteAddr().String()))
	go c.writePump()
	go c.readPump()
}

func (c *ClientAdapter) ID() string { return c.id }

// Close signals the write pump; it owns the connection and closes it.
func (c *ClientAdapter) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *ClientAdapter) SendJSON(v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("JSON Marshal Error", zap.Error(err))
		return
	}
	c.SendBytes(b)
}

func (c *ClientAdapter) SendBytes(b []byte) {
	select {
	case <-c.done:
	case c.send <- b:
	default:
		// Drop message if buffer full (Backpressure)
	}
}

func (c *ClientAdapter) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))

	for {
		header, err := ws.ReadHeader(c.conn)
		if err != nil {
			break
		}

		if header.Length > int64(maxMessageSize) {
			c.logger.Warn("Msg too big", zap.Int64("size", header.Length))
			break
		}

		if !header.Fin {
			c.logger.Warn("Client sent fragmented message (not supported)")
			break
		}

		payload := make([]byte, header.Length)
		if _, err := io.ReadFull(c.conn, payload); err != nil {
			break
		}

		if header.Masked {
			ws.Cipher(payload, header.Mask, 0)
		}

		switch header.OpCode {
		case ws.OpClose:
			return
		case ws.OpPong:
			c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
			continue
		case ws.OpText:
			var req protocol.WSRequest
			if err := json.Unmarshal(payload, &req); err != nil {
				c.SendJSON(protocol.WSResponse{Type: "error", Message: "Invalid JSON"})
				continue
			}

			for i, topic := range req.Payload.Topics {
				req.Payload.Topics[i] = strings.ToLower(strings.TrimSpace(topic))
			}

			c.hub.HandleCommand(c, req)
		}
	}
}

func (c *ClientAdapter) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := wsutil.WriteServerText(c.conn, msg); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			c.conn.Write(ws.CompiledClose)
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := wsutil.WriteServerMessage(c.conn, ws.OpPing, nil); err != nil {
				return
			}
		}
	}
}
