package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"weddify/models"
	"weddify/session"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Events on the realtime channel.
const (
	eventJoinConversation = "joinConversation"
	eventSendMessage      = "sendMessage"
	eventReceiveMessage   = "receiveMessage"
	eventMarkAsRead       = "markAsRead"
)

// envelope is the wire frame: an event name plus its payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Channel is the realtime transport the conversation store drives.
type Channel interface {
	Connect(ctx context.Context) error
	Emit(event string, payload any) error
	OnMessage(fn func(models.Message))
	OnError(fn func(error))
	Close() error
}

// WebsocketChannel speaks the gateway's websocket protocol. The token
// travels in the handshake; vendor connections additionally announce
// their role so the gateway routes them into vendor rooms.
type WebsocketChannel struct {
	socketURL string
	sessions  session.Store
	role      models.Role
	logger    *zap.Logger

	writeMu   sync.Mutex
	conn      *websocket.Conn
	closed    bool
	onMessage func(models.Message)
	onError   func(error)
}

func NewWebsocketChannel(socketURL string, sessions session.Store, role models.Role, logger *zap.Logger) *WebsocketChannel {
	return &WebsocketChannel{
		socketURL: socketURL,
		sessions:  sessions,
		role:      role,
		logger:    logger,
	}
}

func (c *WebsocketChannel) OnMessage(fn func(models.Message)) { c.onMessage = fn }
func (c *WebsocketChannel) OnError(fn func(error))            { c.onError = fn }

// Connect dials the gateway and starts the read loop. It requires a
// token in the session store.
func (c *WebsocketChannel) Connect(ctx context.Context) error {
	sess, ok := c.sessions.Get()
	if !ok || sess.Token == "" {
		return session.ErrNoSession
	}

	u, err := url.Parse(c.socketURL)
	if err != nil {
		return fmt.Errorf("invalid socket url: %w", err)
	}
	if c.role == models.RoleVendor {
		q := u.Query()
		q.Set("role", models.RoleVendor.String())
		u.RawQuery = q.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+sess.Token)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		return fmt.Errorf("socket connect failed: %w", err)
	}

	c.writeMu.Lock()
	c.conn = conn
	c.closed = false
	c.writeMu.Unlock()

	go c.readLoop(conn)
	return nil
}

func (c *WebsocketChannel) readLoop(conn *websocket.Conn) {
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			c.writeMu.Lock()
			closed := c.closed
			c.writeMu.Unlock()
			if !closed && c.onError != nil {
				c.onError(err)
			}
			return
		}
		switch env.Event {
		case eventReceiveMessage:
			var msg models.Message
			if err := json.Unmarshal(env.Data, &msg); err != nil {
				c.logger.Warn("malformed inbound message", zap.Error(err))
				continue
			}
			if c.onMessage != nil {
				c.onMessage(msg)
			}
		default:
			c.logger.Debug("ignoring event", zap.String("event", env.Event))
		}
	}
}

// Emit writes one event frame. Writers are serialized; gorilla allows
// only one concurrent writer per connection.
func (c *WebsocketChannel) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.conn == nil || c.closed {
		return ErrNotConnected
	}
	return c.conn.WriteJSON(envelope{Event: event, Data: data})
}

func (c *WebsocketChannel) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.conn == nil || c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
