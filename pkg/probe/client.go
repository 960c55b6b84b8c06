package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mazeserver/devtools/pkg/logging"
)

// DefaultCloseGracePeriod is how long Run waits for the peer to answer a
// close frame after its context is cancelled.
const DefaultCloseGracePeriod = 2 * time.Second

// ErrAlreadyRun is returned when Run is called on a client that has already
// used its single connection attempt.
var ErrAlreadyRun = errors.New("probe: client has already run")

// Config configures a Client.
type Config struct {
	// URL is the WebSocket endpoint. Defaults to DefaultURL.
	URL string

	// Auth is sent as the first and only outbound frame. Defaults to
	// DefaultAuthMessage().
	Auth AuthMessage

	// Header carries extra handshake request headers.
	Header http.Header

	// SessionID tags log records for this run. A random one is generated
	// when empty.
	SessionID string

	// CloseGracePeriod defaults to DefaultCloseGracePeriod.
	CloseGracePeriod time.Duration

	// Logger defaults to logging.Nop().
	Logger *slog.Logger
}

// Client is a single-use WebSocket probe.
type Client struct {
	cfg     Config
	handler Handler
	dialer  *websocket.Dialer
	log     *slog.Logger

	state   atomic.Int32
	started atomic.Bool
}

// NewClient creates a client that reports to h.
func NewClient(cfg Config, h Handler) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Auth == (AuthMessage{}) {
		cfg.Auth = DefaultAuthMessage()
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	if cfg.CloseGracePeriod <= 0 {
		cfg.CloseGracePeriod = DefaultCloseGracePeriod
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	if h == nil {
		h = HandlerFuncs{}
	}

	return &Client{
		cfg:     cfg,
		handler: h,
		// No HandshakeTimeout: the handshake waits as long as the server does.
		dialer: &websocket.Dialer{Proxy: http.ProxyFromEnvironment},
		log:    cfg.Logger.With("session", cfg.SessionID, "url", cfg.URL),
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	return State(c.state.Load())
}

// SessionID returns the identifier attached to this client's log records.
func (c *Client) SessionID() string {
	return c.cfg.SessionID
}

func (c *Client) setState(next State) {
	prev := c.State()
	if !prev.canTransition(next) {
		c.log.Warn("ignoring invalid state transition", "from", prev, "to", next)
		return
	}
	c.state.Store(int32(next))
	c.log.Debug("state changed", "from", prev, "to", next)
}

// Run connects, authenticates and dispatches events until the connection
// ends or ctx is cancelled. It returns nil when the connection ended with a
// close frame or was cancelled, and the transport error otherwise. Either
// way the handler has already seen OnClose.
func (c *Client) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	c.log.Debug("dialing")
	conn, resp, err := c.dialer.DialContext(ctx, c.cfg.URL, c.cfg.Header)
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("connection failed: %w (HTTP %d)", err, resp.StatusCode)
		} else {
			err = fmt.Errorf("connection failed: %w", err)
		}
		c.handler.OnError(err)
		c.finish(websocket.CloseAbnormalClosure, "")
		return err
	}
	defer conn.Close()

	c.log.Debug("handshake complete",
		"status", resp.StatusCode,
		"subprotocol", conn.Subprotocol(),
		"headers", resp.Header,
	)
	c.setState(StateOpen)
	c.handler.OnOpen()

	if err := c.sendAuth(conn); err != nil {
		c.handler.OnError(err)
		c.finish(websocket.CloseAbnormalClosure, "")
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go c.closeOnCancel(ctx, conn, done)

	return c.readLoop(ctx, conn)
}

func (c *Client) sendAuth(conn *websocket.Conn) error {
	payload, err := c.cfg.Auth.Encode()
	if err != nil {
		return fmt.Errorf("encoding auth message: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("sending auth message: %w", err)
	}
	c.log.Debug("frame sent", "type", "text", "bytes", len(payload))
	if obs, ok := c.handler.(SendObserver); ok {
		obs.OnSent(string(payload))
	}
	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			// gorilla reports a dropped connection as a 1006 CloseError; only
			// a real close frame ends the run cleanly.
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code != websocket.CloseAbnormalClosure {
				c.log.Debug("close frame received", "code", closeErr.Code, "reason", closeErr.Text)
				c.finish(closeErr.Code, closeErr.Text)
				return nil
			}
			if ctx.Err() != nil {
				// We initiated a normal close and the peer dropped the
				// connection instead of answering it.
				c.finish(websocket.CloseNormalClosure, "")
				return nil
			}
			c.handler.OnError(err)
			c.finish(websocket.CloseAbnormalClosure, "")
			return err
		}
		c.log.Debug("frame received", "type", messageTypeString(msgType), "bytes", len(data))
		c.handler.OnMessage(string(data))
	}
}

// closeOnCancel sends a close frame once ctx is cancelled and forces the
// connection shut if the peer does not answer within the grace period.
func (c *Client) closeOnCancel(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	select {
	case <-done:
		return
	case <-ctx.Done():
	}

	c.log.Debug("interrupted, closing")
	deadline := time.Now().Add(c.cfg.CloseGracePeriod)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		c.log.Debug("close frame not sent", "error", err)
	}

	timer := time.NewTimer(c.cfg.CloseGracePeriod)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		_ = conn.Close()
	}
}

func (c *Client) finish(code int, reason string) {
	c.setState(StateClosed)
	c.handler.OnClose(code, reason)
}

// messageTypeString returns a human-readable message type.
func messageTypeString(t int) string {
	switch t {
	case websocket.TextMessage:
		return "text"
	case websocket.BinaryMessage:
		return "binary"
	default:
		return "unknown"
	}
}
