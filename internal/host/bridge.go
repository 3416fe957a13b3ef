package host

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/quill-os/quillboot/internal/logging"
)

const (
	// DefaultSocketPath is where the boot orchestrator reaches the UI.
	DefaultSocketPath = "/run/quillboot.sock"

	// UpdatesPath is the websocket endpoint for property pushes.
	UpdatesPath = "/updates"

	// Time allowed to read the next message from the peer before the
	// connection is considered dead.
	readWait = 120 * time.Second

	// Maximum update size. Log appends are chunked by the orchestrator, so
	// anything larger indicates a misbehaving peer.
	maxUpdateSize = 1 << 20
)

// Bridge accepts property pushes from the boot orchestrator over a
// websocket served on a Unix socket and forwards each decoded update to a
// sink, normally the Bubble Tea program's Send method. The UI never reads
// host state directly; everything crosses this boundary as a message.
type Bridge struct {
	SocketPath string

	sink     func(msg interface{})
	server   *http.Server
	upgrader websocket.Upgrader
}

// NewBridge creates a bridge that forwards updates to sink.
func NewBridge(socketPath string, sink func(msg interface{})) *Bridge {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &Bridge{
		SocketPath: socketPath,
		sink:       sink,
		upgrader: websocket.Upgrader{
			// Local Unix socket, no origin to check
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start binds the Unix socket and serves connections in a background
// goroutine. A stale socket file from a previous boot is removed first.
func (b *Bridge) Start() error {
	if err := os.Remove(b.SocketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale socket %s: %w", b.SocketPath, err)
	}

	listener, err := net.Listen("unix", b.SocketPath)
	if err != nil {
		return fmt.Errorf("failed to bind unix socket %s: %w", b.SocketPath, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(UpdatesPath, b.handleUpdates)

	b.server = &http.Server{Handler: mux}

	logging.Info("Host bridge listening",
		zap.String("socket", b.SocketPath),
	)

	go func() {
		if err := b.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("Host bridge server stopped",
				zap.Error(err),
			)
		}
	}()

	return nil
}

// Close shuts the bridge down and removes the socket file.
func (b *Bridge) Close() error {
	if b.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := b.server.Shutdown(ctx)
	_ = os.Remove(b.SocketPath)
	return err
}

// handleUpdates upgrades the connection and pumps decoded updates into the
// sink until the peer disconnects.
func (b *Bridge) handleUpdates(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("Failed to upgrade bridge connection",
			zap.Error(err),
		)
		return
	}

	logging.Info("Boot orchestrator connected")

	defer func() {
		_ = conn.Close()
		logging.Info("Boot orchestrator disconnected")
	}()

	conn.SetReadLimit(maxUpdateSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readWait)); err != nil {
			logging.Warn("Failed to set read deadline", zap.Error(err))
			return
		}

		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("Bridge connection closed unexpectedly", zap.Error(err))
			}
			return
		}

		if msgType != websocket.TextMessage {
			logging.Warn("Ignoring non-text bridge message",
				zap.Int("message_type", msgType),
				zap.Int("length", len(data)),
			)
			continue
		}

		msg, err := DecodeUpdate(data)
		if err != nil {
			// A malformed push is a host bug; drop it rather than killing
			// the connection everything else arrives on.
			logging.Error("Failed to decode bridge update",
				zap.Error(err),
				zap.ByteString("data", data),
			)
			continue
		}

		logging.LogPropertyUpdate(fmt.Sprintf("%T", msg))

		if b.sink != nil {
			b.sink(msg)
		}
	}
}

// Push connects to a bridge socket and sends a single update. Used by the
// socket test tool and host-side helpers.
func Push(socketPath string, msg interface{}) error {
	conn, err := Dial(socketPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.Send(msg)
}

// Conn is a client connection to the bridge.
type Conn struct {
	ws *websocket.Conn
}

// Dial connects to the bridge socket at the given path.
func Dial(socketPath string) (*Conn, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	dialer := websocket.Dialer{
		NetDial: func(network, addr string) (net.Conn, error) {
			return net.Dial("unix", socketPath)
		},
		HandshakeTimeout: 5 * time.Second,
	}

	// Host part of the URL is ignored; the NetDial override routes to the
	// Unix socket.
	ws, _, err := dialer.Dial("ws://quillboot"+UpdatesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bridge at %s: %w", socketPath, err)
	}

	return &Conn{ws: ws}, nil
}

// Send encodes and transmits a single update.
func (c *Conn) Send(msg interface{}) error {
	data, err := EncodeUpdate(msg)
	if err != nil {
		return err
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to send update: %w", err)
	}
	return nil
}

// Close closes the client connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}
