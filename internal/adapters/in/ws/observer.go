// Package ws adapts WebSocket connections into notification hub observers.
// Each accepted connection registers one observer; when the peer goes away
// the observer unregisters itself so the hub's active set stays bounded.
package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"kitchen/internal/core/application/notifications"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// writeTimeout bounds a single push so one stalled peer cannot hold the
// broadcast for everyone else.
const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Kitchen clients are served from the same household network; the
	// service carries no credentials worth forging a cross-origin request for.
	CheckOrigin: func(*http.Request) bool { return true },
}

// connObserver wraps a WebSocket connection as a hub observer.
type connObserver struct {
	id   uuid.UUID
	conn *websocket.Conn

	// writeMu serializes writes; gorilla connections allow only one
	// concurrent writer.
	writeMu sync.Mutex
}

func newConnObserver(conn *websocket.Conn) *connObserver {
	return &connObserver{id: uuid.New(), conn: conn}
}

// ID returns the observer's identity within the hub.
func (o *connObserver) ID() uuid.UUID {
	return o.id
}

// Send pushes one marshaled message to the peer. A write error means the
// transport is unusable; the hub reacts by unregistering this observer.
func (o *connObserver) Send(message []byte) error {
	o.writeMu.Lock()
	defer o.writeMu.Unlock()

	if err := o.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return o.conn.WriteMessage(websocket.TextMessage, message)
}

// Handler upgrades HTTP requests to WebSocket connections and ties their
// lifetime to hub registration.
type Handler struct {
	hub    *notifications.Hub
	logger *slog.Logger
}

// NewHandler creates a WebSocket handler pushing through the given hub.
func NewHandler(hub *notifications.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With("component", "ws"),
	}
}

// Serve handles GET /ws. The connection stays registered until the peer
// closes it or a read fails; clients never send application data, so the
// read loop exists only to detect disconnection.
func (h *Handler) Serve(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	observer := newConnObserver(conn)
	h.hub.Register(observer)
	h.logger.Info("observer connected", "observer_id", observer.id)

	go h.readUntilClosed(observer)

	return nil
}

func (h *Handler) readUntilClosed(observer *connObserver) {
	defer func() {
		h.hub.Unregister(observer)
		_ = observer.conn.Close()
		h.logger.Info("observer disconnected", "observer_id", observer.id)
	}()

	for {
		if _, _, err := observer.conn.ReadMessage(); err != nil {
			return
		}
	}
}
