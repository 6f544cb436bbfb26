package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/towersim/towersim/pkg/log"
	"github.com/towersim/towersim/pkg/types"

	"github.com/gorilla/websocket"
)

// StreamFrame is one WebSocket message: the fresh snapshot plus the full
// chart window so clients never have to stitch state together.
type StreamFrame struct {
	Snapshot types.Snapshot        `json:"snapshot"`
	History  []types.HistorySample `json:"history"`
}

const streamWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from a different origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamHub tracks connected stream clients and fans tick frames out to
// them. A client that can't keep up is dropped rather than blocking the tick
// goroutine.
type streamHub struct {
	mu      sync.Mutex
	clients map[chan StreamFrame]struct{}
	last    *StreamFrame
	closed  bool
}

func newStreamHub() *streamHub {
	return &streamHub{clients: make(map[chan StreamFrame]struct{})}
}

// broadcast implements controller.Listener.
func (h *streamHub) broadcast(snap types.Snapshot, history []types.HistorySample) {
	frame := StreamFrame{Snapshot: snap, History: history}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &frame
	for ch := range h.clients {
		select {
		case ch <- frame:
		default:
			// slow client, drop it
			delete(h.clients, ch)
			close(ch)
		}
	}
}

// register adds a client and returns its frame channel along with the most
// recent frame (if any) so new connections paint immediately.
func (h *streamHub) register() (chan StreamFrame, *StreamFrame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, nil, false
	}
	ch := make(chan StreamFrame, 4)
	h.clients[ch] = struct{}{}
	return ch, h.last, true
}

func (h *streamHub) unregister(ch chan StreamFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

func (h *streamHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		log.Ctx(ctx).WarnContext(ctx, "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ch, last, ok := s.streams.register()
	if !ok {
		return
	}
	defer s.streams.unregister(ch)

	log.Ctx(ctx).DebugContext(ctx, "stream client connected", slog.String("remote", conn.RemoteAddr().String()))

	// Consume control frames and detect the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if last != nil {
		if err := writeFrame(conn, *last); err != nil {
			return
		}
	}

	for {
		select {
		case frame, ok := <-ch:
			if !ok {
				// dropped or hub closed
				return
			}
			if err := writeFrame(conn, frame); err != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, frame StreamFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}
