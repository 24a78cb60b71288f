package dashboard

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// hub fans rendered HTML out to every connected browser. The most recent
// payload is kept so a client connecting mid-session is not blank.
type hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	lastHTML string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// localhost only; the listener never binds a public interface
	CheckOrigin: func(r *http.Request) bool { return true },
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	if h.lastHTML != "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(h.lastHTML))
	}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// the page never sends application messages; reading just detects
	// disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *hub) broadcast(html string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastHTML = html
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			log.Debug().Err(err).Msg("Dropping unreachable dashboard client")
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}
