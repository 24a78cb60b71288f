package dashboard

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/lenslabs/errorlens/internal/prompt"
	"github.com/rs/zerolog/log"
)

//go:embed page.html
var pageHTML []byte

// Server is the display surface: a localhost page mirroring the latest
// rendered analysis, plus the user's selected analysis mode. The mode is
// mutated only by the /api/mode handler and read once per dispatch.
type Server struct {
	hub *hub

	mu   sync.RWMutex
	mode prompt.Mode

	httpServer *http.Server
}

func NewServer(addr string) *Server {
	s := &Server{
		hub:  newHub(),
		mode: prompt.ModeGeneral,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ws", s.hub.handleWS)
	mux.HandleFunc("GET /api/mode", s.handleGetMode)
	mux.HandleFunc("POST /api/mode", s.handleSetMode)

	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start blocks until the server stops. Returns http.ErrServerClosed after
// a graceful Shutdown.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("Dashboard listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Show pushes rendered HTML to every connected browser.
func (s *Server) Show(html string) {
	s.hub.broadcast(html)
}

func (s *Server) Mode() prompt.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Server) SetMode(m prompt.Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	log.Info().Str("mode", string(m)).Msg("Analysis mode changed")
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(pageHTML)
}

func (s *Server) handleGetMode(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"mode": string(s.Mode())})
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	mode, ok := prompt.ParseMode(body.Mode)
	if !ok {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}
	s.SetMode(mode)
	w.WriteHeader(http.StatusNoContent)
}
