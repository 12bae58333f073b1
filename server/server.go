package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/harukichisan/othello-web2/engine"
	"github.com/harukichisan/othello-web2/game"
	"github.com/harukichisan/othello-web2/meta"
	"github.com/harukichisan/othello-web2/searcher"
)

// Config holds the shell's runtime settings.
type Config struct {
	Addr string
}

// ConfigFromEnv reads the listen address from OTHELLO_ADDR, falling back to
// the default.
func ConfigFromEnv() Config {
	addr := os.Getenv("OTHELLO_ADDR")
	if addr == "" {
		addr = meta.DEFAULT_ADDR
	}
	return Config{Addr: addr}
}

// Server is a thin presentation shell over a single game session. It owns no
// game logic: every command is delegated to the session and the resulting
// status is pushed to websocket clients.
type Server struct {
	session *engine.Session
	hub     *Hub
	logger  zerolog.Logger
}

func New(session *engine.Session, logger zerolog.Logger) *Server {
	return &Server{
		session: session,
		hub:     NewHub(),
		logger:  logger,
	}
}

// Run drives the hub and polls the session for changes made outside HTTP
// handlers (the deferred CPU move), broadcasting on every generation bump.
func (s *Server) Run(done <-chan struct{}) {
	go s.hub.Run(done)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	last := uint64(0)
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			st := s.session.Snapshot()
			if st.Generation != last {
				last = st.Generation
				s.hub.Broadcast(statusToDTO(st))
			}
		}
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/new-game", s.handleNewGame)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/pass", s.handlePass)
	r.Post("/api/undo", s.handleUndo)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusToDTO(s.session.Snapshot()))
}

type newGameRequest struct {
	Mode       string `json:"mode"`       // "human" or "cpu"
	Difficulty string `json:"difficulty"` // "easy", "normal" or "hard"
	HumanSide  string `json:"human_side"` // "black" or "white"
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid new-game request: %w", err))
		return
	}
	config, err := configFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.session.StartNewGame(config)
	s.logger.Info().Msgf("new game: mode=%s difficulty=%s human=%s",
		req.Mode, req.Difficulty, req.HumanSide)
	s.respondWithStatus(w)
}

func configFromRequest(req newGameRequest) (engine.Config, error) {
	config := engine.Config{HumanSide: game.Black}

	switch req.Mode {
	case "", "human":
		config.Mode = engine.HumanVsHuman
	case "cpu":
		config.Mode = engine.HumanVsCPU
	default:
		return engine.Config{}, fmt.Errorf("unknown opponent mode %q", req.Mode)
	}

	if req.Difficulty != "" {
		difficulty, err := searcher.ParseDifficulty(req.Difficulty)
		if err != nil {
			return engine.Config{}, err
		}
		config.Difficulty = difficulty
	}

	switch req.HumanSide {
	case "", "black":
		config.HumanSide = game.Black
	case "white":
		config.HumanSide = game.White
	default:
		return engine.Config{}, fmt.Errorf("unknown side %q", req.HumanSide)
	}
	return config, nil
}

type moveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid move request: %w", err))
		return
	}
	if !s.session.PlaceAt(req.Row, req.Col) {
		writeError(w, http.StatusConflict, fmt.Errorf("illegal move at (%d,%d)", req.Row, req.Col))
		return
	}
	s.respondWithStatus(w)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	if !s.session.Pass() {
		writeError(w, http.StatusConflict, fmt.Errorf("pass is only valid without legal moves"))
		return
	}
	s.respondWithStatus(w)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if !s.session.Undo() {
		writeError(w, http.StatusConflict, fmt.Errorf("nothing to undo"))
		return
	}
	s.respondWithStatus(w)
}

func (s *Server) respondWithStatus(w http.ResponseWriter) {
	dto := statusToDTO(s.session.Snapshot())
	s.hub.Broadcast(dto)
	writeJSON(w, http.StatusOK, dto)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
