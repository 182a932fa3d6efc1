package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matryer/way"
	"github.com/rs/zerolog/log"

	"quoridor/agent"
	"quoridor/communication"
	"quoridor/game"
	"quoridor/meta"
)

type Option func(s *Server)

// Server hosts matches between remote players and a local agent. Players
// always take the first seat; the agent answers every accepted move.
type Server struct {
	router   *way.Router
	opponent agent.Agent
	name     string
	walls    int
	secrets  map[string]string // IDUL -> secret, empty accepts anyone
	lastID   atomic.Int64

	mutex   sync.RWMutex
	matches map[string]*match
}

type match struct {
	mutex sync.Mutex
	owner string
	state *game.GameState
}

func WithSecrets(secrets map[string]string) Option {
	return func(s *Server) {
		s.secrets = secrets
	}
}

func WithOpponentName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
	}
}

func WithWalls(walls int) Option {
	return func(s *Server) {
		if walls >= 0 && walls <= meta.WALLS {
			s.walls = walls
		}
	}
}

func NewServer(opponent agent.Agent, options ...Option) *Server {
	s := &Server{
		opponent: opponent,
		name:     "robot",
		walls:    meta.WALLS,
		matches:  make(map[string]*match),
	}
	for _, option := range options {
		option(s)
	}

	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodPost, "/parties", s.handleCreate)
	s.router.HandleFunc(http.MethodGet, "/parties/:id", s.handleFetch)
	s.router.HandleFunc(http.MethodPut, "/parties/:id", s.handleSubmit)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Warn().Err(err).Msg("match server shutdown")
		}
	}()

	log.Info().Msgf("match server listening on %s", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	idul, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	if idul == s.name {
		writeError(w, http.StatusNotAcceptable, "name is taken by the server")
		return
	}

	state, err := game.New([2]string{idul, s.name}, s.walls)
	if err != nil {
		writeError(w, http.StatusNotAcceptable, err.Error())
		return
	}
	id := strconv.FormatInt(s.lastID.Add(1), 10)

	s.mutex.Lock()
	s.matches[id] = &match{owner: idul, state: state}
	s.mutex.Unlock()

	log.Info().Msgf("match %s created for %s", id, idul)
	writeJSON(w, http.StatusOK, communication.MatchResponse{ID: id, State: state.Snapshot()})
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	idul, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	id := way.Param(r.Context(), "id")
	m, ok := s.find(id, idul)
	if !ok {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	m.mutex.Lock()
	snapshot := m.state.Snapshot()
	m.mutex.Unlock()
	writeJSON(w, http.StatusOK, communication.MatchResponse{ID: id, State: snapshot})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	idul, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	id := way.Param(r.Context(), "id")
	m, ok := s.find(id, idul)
	if !ok {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	var move game.GameMove
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		writeError(w, http.StatusNotAcceptable, "invalid move: "+err.Error())
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Both moves are played on a copy, committed only once the reply is in.
	next := m.state.Copy()
	if _, err := next.ApplyMove(idul, move); err != nil {
		log.Debug().Err(err).Msgf("match %s: rejected %s", id, move)
		writeError(w, http.StatusNotAcceptable, err.Error())
		return
	}
	if winner := next.Winner(); winner != "" {
		m.state = next
		s.finish(w, id, winner)
		return
	}

	reply, _, err := s.opponent.FindMove(r.Context(), next.Copy(), s.name)
	if err == nil {
		_, err = next.ApplyMove(s.name, reply)
	}
	if err != nil {
		log.Error().Err(err).Msgf("match %s: no reply", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	m.state = next
	if winner := m.state.Winner(); winner != "" {
		s.finish(w, id, winner)
		return
	}
	writeJSON(w, http.StatusOK, communication.NewMoveResponse(communication.Outcome{Move: &reply}))
}

func (s *Server) finish(w http.ResponseWriter, id, winner string) {
	log.Info().Msgf("match %s won by %s", id, winner)
	writeJSON(w, http.StatusOK, communication.NewMoveResponse(communication.Outcome{Winner: winner}))
}

// authenticate checks HTTP basic auth and returns the player's IDUL. It
// writes the 401 response itself.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	idul, secret, ok := r.BasicAuth()
	if !ok || idul == "" {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return "", false
	}
	if len(s.secrets) > 0 && s.secrets[idul] != secret {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return "", false
	}
	return idul, true
}

// find returns the match only to its owner.
func (s *Server) find(id, idul string) (*match, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	m, ok := s.matches[id]
	if !ok || m.owner != idul {
		return nil, false
	}
	return m, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, communication.ErrorResponse{Message: message})
}
