// internal/httpserver/server.go
//
// HTTP front end for the game: a JSON raw-input provider.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/state.
//
// Notes:
//   - Exactly one session is live at a time; /game/new replaces it.
//     Guesses are serialized on a mutex so the session sees one at a time.
//   - Guesses carrying a stale gameId are rejected with 404.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Options configures a Server.
type Options struct {
	ClientOrigin string // CORS origin allowed to send credentials
	DailySalt    string // salt for the daily word index
	RevealOnQuit bool   // include the answer in quit responses
}

// Server bundles the router, word lists and the live session store.
type Server struct {
	r     *chi.Mux
	lists *words.Lists
	store store.Store
	opts  Options
	now   func() time.Time

	turn sync.Mutex // serializes guesses
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, st store.Store, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), lists: lists, store: st, opts: opts, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/state"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/state", s.handleState)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
	Daily  bool   `json:"daily"`  // use today's deterministic answer
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"`
}

// handleNewGame replaces the live session with a fresh one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body means "random answer".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res := newGameRes{}
	answer := strings.ToLower(strings.TrimSpace(req.Answer))
	if answer == "" {
		var err error
		if req.Daily {
			now := s.now()
			res.Date = daily.DateKey(now)
			answer, err = daily.Answer(now, s.opts.DailySalt, s.lists)
		} else {
			var idx int
			if idx, err = words.RandomIndex(s.lists.Len()); err == nil {
				answer, err = s.lists.Answer(idx)
			}
		}
		if err != nil {
			log.Error().Err(err).Bool("daily", req.Daily).Msg("pick answer")
			writeError(w, http.StatusInternalServerError, "pick_failed")
			return
		}
	}

	if !s.lists.IsAnswer(answer) {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	g, err := game.New(answer, game.DefaultMaxAttempts, s.lists)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}

	prev, err := s.store.Save(r.Context(), g)
	if err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if prev != nil && !prev.Outcome().Terminal() {
		log.Info().Str("gameId", prev.ID()).Msg("abandoning unfinished game")
	}

	log.Info().Str("gameId", g.ID()).Bool("daily", req.Daily).Msg("new game")
	res.GameID = g.ID()
	res.MaxAttempts = g.MaxAttempts()
	writeJSON(w, http.StatusOK, res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks   []game.Mark  `json:"marks"`
	State   game.Outcome `json:"state"` // "playing" | "won" | "lost" | "quit"
	Attempt int          `json:"attempt"`
	Answer  string       `json:"answer,omitempty"`
}

// handleGuess submits a raw guess to the live session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.turn.Lock()
	defer s.turn.Unlock()

	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	res, err := g.Submit(req.Guess)
	switch {
	case errors.Is(err, game.ErrWrongLength):
		writeError(w, http.StatusBadRequest, "wrong_length")
		return
	case errors.Is(err, game.ErrNotInDictionary):
		writeError(w, http.StatusBadRequest, "not_in_dictionary")
		return
	case errors.Is(err, game.ErrSessionClosed):
		writeError(w, http.StatusConflict, "session_closed")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", g.ID()).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	out := guessRes{State: res.Outcome, Attempt: res.Attempt, Marks: []game.Mark{}}
	if res.Outcome != game.Quit {
		out.Marks = res.Feedback[:]
	}
	if res.Outcome == game.Lost || (res.Outcome == game.Quit && s.opts.RevealOnQuit) {
		out.Answer = res.Answer
	}
	if res.Outcome.Terminal() {
		log.Info().Str("gameId", g.ID()).Str("outcome", res.Outcome.String()).Int("attempts", res.Attempt).Msg("game over")
	}
	writeJSON(w, http.StatusOK, out)
}

type stateRes struct {
	GameID      string       `json:"gameId"`
	State       game.Outcome `json:"state"`
	Attempts    int          `json:"attempts"`
	MaxAttempts int          `json:"maxAttempts"`
	History     []game.Turn  `json:"history"`
}

// handleState reports the live session without its answer.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.turn.Lock()
	defer s.turn.Unlock()

	var g *game.Session
	var err error
	if id := r.URL.Query().Get("gameId"); id != "" {
		g, err = s.store.Get(r.Context(), id)
	} else {
		g, err = s.store.Current(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, stateRes{
		GameID:      g.ID(),
		State:       g.Outcome(),
		Attempts:    g.AttemptsUsed(),
		MaxAttempts: g.MaxAttempts(),
		History:     g.History(),
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
