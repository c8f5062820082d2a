// Package feed owns the candidate list and favorite set for one
// screen session. It is the only component that mutates them; every
// refresh rebuilds the list from upstream (or demo) data.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/yourorg/sumika-api/internal/demo"
	"github.com/yourorg/sumika-api/internal/filter"
	"github.com/yourorg/sumika-api/reinfolib"
)

// Searcher is the fetch side of the pipeline.
type Searcher interface {
	Search(ctx context.Context, req reinfolib.SearchRequest) ([]reinfolib.Property, error)
}

// FavoriteStore is the external persistence collaborator for likes.
// Implementations must be idempotent; errors are logged and swallowed
// because local session state is the source of truth.
type FavoriteStore interface {
	Add(ctx context.Context, userID, propertyID string) error
	Remove(ctx context.Context, userID, propertyID string) error
	ListIDs(ctx context.Context, userID string) ([]string, error)
}

// Mode selects the data source explicitly. There is no ambient
// test-mode flag; callers pass the mode at construction.
type Mode int

const (
	ModeLive Mode = iota
	ModeDemo
)

// State is the screen lifecycle: loading during a refresh, then ready
// or error. Favorite toggles never leave ready.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// ErrSuperseded is returned to a refresh whose response arrived after
// a newer refresh had already been issued. Its results are discarded.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

type Session struct {
	searcher Searcher
	favs     FavoriteStore
	log      *slog.Logger
	mode     Mode
	userID   string

	mu          sync.Mutex
	seq         uint64 // latest issued refresh
	state       State
	errMsg      string
	candidates  []reinfolib.Property
	cursor      int
	favoriteIDs map[string]struct{}
	lastOutcome filter.Outcome
}

type Config struct {
	Searcher  Searcher
	Favorites FavoriteStore
	Logger    *slog.Logger
	Mode      Mode
	UserID    string
}

func NewSession(cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		searcher:    cfg.Searcher,
		favs:        cfg.Favorites,
		log:         log,
		mode:        cfg.Mode,
		userID:      cfg.UserID,
		state:       StateLoading,
		favoriteIDs: make(map[string]struct{}),
	}
}

// Refresh reruns fetch, normalize and filter, replaces the candidate
// list and resets the swipe cursor. Each call takes a monotonically
// increasing sequence number; if a newer refresh was issued while this
// one was in flight, its response is discarded (last request wins, not
// last response).
func (s *Session) Refresh(ctx context.Context, req reinfolib.SearchRequest) (filter.Outcome, error) {
	s.mu.Lock()
	s.seq++
	mySeq := s.seq
	s.state = StateLoading
	s.mu.Unlock()

	outcome, err := s.fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if mySeq != s.seq {
		s.log.Debug("discarding stale refresh", "seq", mySeq, "latest", s.seq)
		return filter.Outcome{}, ErrSuperseded
	}

	if err != nil {
		s.state = StateError
		s.errMsg = "物件情報の取得に失敗しました"
		s.candidates = nil
		s.cursor = 0
		s.log.Error("feed refresh failed", "err", err)
		return filter.Outcome{}, err
	}

	s.state = StateReady
	s.errMsg = ""
	s.candidates = outcome.Properties
	s.cursor = 0
	s.lastOutcome = outcome
	if outcome.Kind == filter.KindFallback {
		s.log.Info("feed refreshed with fallback data", "station", req.PrimaryStation(), "reason", outcome.Reason)
	} else {
		s.log.Info("feed refreshed", "count", len(outcome.Properties))
	}
	return outcome, nil
}

// fetch runs outside the session lock; only the commit above is
// serialized.
func (s *Session) fetch(ctx context.Context, req reinfolib.SearchRequest) (filter.Outcome, error) {
	if s.mode == ModeDemo {
		return filter.Outcome{
			Kind:       filter.KindFallback,
			Properties: demo.Properties(req.PrimaryStation()),
			Reason:     "session is in demo mode",
		}, nil
	}
	props, err := s.searcher.Search(ctx, req)
	if err != nil {
		return filter.Outcome{}, err
	}
	return filter.Apply(props, req), nil
}

// LoadFavorites seeds the local favorite set from the store. Store
// errors leave the local set untouched.
func (s *Session) LoadFavorites(ctx context.Context) {
	if s.favs == nil {
		return
	}
	ids, err := s.favs.ListIDs(ctx, s.userID)
	if err != nil {
		s.log.Error("loading favorites failed", "err", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoriteIDs = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.favoriteIDs[id] = struct{}{}
	}
}

// ToggleFavorite flips the favorite state for id. Idempotent per
// direction: adding an already-favorited id or removing an absent one
// is a no-op on the persistence side. The local update always sticks,
// even when the store call fails (optimistic update).
func (s *Session) ToggleFavorite(ctx context.Context, id string) {
	s.mu.Lock()
	_, had := s.favoriteIDs[id]
	if had {
		delete(s.favoriteIDs, id)
	} else {
		s.favoriteIDs[id] = struct{}{}
	}
	s.mu.Unlock()

	if s.favs == nil {
		return
	}
	var err error
	if had {
		err = s.favs.Remove(ctx, s.userID, id)
	} else {
		err = s.favs.Add(ctx, s.userID, id)
	}
	if err != nil {
		// Local state is authoritative for the session.
		s.log.Error("favorite persistence failed", "property_id", id, "err", err)
	}
}

// IsFavorite reflects local state synchronously.
func (s *Session) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favoriteIDs[id]
	return ok
}

// FavoriteIDs returns the liked subset in no particular order.
func (s *Session) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.favoriteIDs))
	for id := range s.favoriteIDs {
		out = append(out, id)
	}
	return out
}

// Current returns the candidate under the cursor.
func (s *Session) Current() (reinfolib.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.candidates) {
		return reinfolib.Property{}, false
	}
	return s.candidates[s.cursor], true
}

// Like favorites the current candidate (if not already liked) and
// advances the cursor. Mirrors a right swipe.
func (s *Session) Like(ctx context.Context) {
	cur, ok := s.Current()
	if !ok {
		return
	}
	if !s.IsFavorite(cur.ID) {
		s.ToggleFavorite(ctx, cur.ID)
	}
	s.advance()
}

// Skip advances past the current candidate. Mirrors a left swipe.
func (s *Session) Skip() {
	if _, ok := s.Current(); !ok {
		return
	}
	s.advance()
}

func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.candidates) {
		s.cursor++
	}
}

// Candidates returns the current list; the slice is a copy.
func (s *Session) Candidates() []reinfolib.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]reinfolib.Property(nil), s.candidates...)
}

// State reports the session lifecycle state and any user-facing error.
func (s *Session) State() (State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.errMsg
}

// LastOutcome reports whether the current candidates are live or
// synthesized.
func (s *Session) LastOutcome() filter.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome
}
