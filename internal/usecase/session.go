package usecase

import (
	"container/list"
	"context"
	"log/slog"
	"regexp"
	"sync"

	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultProfileID = "default"

	// DefaultMaxSessions bounds the registry when no option overrides it.
	DefaultMaxSessions = 10000
)

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func ValidateProfileID(id string) error {
	if !profileIDPattern.MatchString(id) {
		return errs.Mark(errs.Newf("profile id %q must match %s", id, profileIDPattern), errs.ErrInvalidProfileID)
	}
	return nil
}

// Session bundles the stores of one profile.
type Session struct {
	ProfileID string
	Cart      *CartStore
	Purchases *PurchaseStore
	Favorites *FavoritesStore
}

type SessionProvider interface {
	Open(ctx context.Context, profileID string) (*Session, error)
}

type RegistryOption func(*SessionRegistry)

// WithMaxSessions caps the number of sessions kept in memory. Values below 1
// are ignored.
func WithMaxSessions(n int) RegistryOption {
	return func(r *SessionRegistry) {
		if n > 0 {
			r.max = n
		}
	}
}

// SessionRegistry loads a profile's persisted collections on first use and
// serves the same Session afterwards. The least recently opened session is
// dropped once the cap is exceeded; its cart and purchases reload from
// storage on the next Open, its favorites do not survive.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*list.Element
	order    *list.List
	max      int
	loads    singleflight.Group
	storage  shared.StorageFactory
	logger   *slog.Logger
}

func NewSessionRegistry(storage shared.StorageFactory, logger *slog.Logger, opts ...RegistryOption) *SessionRegistry {
	r := &SessionRegistry{
		sessions: make(map[string]*list.Element),
		order:    list.New(),
		max:      DefaultMaxSessions,
		storage:  storage,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SessionRegistry) Open(ctx context.Context, profileID string) (*Session, error) {
	if err := ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	if s, ok := r.lookup(profileID); ok {
		return s, nil
	}

	// Loads run outside r.mu so a slow backend only delays its own profile.
	v, _, _ := r.loads.Do(profileID, func() (any, error) {
		if s, ok := r.lookup(profileID); ok {
			return s, nil
		}
		s := r.load(context.WithoutCancel(ctx), profileID)
		r.insert(s)
		return s, nil
	})
	return v.(*Session), nil
}

func (r *SessionRegistry) lookup(profileID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	el, ok := r.sessions[profileID]
	if !ok {
		return nil, false
	}
	r.order.MoveToFront(el)
	return el.Value.(*Session), true
}

func (r *SessionRegistry) load(ctx context.Context, profileID string) *Session {
	ps := r.storage.ForProfile(profileID)
	logger := r.logger.With(slog.String("profile_id", profileID))
	cartStore := NewCartStore(ctx, ps.Cart(), logger)
	s := &Session{
		ProfileID: profileID,
		Cart:      cartStore,
		Purchases: NewPurchaseStore(ctx, ps.Purchases(), cartStore, logger),
		Favorites: NewFavoritesStore(),
	}
	logger.Info("session opened",
		slog.Int("cart_items", cartStore.TotalItems()),
		slog.Int("purchased", len(s.Purchases.Items())),
	)
	return s
}

func (r *SessionRegistry) insert(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ProfileID] = r.order.PushFront(s)
	for r.order.Len() > r.max {
		oldest := r.order.Back()
		evicted := r.order.Remove(oldest).(*Session)
		delete(r.sessions, evicted.ProfileID)
		r.logger.Info("session evicted", slog.String("profile_id", evicted.ProfileID))
	}
}

// Len reports the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}
