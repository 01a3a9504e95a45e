package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
	"github.com/dmitrijs2005/churchhub/internal/logging"
)

// Identity is the slice of an identity provider the session needs.
type Identity interface {
	// Authenticate returns a signed ID token for the credentials.
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	// Verify turns an ID token into the user it describes.
	Verify(token string) (*models.User, error)
}

type Session struct {
	store    Store
	identity Identity
	log      logging.Logger

	// mutMu serializes mutations including their write-through.
	mutMu sync.Mutex

	mu      sync.RWMutex
	user    *models.User
	loading bool
	mutated bool

	bootOnce sync.Once
	ready    chan struct{}
}

func New(store Store, identity Identity, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop{}
	}
	return &Session{
		store:    store,
		identity: identity,
		log:      log.With("component", "session"),
		loading:  true,
		ready:    make(chan struct{}),
	}
}

// Bootstrap loads the persisted user. Only the first call does anything;
// later calls return immediately.
func (s *Session) Bootstrap(ctx context.Context) {
	s.bootOnce.Do(func() {
		u, err := s.store.Load(ctx)
		if err != nil {
			s.log.Error(ctx, "failed to load stored user", "error", err)
			u = nil
		}

		s.mu.Lock()
		if s.mutated {
			s.log.Debug(ctx, "stored user discarded, session changed during load")
		} else {
			s.user = u
		}
		s.loading = false
		s.mu.Unlock()

		if u != nil {
			s.log.Info(ctx, "session restored", "user_id", u.ID, "role", u.Role.String())
		}
		close(s.ready)
	})
}

// Ready is closed once Bootstrap has finished.
func (s *Session) Ready() <-chan struct{} { return s.ready }

// WaitReady blocks until Bootstrap has finished or ctx is done.
func (s *Session) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// User returns a copy of the current user.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SignIn authenticates against the identity provider and replaces the
// current user. On error the session is unchanged.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	token, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	u, err := s.identity.Verify(token)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	s.setUser(u)
	s.log.Info(ctx, "signed in", "user_id", u.ID, "role", u.Role.String())
	s.save(ctx, *u)
	return nil
}

// SignUp registers a new member account and signs it in.
func (s *Session) SignUp(ctx context.Context, name, email, password string) error {
	if err := s.identity.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return s.SignIn(ctx, email, password)
}

func (s *Session) SignOut(ctx context.Context) {
	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	s.setUser(nil)
	s.log.Info(ctx, "signed out")
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored user", "error", err)
	}
}

// UpdateProfile merges patch into the current user. Without a user it does
// nothing, not even touch the store.
func (s *Session) UpdateProfile(ctx context.Context, patch models.ProfilePatch) {
	s.mutMu.Lock()
	defer s.mutMu.Unlock()

	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	merged := patch.Apply(*s.user)
	s.user = &merged
	s.mutated = true
	s.mu.Unlock()

	s.log.Info(ctx, "profile updated", "user_id", merged.ID)
	s.save(ctx, merged)
}

// HasMinistryAccess reports whether the current user belongs to m.
func (s *Session) HasMinistryAccess(m models.Ministry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Ministries.Has(m)
}

// HasRoleAccess reports whether the current user's role ranks at least r.
func (s *Session) HasRoleAccess(r models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role.AtLeast(r)
}

func (s *Session) HasPermission(p models.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return p.GrantedTo(s.user)
}

// RequireUser returns the current user or common.ErrUnauthorized.
func (s *Session) RequireUser() (models.User, error) {
	u, ok := s.User()
	if !ok {
		return models.User{}, common.ErrUnauthorized
	}
	return u, nil
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u != nil {
		cp := *u
		u = &cp
	}
	s.user = u
	s.mutated = true
}

func (s *Session) save(ctx context.Context, u models.User) {
	if err := s.store.Save(ctx, u); err != nil {
		s.log.Error(ctx, "failed to save user", "user_id", u.ID, "error", err)
	}
}
