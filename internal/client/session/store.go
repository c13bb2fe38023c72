// Package session keeps the authentication token and cached user record of
// the single active DataV session.
//
// Data lives in one of two persistence scopes: the session scope, which is
// discarded when the process ends, and the remembered scope, which survives
// until explicitly cleared. When both hold a token the session-scoped one is
// current.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vltrn/datav/internal/common"
)

// ErrNoSession is returned by readers that need a current token when there is none.
var ErrNoSession = errors.New("no active session")

// Scope is a string key-value store. Get reports found=false for absent keys;
// Delete of absent keys succeeds.
type Scope interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}

// Persistence selects the scope a value is written to.
type Persistence int

const (
	ScopeSession Persistence = iota
	ScopeRemembered
)

func (p Persistence) String() string {
	if p == ScopeRemembered {
		return "remembered"
	}
	return "session"
}

// PersistenceFor maps a "remember me" choice to a scope.
func PersistenceFor(remember bool) Persistence {
	if remember {
		return ScopeRemembered
	}
	return ScopeSession
}

// Claims is the subset of JWT claims shown to the user.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that is before now.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Store is the session store. It keeps no state of its own: every read goes
// to the scopes, so several Store values over the same scopes agree.
type Store struct {
	session    Scope
	remembered Scope
}

func NewStore(sessionScope, rememberedScope Scope) *Store {
	return &Store{session: sessionScope, remembered: rememberedScope}
}

func (s *Store) scope(p Persistence) Scope {
	if p == ScopeRemembered {
		return s.remembered
	}
	return s.session
}

// SetToken writes token to the remembered scope if remember is true and to
// the session scope otherwise. The other scope is left untouched.
func (s *Store) SetToken(ctx context.Context, token string, remember bool) error {
	p := PersistenceFor(remember)
	if err := s.scope(p).Set(ctx, common.TokenKey, token); err != nil {
		return fmt.Errorf("store %s token: %w", p, err)
	}
	return nil
}

// ClearToken removes token, cached user and the authenticated flag from both
// scopes. The remembered email survives, it only pre-fills the login prompt.
func (s *Store) ClearToken(ctx context.Context) error {
	keys := []string{common.TokenKey, common.UserKey, common.AuthenticatedKey}

	errSession := s.session.Delete(ctx, keys...)
	errRemembered := s.remembered.Delete(ctx, keys...)
	if err := errors.Join(errSession, errRemembered); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Reset wipes every key in both scopes, the remembered email included.
func (s *Store) Reset(ctx context.Context) error {
	errSession := s.session.Clear(ctx)
	errRemembered := s.remembered.Clear(ctx)
	if err := errors.Join(errSession, errRemembered); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// CurrentToken returns the session-scoped token if present, else the
// remembered one, else "".
func (s *Store) CurrentToken(ctx context.Context) (string, error) {
	return s.firstOf(ctx, common.TokenKey)
}

// IsAuthenticated reports whether a current token exists.
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.CurrentToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// SetUser caches the raw user record in the chosen scope.
func (s *Store) SetUser(ctx context.Context, user json.RawMessage, remember bool) error {
	if len(user) == 0 {
		user = json.RawMessage("null")
	}
	if !json.Valid(user) {
		return fmt.Errorf("store user: %w: not valid JSON", common.ErrorInvalidArgument)
	}
	p := PersistenceFor(remember)
	if err := s.scope(p).Set(ctx, common.UserKey, string(user)); err != nil {
		return fmt.Errorf("store %s user: %w", p, err)
	}
	return nil
}

// User returns the cached user record with the same precedence as
// CurrentToken, or nil if none is cached.
func (s *Store) User(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.firstOf(ctx, common.UserKey)
	if err != nil || raw == "" {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// SetAuthenticated raises the authenticated flag in the session scope.
func (s *Store) SetAuthenticated(ctx context.Context) error {
	if err := s.session.Set(ctx, common.AuthenticatedKey, "true"); err != nil {
		return fmt.Errorf("store authenticated flag: %w", err)
	}
	return nil
}

// Establish records a freshly issued session: token and user go to the
// scope picked by remember, and the authenticated flag is raised.
func (s *Store) Establish(ctx context.Context, token string, user json.RawMessage, remember bool) error {
	if token == "" {
		return fmt.Errorf("establish session: %w: empty token", common.ErrorInvalidArgument)
	}
	if err := s.SetToken(ctx, token, remember); err != nil {
		return err
	}
	if err := s.SetUser(ctx, user, remember); err != nil {
		return err
	}
	return s.SetAuthenticated(ctx)
}

// RememberEmail keeps email in the remembered scope for the next login prompt.
func (s *Store) RememberEmail(ctx context.Context, email string) error {
	if err := s.remembered.Set(ctx, common.RememberedUserKey, email); err != nil {
		return fmt.Errorf("remember email: %w", err)
	}
	return nil
}

func (s *Store) ForgetEmail(ctx context.Context) error {
	if err := s.remembered.Delete(ctx, common.RememberedUserKey); err != nil {
		return fmt.Errorf("forget email: %w", err)
	}
	return nil
}

func (s *Store) RememberedEmail(ctx context.Context) (string, error) {
	v, _, err := s.remembered.Get(ctx, common.RememberedUserKey)
	if err != nil {
		return "", fmt.Errorf("read remembered email: %w", err)
	}
	return v, nil
}

// TokenClaims decodes the current token's claims without verifying the
// signature. The result is for display only.
func (s *Store) TokenClaims(ctx context.Context) (*Claims, error) {
	token, err := s.CurrentToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}

	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := &Claims{Subject: rc.Subject}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

func (s *Store) firstOf(ctx context.Context, key string) (string, error) {
	for _, p := range []Persistence{ScopeSession, ScopeRemembered} {
		v, found, err := s.scope(p).Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("read %s %s: %w", p, key, err)
		}
		if found && v != "" {
			return v, nil
		}
	}
	return "", nil
}
