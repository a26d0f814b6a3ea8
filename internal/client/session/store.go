// Package session owns the live authentication state: the bearer token and
// the user profile. Durable storage is a passive mirror, written through on
// every mutation; in-memory state always wins on read.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vitorsaucedo/vbank-cli/internal/client/models"
	"github.com/vitorsaucedo/vbank-cli/internal/client/repositories/localstore"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

// Storage keys. These are the only two entries the mirror ever holds.
const (
	keyToken = "token"
	keyUser  = "user"
)

type Store struct {
	repo localstore.Repository
	log  logging.Logger

	token string
	user  *models.User

	// now is a test seam for the token expiry check.
	now func() time.Time
}

func NewStore(repo localstore.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, now: time.Now}
}

// Hydrate loads the mirrored session from durable storage. A token whose
// JWT expiry is in the past is discarded (and wiped from storage) so the
// application starts unauthenticated instead of bouncing off 401s.
func (s *Store) Hydrate(ctx context.Context) error {
	tok, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return nil
	}

	if s.tokenExpired(string(tok)) {
		s.log.Info(ctx, "stored token expired, clearing session")
		s.ClearSession(ctx)
		return nil
	}

	s.token = string(tok)

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.log.Warn(ctx, "stored user profile unreadable", "error", err)
		} else {
			s.user = &u
		}
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature (the client holds no secret). Opaque, non-JWT tokens are
// assumed valid and left for the server to judge.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}

// SetSession installs the token and the user profile together, then mirrors
// both to durable storage in one atomic write. The mirror is best-effort:
// a storage failure is logged and in-memory state stays authoritative.
func (s *Store) SetSession(ctx context.Context, token string, user models.User) {
	s.token = token
	u := user
	s.user = &u

	doc, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "failed to encode user profile", "error", err)
		return
	}
	if err := s.repo.SetAll(ctx, map[string][]byte{
		keyToken: []byte(token),
		keyUser:  doc,
	}); err != nil {
		s.log.Error(ctx, "failed to mirror session to storage", "error", err)
	}
}

// ClearSession drops both the in-memory session and the durable mirror.
// Idempotent.
func (s *Store) ClearSession(ctx context.Context) {
	s.token = ""
	s.user = nil
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session storage", "error", err)
	}
}

func (s *Store) IsAuthenticated() bool { return s.token != "" }

// Token satisfies api.TokenSource.
func (s *Store) Token() string { return s.token }

// User returns a copy of the current profile, or nil when logged out.
func (s *Store) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UpdateUserProfile merges the non-empty fields of partial into the current
// profile (e.g. account number and agency learned from a dashboard load)
// without touching the token, and refreshes the mirrored profile document.
func (s *Store) UpdateUserProfile(ctx context.Context, partial models.User) {
	if s.user == nil {
		s.user = &models.User{}
	}
	if partial.Name != "" {
		s.user.Name = partial.Name
	}
	if partial.AccountNumber != "" {
		s.user.AccountNumber = partial.AccountNumber
	}
	if partial.Agency != "" {
		s.user.Agency = partial.Agency
	}

	doc, err := json.Marshal(s.user)
	if err != nil {
		s.log.Error(ctx, "failed to encode user profile", "error", err)
		return
	}
	if err := s.repo.Set(ctx, keyUser, doc); err != nil {
		s.log.Error(ctx, "failed to mirror user profile to storage", "error", err)
	}
}
