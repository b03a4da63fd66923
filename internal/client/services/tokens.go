// Package services contains application services for the account client.
// This file defines the token store: durable persistence of the access token
// with an expiry, backed by the local metadata repository.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/accountcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/accountcli/internal/dbx"
)

const (
	metaKeyToken       = "token"
	metaKeyTokenExpiry = "token_expiry"
)

// TokenStore persists the current access token in the local store. Each
// token is written together with its expiry; an expired entry is treated as
// absent and removed on read.
type TokenStore struct {
	db  *sql.DB
	ttl time.Duration
}

// NewTokenStore binds a token store to the local database. ttl is the
// fallback lifetime used when the token itself does not state one.
func NewTokenStore(db *sql.DB, ttl time.Duration) *TokenStore {
	return &TokenStore{db: db, ttl: ttl}
}

// Save persists token, replacing whatever was stored before. Both keys are
// written in a single transaction.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	expiresAt := s.tokenExpiry(token)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metaKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metaKeyTokenExpiry, []byte(expiresAt.UTC().Format(time.RFC3339)))
	})
}

// Load returns the persisted token, or "" when none is stored. An entry
// whose expiry has passed or cannot be parsed is deleted and reported as
// absent.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, metaKeyToken)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", nil
	}

	rawExpiry, err := repo.Get(ctx, metaKeyTokenExpiry)
	if err != nil {
		return "", err
	}

	expiresAt, parseErr := time.Parse(time.RFC3339, string(rawExpiry))
	if parseErr != nil || !expiresAt.After(time.Now()) {
		if err := s.Clear(ctx); err != nil {
			return "", fmt.Errorf("failed to drop stale token: %w", err)
		}
		return "", nil
	}

	return string(token), nil
}

// Clear removes the persisted token and its expiry.
func (s *TokenStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, metaKeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, metaKeyTokenExpiry)
	})
}

// ExpiresAt returns the stored expiry, or the zero time when no token is
// persisted.
func (s *TokenStore) ExpiresAt(ctx context.Context) (time.Time, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	raw, err := repo.Get(ctx, metaKeyTokenExpiry)
	if err != nil || raw == nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, string(raw))
}

// tokenExpiry picks the moment the persisted entry stops being usable.
// Tokens issued as JWTs carry their own exp claim; it wins over the default
// ttl so the local copy never outlives the server-side session.
func (s *TokenStore) tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return time.Now().Add(s.ttl)
}
