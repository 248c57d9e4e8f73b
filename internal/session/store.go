// Package session adapts the two key-value scopes into the auth layer's
// persistence surface: the durable account registry and the current
// session, stored as JSON blobs.
package session

import (
	"context"
	"encoding/json"

	"github.com/katlegop/baacafe-kiosk/internal/logging"
	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/storage"
)

const (
	accountsKey = "accounts"
	sessionKey  = "session"
)

// Store wraps a durable and an ephemeral key-value scope. The registry of
// accounts lives only in the durable scope; a session lives in whichever
// scope the remember-me choice selected.
type Store struct {
	durable   storage.Repository
	ephemeral storage.Repository
	log       logging.Logger
}

func NewStore(durable, ephemeral storage.Repository, log logging.Logger) *Store {
	return &Store{durable: durable, ephemeral: ephemeral, log: log}
}

// LoadAccounts reads the durable account registry. Absent or unparsable
// data yields an empty slice; the caller never sees an error.
func (s *Store) LoadAccounts(ctx context.Context) []models.Account {
	data, err := s.durable.Get(ctx, accountsKey)
	if err != nil {
		s.log.Warn(ctx, "account registry read failed", "error", err)
		return []models.Account{}
	}
	if data == nil {
		return []models.Account{}
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.log.Warn(ctx, "account registry unparsable, treating as empty", "error", err)
		return []models.Account{}
	}
	return accounts
}

// SaveAccounts overwrites the durable registry with the whole sequence.
func (s *Store) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.durable.Set(ctx, accountsKey, data)
}

// RestoreSession returns the persisted session's account, checking the
// durable scope before the ephemeral one. Corrupt stored data is treated
// as no session.
func (s *Store) RestoreSession(ctx context.Context) *models.Account {
	for _, scope := range []storage.Repository{s.durable, s.ephemeral} {
		data, err := scope.Get(ctx, sessionKey)
		if err != nil {
			s.log.Warn(ctx, "session read failed", "error", err)
			continue
		}
		if data == nil {
			continue
		}
		var acc models.Account
		if err := json.Unmarshal(data, &acc); err != nil {
			s.log.Warn(ctx, "stored session unparsable, ignoring", "error", err)
			continue
		}
		return &acc
	}
	return nil
}

// PersistSession writes the account into the durable scope when durable is
// true, otherwise into the ephemeral one. The alternate scope is left
// untouched; RestoreSession's durable-first precedence decides which entry
// wins if both exist.
func (s *Store) PersistSession(ctx context.Context, acc models.Account, durable bool) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	if durable {
		return s.durable.Set(ctx, sessionKey, data)
	}
	return s.ephemeral.Set(ctx, sessionKey, data)
}

// ClearSession removes the session from both scopes unconditionally. Safe
// to call when no session exists.
func (s *Store) ClearSession(ctx context.Context) error {
	derr := s.durable.Delete(ctx, sessionKey)
	eerr := s.ephemeral.Delete(ctx, sessionKey)
	if derr != nil {
		return derr
	}
	return eerr
}
