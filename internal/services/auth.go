// Package services contains the kiosk's application services. This file
// defines the authentication service: signup, login, session restore and
// logout over the local session store.
package services

import (
	"context"

	"github.com/katlegop/baacafe-kiosk/internal/common"
	"github.com/katlegop/baacafe-kiosk/internal/logging"
	"github.com/katlegop/baacafe-kiosk/internal/models"
)

// SessionStore is the persistence surface the auth service needs: the
// durable account registry plus the current session in one of two scopes.
type SessionStore interface {
	LoadAccounts(ctx context.Context) []models.Account
	SaveAccounts(ctx context.Context, accounts []models.Account) error
	RestoreSession(ctx context.Context) *models.Account
	PersistSession(ctx context.Context, acc models.Account, durable bool) error
	ClearSession(ctx context.Context) error
}

// AuthService defines the authentication operations for the kiosk UI.
//
// Contract:
//   - Signup: validate, append to the registry, persist the whole registry.
//   - Login: exact email+password match, persist the session per remember.
//   - Restore: return the persisted session's account, if any.
//   - Logout: clear the session from both scopes.
//
// Matching is exact string equality on both email and password; no
// normalization, no hashing.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, confirm string) (models.Account, error)
	Login(ctx context.Context, email, password string, remember bool) (models.Account, error)
	Restore(ctx context.Context) *models.Account
	Logout(ctx context.Context) error
}

type authService struct {
	store SessionStore
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given store.
func NewAuthService(store SessionStore, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// Signup creates a new account. It fails with common.ErrPasswordMismatch
// when the confirmation differs and with common.ErrEmailTaken when the
// email is already registered (exact match). On success the registry is
// rewritten whole with the new account appended.
func (a *authService) Signup(ctx context.Context, name, email, password, confirm string) (models.Account, error) {
	if password != confirm {
		return models.Account{}, common.ErrPasswordMismatch
	}

	accounts := a.store.LoadAccounts(ctx)
	for _, acc := range accounts {
		if acc.Email == email {
			return models.Account{}, common.ErrEmailTaken
		}
	}

	acc := models.NewAccount(name, email, password)
	accounts = append(accounts, acc)
	if err := a.store.SaveAccounts(ctx, accounts); err != nil {
		return models.Account{}, err
	}

	a.log.Info(ctx, "account registered", "email", email)
	return acc, nil
}

// Login matches the credentials against the registry and persists the
// session in the scope chosen by remember. A failed match returns
// common.ErrInvalidCredentials and leaves all storage untouched.
func (a *authService) Login(ctx context.Context, email, password string, remember bool) (models.Account, error) {
	for _, acc := range a.store.LoadAccounts(ctx) {
		if acc.Email == email && acc.Password == password {
			if err := a.store.PersistSession(ctx, acc, remember); err != nil {
				return models.Account{}, err
			}
			a.log.Info(ctx, "login successful", "email", email, "remember", remember)
			return acc, nil
		}
	}
	return models.Account{}, common.ErrInvalidCredentials
}

// Restore returns the account of a previously persisted session, or nil.
func (a *authService) Restore(ctx context.Context) *models.Account {
	return a.store.RestoreSession(ctx)
}

// Logout clears the session from both scopes.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}
