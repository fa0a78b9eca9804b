// Package repository translates backend outcomes into domain Results. Every
// method is a boundary: no transport error escapes, all failures collapse
// into the error variant with a catalog-prefixed message.
package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tfg/veil-companion-go/internal/domain"
	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/obslog"
	"github.com/tfg/veil-companion-go/internal/session"
	"github.com/tfg/veil-companion-go/internal/veilapi"
)

type Auth struct {
	api   *veilapi.Client
	store session.Store
	cat   *msgcat.Catalog
}

func NewAuth(api *veilapi.Client, store session.Store, cat *msgcat.Catalog) *Auth {
	return &Auth{api: api, store: store, cat: cat}
}

// Login authenticates and persists the session. The token is only considered
// stored once both writes land; a failed write rolls the session back so
// IsLoggedIn never reports a half-written login.
func (a *Auth) Login(ctx context.Context, email, password string) domain.Result[domain.Session] {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return domain.Err[domain.Session](fmt.Errorf("%s: %w", a.cat.Msg("auth.login_failed"), err))
	}

	if err := a.store.SetToken(ctx, resp.Token); err != nil {
		return a.rollback(ctx, err)
	}
	if err := a.store.SetUserInfo(ctx, resp.Email, resp.Nickname); err != nil {
		return a.rollback(ctx, err)
	}

	return domain.Ok(domain.Session{Token: resp.Token, Email: resp.Email, Nickname: resp.Nickname})
}

func (a *Auth) rollback(ctx context.Context, cause error) domain.Result[domain.Session] {
	if err := a.store.Clear(ctx); err != nil {
		obslog.L().Warn("session rollback failed", zap.Error(err))
	}
	return domain.Err[domain.Session](fmt.Errorf("%s: %w", a.cat.Msg("auth.login_failed"), cause))
}

// Register creates the account; it does not log the new player in.
func (a *Auth) Register(ctx context.Context, email, nickname, password, profileImageURL string) domain.Result[domain.Unit] {
	reg := veilapi.PlayerRegistrationDTO{
		Email:           email,
		Nickname:        nickname,
		Password:        password,
		ProfileImageURL: profileImageURL,
	}
	if _, err := a.api.Register(ctx, reg); err != nil {
		return domain.Err[domain.Unit](fmt.Errorf("%s: %w", a.cat.Msg("auth.register_failed"), err))
	}
	return domain.Ok(domain.Unit{})
}

// Logout clears the stored session. Best effort: a store failure is logged
// and swallowed, the caller always proceeds to the logged-out state.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		obslog.L().Warn("session clear failed on logout", zap.Error(err))
	}
}

// IsLoggedIn reports whether a non-empty token is stored.
func (a *Auth) IsLoggedIn(ctx context.Context) bool {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return false
	}
	return strings.TrimSpace(tok) != ""
}

// Session returns the locally cached session without touching the network.
func (a *Auth) Session(ctx context.Context) (domain.Session, error) {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	info, err := a.store.UserInfo(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Token: tok, Email: info.Email, Nickname: info.Nickname}, nil
}
