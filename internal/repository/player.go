package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tfg/veil-companion-go/internal/domain"
	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/obslog"
	"github.com/tfg/veil-companion-go/internal/session"
	"github.com/tfg/veil-companion-go/internal/veilapi"
)

type Player struct {
	api   *veilapi.Client
	store session.Store
	cat   *msgcat.Catalog
}

func NewPlayer(api *veilapi.Client, store session.Store, cat *msgcat.Catalog) *Player {
	return &Player{api: api, store: store, cat: cat}
}

func (p *Player) CurrentPlayer(ctx context.Context) domain.Result[domain.Player] {
	dto, err := p.api.CurrentPlayer(ctx)
	if err != nil {
		return domain.Err[domain.Player](fmt.Errorf("%s: %w", p.cat.Msg("player.profile_failed"), err))
	}
	return domain.Ok(mapPlayer(dto))
}

func (p *Player) ChangePassword(ctx context.Context, newPassword string) domain.Result[domain.Player] {
	dto, err := p.api.ChangePassword(ctx, newPassword)
	if err != nil {
		return domain.Err[domain.Player](fmt.Errorf("%s: %w", p.cat.Msg("player.password_failed"), err))
	}
	return domain.Ok(mapPlayer(dto))
}

func (p *Player) UpdateProfileImage(ctx context.Context, imageURL string) domain.Result[domain.Player] {
	dto, err := p.api.UpdateProfileImage(ctx, imageURL)
	if err != nil {
		return domain.Err[domain.Player](fmt.Errorf("%s: %w", p.cat.Msg("player.image_failed"), err))
	}
	return domain.Ok(mapPlayer(dto))
}

// DeletePlayer removes the account server-side, then drops the local session:
// the token is dead once the account is gone.
func (p *Player) DeletePlayer(ctx context.Context) domain.Result[domain.Unit] {
	if err := p.api.DeletePlayer(ctx); err != nil {
		return domain.Err[domain.Unit](fmt.Errorf("%s: %w", p.cat.Msg("player.delete_failed"), err))
	}
	if err := p.store.Clear(ctx); err != nil {
		obslog.L().Warn("session clear failed after account deletion", zap.Error(err))
	}
	return domain.Ok(domain.Unit{})
}

func mapPlayer(dto *veilapi.PlayerResponseDTO) domain.Player {
	return domain.Player{
		Email:           dto.Email,
		Nickname:        dto.Nickname,
		Coins:           dto.Coins,
		SkinURL:         dto.SkinURL,
		ProfileImageURL: dto.ProfileImageURL,
	}
}
