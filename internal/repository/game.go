package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tfg/veil-companion-go/internal/domain"
	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/session"
	"github.com/tfg/veil-companion-go/internal/veilapi"
)

const (
	wireDateLayout    = "2006-01-02T15:04:05"
	displayDateLayout = "02/01/2006"
)

type Game struct {
	api   *veilapi.Client
	store session.Store
	cat   *msgcat.Catalog
}

func NewGame(api *veilapi.Client, store session.Store, cat *msgcat.Catalog) *Game {
	return &Game{api: api, store: store, cat: cat}
}

// UserGames returns the player's match history, formatted for display.
func (g *Game) UserGames(ctx context.Context) domain.Result[[]domain.Game] {
	dtos, err := g.api.Games(ctx)
	if err != nil {
		return domain.Err[[]domain.Game](fmt.Errorf("%s: %w", g.cat.Msg("game.list_failed"), err))
	}
	email := g.currentEmail(ctx)
	games := make([]domain.Game, 0, len(dtos))
	for _, dto := range dtos {
		games = append(games, mapGame(dto, email))
	}
	return domain.Ok(games)
}

func (g *Game) Game(ctx context.Context, gameID int64) domain.Result[domain.Game] {
	dto, err := g.api.Game(ctx, gameID)
	if err != nil {
		return domain.Err[domain.Game](fmt.Errorf("%s: %w", g.cat.Msg("game.get_failed"), err))
	}
	return domain.Ok(mapGame(*dto, g.currentEmail(ctx)))
}

// CreateGame records a finished match on the backend.
func (g *Game) CreateGame(ctx context.Context, durationSec int, playerEmails []string, murdererEmail string) domain.Result[domain.Game] {
	dto, err := g.api.CreateGame(ctx, veilapi.GameCreationDTO{
		Duration:      durationSec,
		PlayerEmails:  playerEmails,
		MurdererEmail: murdererEmail,
	})
	if err != nil {
		return domain.Err[domain.Game](fmt.Errorf("%s: %w", g.cat.Msg("game.create_failed"), err))
	}
	return domain.Ok(mapGame(*dto, g.currentEmail(ctx)))
}

// currentEmail is used only to derive the player's role; a store miss just
// yields the innocent role rather than failing the whole listing.
func (g *Game) currentEmail(ctx context.Context) string {
	info, err := g.store.UserInfo(ctx)
	if err != nil {
		return ""
	}
	return info.Email
}

func mapGame(dto veilapi.GameResponseDTO, currentEmail string) domain.Game {
	role := domain.RoleInnocent
	date := ""
	for _, p := range dto.Players {
		if date == "" {
			date = p.GameDateTime
		}
		if p.IsMurderer {
			// The murderer entry carries the authoritative match timestamp.
			date = p.GameDateTime
			if currentEmail != "" && p.PlayerEmail == currentEmail {
				role = domain.RoleMurderer
			}
		}
	}
	return domain.Game{
		ID:       dto.ID,
		Date:     formatDate(date),
		Role:     role,
		Duration: formatDuration(dto.Duration),
	}
}

// formatDuration renders seconds as zero-padded MM:SS. Minutes are not
// wrapped: 3600 seconds is "60:00".
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatDate turns an ISO-8601 timestamp into DD/MM/YYYY, handing back the
// raw string when it does not parse.
func formatDate(raw string) string {
	t, err := time.Parse(wireDateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(displayDateLayout)
}
