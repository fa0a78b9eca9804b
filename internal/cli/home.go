package cli

import (
	"github.com/spf13/cobra"

	"github.com/tfg/veil-companion-go/internal/domain"
)

// HomeSummary is the aggregate the home screen showed: profile plus counters.
type HomeSummary struct {
	Player      domain.Player `json:"player"`
	FriendCount int           `json:"friendCount"`
	GameCount   int           `json:"gameCount"`
}

func newHomeCmd(deps *Deps, out func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Profile overview with friend and game counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			player, err := deps.Player.CurrentPlayer(ctx).Get()
			if err != nil {
				return err
			}

			summary := HomeSummary{Player: player}
			// Counters are best effort: a failed list keeps the profile usable.
			if friends, err := deps.Friend.Friends(ctx).Get(); err == nil {
				summary.FriendCount = len(friends)
			}
			if games, err := deps.Game.UserGames(ctx).Get(); err == nil {
				summary.GameCount = len(games)
			}

			out().Print(summary)
			return nil
		},
	}
}
