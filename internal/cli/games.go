package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGamesCmd(deps *Deps, out func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Match history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the player's games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := deps.Game.UserGames(cmd.Context()).Get()
			if err != nil {
				return err
			}
			out().Print(games)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			game, err := deps.Game.Game(cmd.Context(), id).Get()
			if err != nil {
				return err
			}
			out().Print(game)
			return nil
		},
	})

	var duration int
	var players string
	var murderer string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Record a finished match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emails := strings.Split(players, ",")
			for i := range emails {
				emails[i] = strings.TrimSpace(emails[i])
			}
			game, err := deps.Game.CreateGame(cmd.Context(), duration, emails, murderer).Get()
			if err != nil {
				return err
			}
			out().Print(game)
			return nil
		},
	}
	createCmd.Flags().IntVar(&duration, "duration", 0, "Match duration in seconds")
	createCmd.Flags().StringVar(&players, "players", "", "Comma-separated player emails")
	createCmd.Flags().StringVar(&murderer, "murderer", "", "Murderer's email")
	_ = createCmd.MarkFlagRequired("duration")
	_ = createCmd.MarkFlagRequired("players")
	_ = createCmd.MarkFlagRequired("murderer")
	cmd.AddCommand(createCmd)

	return cmd
}
