// Package cli is the veilctl command tree. It consumes only the repositories;
// nothing here touches the API client or the session store directly.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tfg/veil-companion-go/internal/msgcat"
	"github.com/tfg/veil-companion-go/internal/repository"
)

// Deps is the wired repository layer, built in main.
type Deps struct {
	Auth    *repository.Auth
	Player  *repository.Player
	Friend  *repository.Friend
	Game    *repository.Game
	Catalog *msgcat.Catalog
}

// NewRootCmd builds the veilctl command tree.
func NewRootCmd(deps *Deps) *cobra.Command {
	var format string

	rootCmd := &cobra.Command{
		Use:   "veilctl",
		Short: "Companion CLI for the Veil party game backend",
		Long: `veilctl talks to the Veil ("murderer/innocent" party game) backend:
authentication, friends, friend requests and match history.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", "text", "Output format: text, json")

	out := func() *Output { return NewOutput(format) }

	rootCmd.AddCommand(newLoginCmd(deps, out))
	rootCmd.AddCommand(newRegisterCmd(deps, out))
	rootCmd.AddCommand(newLogoutCmd(deps, out))
	rootCmd.AddCommand(newWhoamiCmd(deps, out))
	rootCmd.AddCommand(newPlayerCmd(deps, out))
	rootCmd.AddCommand(newFriendsCmd(deps, out))
	rootCmd.AddCommand(newRequestsCmd(deps, out))
	rootCmd.AddCommand(newGamesCmd(deps, out))
	rootCmd.AddCommand(newHomeCmd(deps, out))

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(deps *Deps) {
	if err := NewRootCmd(deps).Execute(); err != nil {
		os.Exit(1)
	}
}
