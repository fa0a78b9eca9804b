package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errMissingConfirm = errors.New("refusing to delete without --yes")

func newPlayerCmd(deps *Deps, out func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the logged-in player",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the player profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := deps.Player.CurrentPlayer(cmd.Context()).Get()
			if err != nil {
				return err
			}
			out().Print(p)
			return nil
		},
	})

	var newPassword string
	passwordCmd := &cobra.Command{
		Use:   "set-password",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := deps.Player.ChangePassword(cmd.Context(), newPassword).Get()
			if err != nil {
				return err
			}
			out().Print(p)
			return nil
		},
	}
	passwordCmd.Flags().StringVarP(&newPassword, "password", "p", "", "New password")
	_ = passwordCmd.MarkFlagRequired("password")
	cmd.AddCommand(passwordCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-image <url>",
		Short: "Update the profile image URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := deps.Player.UpdateProfileImage(cmd.Context(), args[0]).Get()
			if err != nil {
				return err
			}
			out().Print(p)
			return nil
		},
	})

	var confirmed bool
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and drop the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errMissingConfirm
			}
			if _, err := deps.Player.DeletePlayer(cmd.Context()).Get(); err != nil {
				return err
			}
			out().PrintMessage("Account deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm account deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}
