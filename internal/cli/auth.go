package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(deps *Deps, out func() *Output) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Auth.Login(cmd.Context(), args[0], password).Get()
			if err != nil {
				return err
			}
			msg, rerr := deps.Catalog.Render("cli.logged_in", map[string]string{
				"Nickname": sess.Nickname, "Email": sess.Email,
			})
			if rerr != nil {
				msg = sess.Nickname
			}
			out().PrintMessage(msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(deps *Deps, out func() *Output) *cobra.Command {
	var nickname, password, imageURL string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account (does not log in)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := deps.Auth.Register(cmd.Context(), args[0], nickname, password, imageURL)
			if _, err := res.Get(); err != nil {
				return err
			}
			out().PrintMessage(deps.Catalog.Msg("cli.registered"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "Public nickname")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	cmd.Flags().StringVar(&imageURL, "image", "", "Profile image URL (optional)")
	_ = cmd.MarkFlagRequired("nickname")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(deps *Deps, out func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps.Auth.Logout(cmd.Context())
			out().PrintMessage(deps.Catalog.Msg("cli.logged_out"))
			return nil
		},
	}
}

func newWhoamiCmd(deps *Deps, out func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the locally cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := deps.Auth.Session(cmd.Context())
			if err != nil {
				return err
			}
			out().Print(sess)
			return nil
		},
	}
}
