package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newFriendsCmd(deps *Deps, out func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Manage the friend list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accepted friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			friends, err := deps.Friend.Friends(cmd.Context()).Get()
			if err != nil {
				return err
			}
			out().Print(friends)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <email>",
		Short: "Send a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := deps.Friend.SendFriendRequest(cmd.Context(), args[0]).Get()
			if err != nil {
				return err
			}
			out().PrintMessage("Friend request #" + strconv.FormatInt(id, 10) + " sent")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <email>",
		Short: "Remove a friend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := deps.Friend.RemoveFriend(cmd.Context(), args[0]).Get(); err != nil {
				return err
			}
			out().PrintMessage("Friend removed")
			return nil
		},
	})

	return cmd
}

func newRequestsCmd(deps *Deps, out func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage pending friend requests",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List inbound pending requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := deps.Friend.FriendRequests(cmd.Context()).Get()
			if err != nil {
				return err
			}
			out().Print(reqs)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "accept <id>",
		Short: "Accept a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			friend, err := deps.Friend.AcceptFriendRequest(cmd.Context(), id).Get()
			if err != nil {
				return err
			}
			out().Print(friend)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decline <id>",
		Short: "Decline a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if _, err := deps.Friend.RejectFriendRequest(cmd.Context(), id).Get(); err != nil {
				return err
			}
			out().PrintMessage("Request declined")
			return nil
		},
	})

	return cmd
}
