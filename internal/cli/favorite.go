// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "github.com/spf13/cobra"

func newFavoriteCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorite"},
		Short:   "Star posts and list starred ones",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle <post-id>",
			Short: "Star or unstar a post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				postID, err := parseID(args[0])
				if err != nil {
					return err
				}

				app, err := r.client()
				if err != nil {
					return err
				}

				resp, err := app.Services().FavoriteService.Toggle(cmd.Context(), postID)
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List starred posts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := r.client()
				if err != nil {
					return err
				}

				resp, err := app.Services().FavoriteService.List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			},
		},
	)
	return cmd
}
