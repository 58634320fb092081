// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/spf13/cobra"
)

func newCommentCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read and write comments",
	}

	cmd.AddCommand(
		newCommentListCommand(r),
		newCommentGetCommand(r),
		newCommentCreateCommand(r),
		newCommentUpdateCommand(r),
		newCommentDeleteCommand(r),
	)
	return cmd
}

func newCommentListCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list <post-id>",
		Short: "List the comments of a post",
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

			resp, err := app.Services().CommentService.ListByPost(cmd.Context(), postID)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newCommentGetCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := r.client()
			if err != nil {
				return err
			}

			comment, err := app.Services().CommentService.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, comment)
		},
	}
}

func newCommentCreateCommand(r *runtime) *cobra.Command {
	var (
		content  string
		parentID int64
	)

	cmd := &cobra.Command{
		Use:   "create <post-id>",
		Short: "Comment on a post",
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

			req := models.CreateCommentRequest{Content: content, PostID: postID}
			if cmd.Flags().Changed("parent") {
				req.ParentID = &parentID
			}

			resp, err := app.Services().CommentService.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Comment text")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "Reply to this comment id")
	return cmd
}

func newCommentUpdateCommand(r *runtime) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().CommentService.Update(cmd.Context(), id, models.UpdateCommentRequest{Content: content})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "New comment text")
	return cmd
}

func newCommentDeleteCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().CommentService.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
