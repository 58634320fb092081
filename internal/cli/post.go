// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/render"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/spf13/cobra"
)

func newPostCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "List, read and manage posts",
	}

	cmd.AddCommand(
		newPostListCommand(r),
		newPostGetCommand(r),
		newPostSearchCommand(r),
		newPostCreateCommand(r),
		newPostUpdateCommand(r),
		newPostDeleteCommand(r),
	)
	return cmd
}

func newPostListCommand(r *runtime) *cobra.Command {
	var (
		opts models.PostListOptions
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			if all {
				published := false
				opts.PublishedOnly = &published
			}

			resp, err := app.Services().PostService.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", models.DefaultPage, "Page number")
	cmd.Flags().IntVar(&opts.Limit, "limit", models.DefaultLimit, "Posts per page")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Only posts of this category")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Full-text filter")
	cmd.Flags().Int64Var(&opts.AuthorID, "author", 0, "Only posts of this author id")
	cmd.Flags().BoolVar(&all, "all", false, "Include unpublished posts")
	return cmd
}

func newPostGetCommand(r *runtime) *cobra.Command {
	var (
		rendered bool
		style    string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one post",
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

			post, err := app.Services().PostService.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !rendered {
				return printJSON(cmd, post)
			}

			out, err := render.New(render.WithStyle(style), render.WithWidth(width)).Render(post.ContentMarkdown)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s · %s\n%s", post.Title, post.Category, post.CreatedAt, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rendered, "render", false, "Print the post as rendered markdown instead of JSON")
	cmd.Flags().StringVar(&style, "style", render.StyleAuto, "Render style: auto, dark, light or notty")
	cmd.Flags().IntVar(&width, "width", 80, "Render word-wrap width")
	return cmd
}

func newPostSearchCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().PostService.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

// draftFlags are the post fields shared by create and update.
type draftFlags struct {
	title    string
	category string
	content  string
	file     string
	cover    string
	draft    bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Post title")
	cmd.Flags().StringVar(&f.category, "category", "", "Post category")
	cmd.Flags().StringVar(&f.content, "content", "", "Markdown body")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read the markdown body from a file, - for stdin")
	cmd.Flags().StringVar(&f.cover, "cover", "", "Cover image URL")
	cmd.Flags().BoolVar(&f.draft, "draft", false, "Save without publishing")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

// build turns the flags into a draft. With onlyChanged set, fields whose flag
// was not given stay empty so that the backend keeps them.
func (f *draftFlags) build(cmd *cobra.Command, onlyChanged bool) (models.PostDraft, error) {
	changed := func(name string) bool {
		return !onlyChanged || cmd.Flags().Changed(name)
	}

	d := models.PostDraft{Title: f.title, Category: f.category, Content: f.content}

	if f.file != "" {
		body, err := readBody(cmd, f.file)
		if err != nil {
			return models.PostDraft{}, err
		}
		d.Content = body
	}
	if changed("draft") {
		published := !f.draft
		d.IsPublished = &published
	}
	if changed("cover") && f.cover != "" {
		cover := f.cover
		d.CoverURL = &cover
	}

	return d, nil
}

func readBody(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read post body: %w", err)
	}
	return string(b), nil
}

func newPostCreateCommand(r *runtime) *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := f.build(cmd, false)
			if err != nil {
				return err
			}

			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().PostService.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	f.register(cmd)
	return cmd
}

func newPostUpdateCommand(r *runtime) *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a post; only given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			draft, err := f.build(cmd, true)
			if err != nil {
				return err
			}

			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().PostService.Update(cmd.Context(), id, draft)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	f.register(cmd)
	return cmd
}

func newPostDeleteCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
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

			resp, err := app.Services().PostService.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
