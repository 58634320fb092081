// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"time"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/spf13/cobra"
)

func newRegisterCommand(r *runtime) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account; the returned session is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().AuthService.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Username (3-20 characters)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password (at least 6 characters)")
	return cmd
}

func newLoginCommand(r *runtime) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a username or email; the session is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			resp, err := app.Services().AuthService.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&creds.UsernameOrEmail, "user", "u", "", "Username or email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "Password")
	return cmd
}

func newLogoutCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out; the stored session is dropped even if the call fails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}
			return app.Services().AuthService.Logout(cmd.Context())
		},
	}
}

func newMeCommand(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			user, err := app.Services().AuthService.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	cmd.AddCommand(newMeUpdateCommand(r))
	return cmd
}

func newMeUpdateCommand(r *runtime) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change username, email or password; only given flags are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			var req models.UpdateProfileRequest
			if cmd.Flags().Changed("username") {
				req.Username = &username
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("password") {
				req.Password = &password
			}

			resp, err := app.Services().AuthService.UpdateMe(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "New username")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "New password")
	return cmd
}

type sessionOutput struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

func newSessionCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Decode the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.client()
			if err != nil {
				return err
			}

			session, err := app.Services().AuthService.Session(cmd.Context())
			if err != nil {
				return err
			}

			out := sessionOutput{UserID: session.UserID, Username: session.Username, Role: session.Role}
			if !session.ExpiresAt.IsZero() {
				out.ExpiresAt = session.ExpiresAt.UTC().Format(time.RFC3339)
			}
			return printJSON(cmd, out)
		},
	}
}
