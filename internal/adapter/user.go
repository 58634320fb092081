// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-client/models"
)

type userAPI struct {
	*Client
}

func (u *userAPI) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := u.do(ctx, request{method: http.MethodPost, path: "/user/register", body: req}, &resp); err != nil {
		return models.RegisterResponse{}, err
	}

	if resp.Token != "" {
		if err := u.tokens.SetToken(ctx, resp.Token); err != nil {
			return resp, fmt.Errorf("register: %w", err)
		}
	}
	return resp, nil
}

func (u *userAPI) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	body := models.LoginRequest{
		UsernameOrEmail: creds.Identifier(),
		Password:        creds.Password,
	}

	var resp models.LoginResponse
	if err := u.do(ctx, request{method: http.MethodPost, path: "/user/login", body: body}, &resp); err != nil {
		return models.LoginResponse{}, err
	}

	if resp.Token != "" {
		if err := u.tokens.SetToken(ctx, resp.Token); err != nil {
			return resp, fmt.Errorf("login: %w", err)
		}
	}
	return resp, nil
}

func (u *userAPI) Logout(ctx context.Context) error {
	callErr := u.do(ctx, request{method: http.MethodPost, path: "/user/logout"}, nil)

	// the token goes even if ctx was cancelled mid-call
	if err := u.tokens.ClearToken(context.WithoutCancel(ctx)); err != nil {
		u.logger.Err(err).Msg("failed to clear session token")
		return errors.Join(callErr, fmt.Errorf("logout: %w", err))
	}

	return callErr
}

func (u *userAPI) Me(ctx context.Context) (models.UserInfoResponse, error) {
	var resp models.UserInfoResponse
	if err := u.do(ctx, request{method: http.MethodGet, path: "/user/me"}, &resp); err != nil {
		return models.UserInfoResponse{}, err
	}
	return resp, nil
}

func (u *userAPI) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.BaseResponse, error) {
	var resp models.BaseResponse
	if err := u.do(ctx, request{method: http.MethodPut, path: "/user/me", body: req}, &resp); err != nil {
		return models.BaseResponse{}, err
	}
	return resp, nil
}
