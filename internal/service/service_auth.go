// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-client/internal/adapter"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/store"
	"github.com/MKhiriev/go-blog-client/internal/utils"
	"github.com/MKhiriev/go-blog-client/internal/validators"
	"github.com/MKhiriev/go-blog-client/models"
)

type authService struct {
	users     adapter.UserAPI
	tokens    store.TokenStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewAuthService(users adapter.UserAPI, tokens store.TokenStore, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		users:     users,
		tokens:    tokens,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return a.users.Register(ctx, req)
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp, err := a.users.Login(ctx, creds)
	if err != nil {
		return models.LoginResponse{}, err
	}

	a.logger.Info().Str("user", creds.Identifier()).Bool("token", resp.Token != "").Msg("logged in")
	return resp, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.users.Logout(ctx)
}

func (a *authService) Me(ctx context.Context) (models.User, error) {
	resp, err := a.users.Me(ctx)
	if err != nil {
		return models.User{}, err
	}
	if resp.User == nil {
		return models.User{}, fmt.Errorf("%w: %s", ErrEmptyResponse, resp.Message)
	}
	return *resp.User, nil
}

func (a *authService) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.BaseResponse, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return a.users.UpdateMe(ctx, req)
}

func (a *authService) Session(ctx context.Context) (models.Session, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if token == "" {
		return models.Session{}, ErrNotAuthenticated
	}

	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	session := models.SessionFromClaims(claims)
	if session.Expired(a.now()) {
		return session, ErrSessionExpired
	}
	return session, nil
}

func (a *authService) ExpireSession(ctx context.Context) (bool, error) {
	_, err := a.Session(ctx)
	switch {
	case err == nil, errors.Is(err, ErrNotAuthenticated):
		return false, nil
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrInvalidSession):
		if clearErr := a.tokens.ClearToken(ctx); clearErr != nil {
			return false, clearErr
		}
		a.logger.Info().Err(err).Msg("dropped stored session")
		return true, nil
	default:
		return false, err
	}
}
