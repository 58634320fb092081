// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/store"
)

// API groups the resource namespaces over one shared [Client].
type API struct {
	User     UserAPI
	Post     PostAPI
	Comment  CommentAPI
	Favorite FavoriteAPI

	client *Client
}

func NewAPI(cfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (*API, error) {
	client, err := NewClient(cfg, tokens, logger)
	if err != nil {
		return nil, err
	}

	return &API{
		User:     &userAPI{Client: client},
		Post:     &postAPI{Client: client},
		Comment:  &commentAPI{Client: client},
		Favorite: &favoriteAPI{Client: client},
		client:   client,
	}, nil
}

// BaseURL returns the API root the namespaces talk to.
func (a *API) BaseURL() string {
	return a.client.BaseURL()
}
