// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/store"
	"github.com/MKhiriev/go-blog-client/internal/utils"
	"golang.org/x/time/rate"
)

const (
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	mimeJSON            = "application/json"
)

// Client is the shared request pipeline behind the four API namespaces.
type Client struct {
	http    *utils.HTTPClient
	tokens  store.TokenStore
	ids     *utils.UUIDGenerator
	limiter *rate.Limiter
	logger  *logger.Logger
}

// NewClient builds the pipeline for the resolved API base URL in cfg.
// A zero cfg.RateLimit disables client-side limiting.
func NewClient(cfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	c := &Client{
		http:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return c, nil
}

// BaseURL returns the API root every path is appended to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do runs one request and decodes a 2xx body into out (when out is non-nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.ids.Generate()
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader(headerContentType, mimeJSON).
		SetHeader(headerRequestID, requestID)
	if token != "" {
		req.SetHeader(headerAuthorization, "Bearer "+token)
	}
	if len(r.query) > 0 {
		req.SetQueryParamsFromValues(r.query)
	}

	var payload []byte
	if r.body != nil {
		payload, err = json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", r.method, r.path, err)
		}
		req.SetBody(payload)
	}

	fullURL := c.http.BaseURL + r.path
	if e := c.logger.Debug(); e.Enabled() {
		e.Str("method", r.method).
			Str("url", fullURL).
			Interface("headers", redactHeaders(req.Header)).
			RawJSON("body", redactJSON(payload)).
			Msg("API Request")
	}

	if c.limiter != nil {
		if err = c.limiter.Wait(ctx); err != nil {
			c.logger.Err(err).Str("url", fullURL).Msg("API request failed")
			return fmt.Errorf("%s %s: %w", r.method, r.path, err)
		}
	}

	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		c.logger.Err(err).Str("method", r.method).Str("url", fullURL).Msg("API request failed")
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("url", fullURL).
		Msg("API Response")

	if err = mapHTTPError(resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.logger.Error().
				Int("status", apiErr.StatusCode).
				Str("url", fullURL).
				Str("error", apiErr.Message).
				Msg("API Error")
		}
		return err
	}

	body := resp.Body()
	if e := c.logger.Debug(); e.Enabled() {
		e.RawJSON("data", redactJSON(body)).Str("url", fullURL).Msg("API Success")
	}

	if out == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.method, r.path, err)
	}
	return nil
}

func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		v := h.Get(k)
		if strings.EqualFold(k, headerAuthorization) {
			v = "***"
			if _, err := utils.ParseBearerToken(h.Get(k)); err == nil {
				v = "Bearer ***"
			}
		}
		out[k] = v
	}
	return out
}

// sensitiveKeys are JSON fields masked in debug logs, at any depth.
var sensitiveKeys = map[string]struct{}{
	"password": {},
	"token":    {},
}

// redactJSON masks sensitiveKeys in a logged payload. Payloads without such
// fields are returned unchanged.
func redactJSON(b []byte) []byte {
	b = jsonOrNull(b)

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return []byte("null")
	}
	if !redactValue(v) {
		return b
	}

	out, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return out
}

func redactValue(v any) bool {
	changed := false
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
				v[k] = "***"
				changed = true
				continue
			}
			if redactValue(val) {
				changed = true
			}
		}
	case []any:
		for _, val := range v {
			if redactValue(val) {
				changed = true
			}
		}
	}
	return changed
}

// jsonOrNull keeps zerolog from emitting invalid JSON for empty or non-JSON
// payloads.
func jsonOrNull(b []byte) []byte {
	if len(b) == 0 || !json.Valid(b) {
		return []byte("null")
	}
	return b
}
