// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	vaultPath    = "/api/vault"
	tagsPath     = "/api/tags"
	versionPath  = "/api/version"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// A ServerURL without scheme is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, registerPath, user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, loginPath, user)
}

// authenticate posts credentials and picks the token from the Authorization
// response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s request: %w", ErrServerUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, tag string) ([]models.VaultItem, error) {
	req := h.authedRequest(ctx)
	if tag != "" {
		req.SetQueryParam("tag", tag)
	}

	var items []models.VaultItem
	if err := h.do(req, "GET", vaultPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, id string) (models.VaultItem, error) {
	var item models.VaultItem
	if err := h.do(h.authedRequest(ctx), "GET", itemPath(id), &item); err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, body models.StoreItemRequest) (models.VaultItem, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	var item models.VaultItem
	if err := h.do(req, "POST", vaultPath, &item); err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) ReplaceItem(ctx context.Context, id string, body models.StoreItemRequest) (models.VaultItem, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	var item models.VaultItem
	if err := h.do(req, "PUT", itemPath(id), &item); err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	return h.do(h.authedRequest(ctx), "DELETE", itemPath(id), nil)
}

func (h *httpServerAdapter) ListTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := h.do(h.authedRequest(ctx), "GET", tagsPath, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := h.do(h.client.R().SetContext(ctx), "GET", versionPath, &version); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

// do executes req and decodes a successful body into out when out is not nil.
func (h *httpServerAdapter) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.do").Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrServerUnavailable, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpServerAdapter.do").Str("path", path).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func itemPath(id string) string {
	return vaultPath + "/" + url.PathEscape(id)
}
