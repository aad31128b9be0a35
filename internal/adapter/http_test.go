// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_URL(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "localhost:8080/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidServerURL)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, "account-pass", user.Password)

		w.Header().Set("Authorization", "Bearer issued.jwt.token")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.User{Login: "alice", Password: "account-pass"})

	require.NoError(t, err)
	assert.Equal(t, "issued.jwt.token", token)
	assert.Equal(t, "issued.jwt.token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"error": "login already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{Login: "alice"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorContains(t, err, "login already exists")
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  string
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, header: "Bearer abc"},
		{name: "bad credentials", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "missing token", status: http.StatusOK, wantErr: ErrMissingToken},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				if tt.header != "" {
					w.Header().Set("Authorization", tt.header)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			token, err := a.Login(context.Background(), models.User{Login: "alice", Password: "x"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, a.Token())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc", token)
		})
	}
}

func TestListItems_SendsTokenAndTag(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := []models.VaultItem{{ID: "id-1", Envelope: "env", Tags: []string{"work"}, CreatedAt: now, UpdatedAt: now}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vault", r.URL.Path)
		assert.Equal(t, "work", r.URL.Query().Get("tag"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	got, err := a.ListItems(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListItems_NoTagParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("tag"))
		writeJSON(t, w, http.StatusOK, []models.VaultItem{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListItems(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestItemCRUD(t *testing.T) {
	item := models.VaultItem{ID: "id-1", Envelope: "env-2", Tags: []string{"a"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/vault":
			var body models.StoreItemRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, models.Envelope("env-1"), body.Envelope)
			writeJSON(t, w, http.StatusCreated, models.VaultItem{ID: "id-1", Envelope: body.Envelope, Tags: body.Tags})
		case r.Method == http.MethodGet && r.URL.Path == "/api/vault/id-1":
			writeJSON(t, w, http.StatusOK, item)
		case r.Method == http.MethodPut && r.URL.Path == "/api/vault/id-1":
			writeJSON(t, w, http.StatusOK, item)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/vault/id-1":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/vault/foreign":
			writeJSON(t, w, http.StatusForbidden, map[string]string{"error": "access denied"})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "vault item was not found"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	created, err := a.CreateItem(ctx, models.StoreItemRequest{Envelope: "env-1", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	got, err := a.GetItem(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, item, got)

	replaced, err := a.ReplaceItem(ctx, "id-1", models.StoreItemRequest{Envelope: "env-2", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, models.Envelope("env-2"), replaced.Envelope)

	require.NoError(t, a.DeleteItem(ctx, "id-1"))

	_, err = a.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.GetItem(ctx, "foreign")
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, a.DeleteItem(ctx, "missing"), ErrNotFound)
}

func TestListTagsAndVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			writeJSON(t, w, http.StatusOK, []string{"personal", "work"})
		case "/api/version":
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	tags, err := a.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"personal", "work"}, tags)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", version.Version)
}

func TestServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListItems(context.Background(), "")
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListTags(context.Background())
	assert.ErrorContains(t, err, "decode GET /api/tags response")
}
