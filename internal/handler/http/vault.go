// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/go-chi/chi/v5"
)

// tagQueryParam filters GET /api/vault by one tag.
const tagQueryParam = "tag"

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.services.VaultItemService.List(r.Context(), userID, r.URL.Query().Get(tagQueryParam))
	if err != nil {
		writeError(w, r, err, "*Handler.listItems")
		return
	}
	if items == nil {
		items = []models.VaultItem{}
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.StoreItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.createItem")
		return
	}

	item, err := h.services.VaultItemService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.createItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	item, err := h.services.VaultItemService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

// replaceItem swaps envelope and tags wholesale; there is no partial update.
func (h *Handler) replaceItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.StoreItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.replaceItem")
		return
	}

	item, err := h.services.VaultItemService.Replace(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, "*Handler.replaceItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.VaultItemService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteItem")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	tags, err := h.services.VaultItemService.ListTags(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.listTags")
		return
	}
	if tags == nil {
		tags = []string{}
	}

	_, _ = utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoUserID, "*Handler.userID")
		return 0, false
	}
	return userID, true
}
