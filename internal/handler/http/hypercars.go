// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/go-chi/chi/v5"
)

// hypercarID returns the {id} path parameter. Malformed ids cannot name an
// entry and are reported as not found.
func hypercarID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !utils.IsUUID(id) {
		return "", ErrHypercarNotFound
	}
	return id, nil
}

func (h *Handler) listHypercars(w http.ResponseWriter, r *http.Request) {
	filter, err := hypercarFilter(r.URL.Query(), "search")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.HypercarService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", page)
}

func (h *Handler) featuredHypercars(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r.URL.Query())
	limit := q.int("limit")
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}

	cars, err := h.services.HypercarService.Featured(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", cars)
}

func (h *Handler) hypercarBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.services.HypercarService.Brands(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", brands)
}

func (h *Handler) hypercarStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.HypercarService.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", stats)
}

// getHypercar counts a view only for authenticated readers.
func (h *Handler) getHypercar(w http.ResponseWriter, r *http.Request) {
	id, err := hypercarID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, authenticated := utils.GetAccountFromContext(r.Context())
	car, err := h.services.HypercarService.Get(r.Context(), id, authenticated)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrHypercarNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", car)
}

func (h *Handler) createHypercar(w http.ResponseWriter, r *http.Request) {
	var car models.Hypercar
	if err := decode(r, &car); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.HypercarService.Create(r.Context(), car)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, "Hypercar created successfully", created)
}

// updateHypercar forwards the raw body: only the keys present in it change.
func (h *Handler) updateHypercar(w http.ResponseWriter, r *http.Request) {
	id, err := hypercarID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch json.RawMessage
	if err = decode(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.HypercarService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrHypercarNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Hypercar updated successfully", updated)
}

func (h *Handler) deleteHypercar(w http.ResponseWriter, r *http.Request) {
	id, err := hypercarID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.HypercarService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrHypercarNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Hypercar deleted successfully", nil)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, h.services.HypercarService.AddFavorite, "Hypercar added to favorites")
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, h.services.HypercarService.RemoveFavorite, "Hypercar removed from favorites")
}

type favoriteToggle func(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request, toggle favoriteToggle, message string) {
	id, err := hypercarID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := toggle(r.Context(), currentAccount(r).ID, id)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrHypercarNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, message, favoritePayload{HypercarID: id, FavoriteResult: result})
}

type uploadURLRequest struct {
	ContentType string `json:"contentType"`
}

func (h *Handler) imageUploadURL(w http.ResponseWriter, r *http.Request) {
	id, err := hypercarID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request uploadURLRequest
	if err = decode(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	upload, err := h.services.MediaService.PresignImageUpload(r.Context(), id, request.ContentType)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrHypercarNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Upload URL created", upload)
}
