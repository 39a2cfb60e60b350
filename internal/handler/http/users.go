package http

import (
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/go-chi/chi/v5"
)

func userID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !utils.IsUUID(id) {
		return "", ErrUserNotFound
	}
	return id, nil
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	account, err := h.services.UserService.GetAccount(r.Context(), currentAccount(r).ID)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", account)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := decode(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.UserService.UpdateProfile(r.Context(), currentAccount(r).ID, update)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Profile updated successfully", account)
}

func (h *Handler) deactivateProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeactivateAccount(r.Context(), currentAccount(r).ID); err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Account deactivated successfully", nil)
}

func (h *Handler) userFavorites(w http.ResponseWriter, r *http.Request) {
	cars, err := h.services.UserService.Favorites(r.Context(), currentAccount(r).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", cars)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r.URL.Query())
	filter := models.AccountFilter{
		Page:     q.int("page"),
		Limit:    q.int("limit"),
		Role:     models.Role(q.string("role")),
		IsActive: q.bool("isActive"),
	}
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListAccounts(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", page)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.UserService.GetAccount(r.Context(), id)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", account)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.AccountUpdate
	if err = decode(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.UserService.UpdateAccount(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User updated successfully", account)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeactivateAccount(r.Context(), id); err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrUserNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User deactivated successfully", nil)
}
