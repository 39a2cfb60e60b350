package http

import (
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/service"
)

func (h *Handler) dashboardOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.services.DashboardService.Overview(r.Context(), currentAccount(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", overview)
}

func (h *Handler) dashboardFavorites(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r.URL.Query())
	page, limit := q.int("page"), q.int("limit")
	if err := q.err(); err != nil {
		h.writeError(w, r, err)
		return
	}

	favorites, err := h.services.DashboardService.Favorites(r.Context(), currentAccount(r), page, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", favorites)
}

func (h *Handler) dashboardRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.services.DashboardService.Recommendations(r.Context(), currentAccount(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", recommendations)
}

func (h *Handler) dashboardActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.services.DashboardService.Activity(r.Context(), currentAccount(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", activity)
}

func (h *Handler) dashboardSearch(w http.ResponseWriter, r *http.Request) {
	filter, err := hypercarFilter(r.URL.Query(), "q", "query", "search")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.DashboardService.Search(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", searchPayload{Results: page.Hypercars, Pagination: page.Pagination})
}

func (h *Handler) dashboardCompare(w http.ResponseWriter, r *http.Request) {
	ids := newQueryReader(r.URL.Query()).list("ids")

	comparison, err := h.services.DashboardService.Compare(r.Context(), ids)
	if err != nil {
		h.writeError(w, r, refine(err, service.ErrNotFound, ErrComparedNotFound))
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "", comparison)
}
