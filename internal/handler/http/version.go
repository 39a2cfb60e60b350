package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, http.StatusOK, "", h.services.AppInfoService.BuildInfo(r.Context()))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.BuildInfo(r.Context())
	h.writeSuccess(w, r, http.StatusOK, "VIP Motors API is running", healthPayload{
		Status:      "OK",
		Environment: info.Environment,
		Version:     info.Version,
	})
}
