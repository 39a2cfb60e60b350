// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

// notFound answers unknown routes. It also serves as the MethodNotAllowed
// handler, so a known path with an unsupported method looks like an unknown
// one instead of revealing the route with a 405.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	resp := responseFromError(ErrRouteNotFound)
	body := models.Response{
		Success: false,
		Error:   resp.title + " - " + r.URL.Path,
		Message: resp.message,
	}
	if _, err := utils.WriteJSON(w, body, resp.status); err != nil {
		h.logger.Err(err).Msg("error writing not found response")
	}
}
