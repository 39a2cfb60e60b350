package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError renders err in the error envelope. Server side failures are
// logged with the route; their text reaches the client only in development.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)
	body := models.Response{Success: false, Error: resp.title, Message: resp.message}

	var fieldErrs validators.ValidationErrors
	if errors.As(err, &fieldErrs) {
		body.Details = fieldErrs
	}

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("route", routePattern(r)).
			Str("method", r.Method).
			Int("status", resp.status).
			Msg("request failed")
		if h.exposeErrors {
			body.Message = err.Error()
		}
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, body, resp.status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// decode reads a JSON body into dst, reporting malformed input as
// ErrInvalidJSON.
func decode(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return errors.Join(ErrInvalidJSON, err)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
