package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError_Status(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidationFailed, http.StatusBadRequest},
		{service.ErrEmptyUpdate, http.StatusBadRequest},
		{service.ErrCompareIDsRequired, http.StatusBadRequest},
		{service.ErrUnsupportedContentType, http.StatusBadRequest},
		{service.ErrInvalidOrExpiredToken, http.StatusBadRequest},
		{service.ErrAlreadyVerified, http.StatusBadRequest},
		{utils.ErrEmptyBody, http.StatusBadRequest},
		{ErrInvalidJSON, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrAccountInactive, http.StatusUnauthorized},
		{service.ErrUnauthenticated, http.StatusUnauthorized},
		{service.ErrInvalidToken, http.StatusUnauthorized},
		{ErrMissingToken, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrNotFound, http.StatusNotFound},
		{ErrHypercarNotFound, http.StatusNotFound},
		{service.ErrDuplicateAccount, http.StatusConflict},
		{service.ErrAccountLocked, http.StatusLocked},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{service.ErrNotificationFailed, http.StatusInternalServerError},
		{service.ErrMediaDisabled, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, responseFromError(tt.err).status)
			assert.Equal(t, tt.want, responseFromError(fmt.Errorf("wrapped: %w", tt.err)).status)
		})
	}
}

func TestResponseFromError_RefinedBeforeGeneric(t *testing.T) {
	resp := responseFromError(refine(service.ErrNotFound, service.ErrNotFound, ErrUserNotFound))
	assert.Equal(t, "User not found", resp.title)

	resp = responseFromError(refine(service.ErrInvalidToken, service.ErrInvalidToken, ErrInvalidRefreshToken))
	assert.Equal(t, "Invalid refresh token", resp.title)

	resp = responseFromError(service.ErrNotFound)
	assert.Equal(t, "Resource not found", resp.title)
}

func TestRefine_LeavesOtherErrorsAlone(t *testing.T) {
	err := errors.New("database down")

	assert.Same(t, err, refine(err, service.ErrNotFound, ErrHypercarNotFound))
}

func TestDecode_WrapsSyntaxErrors(t *testing.T) {
	req := newJSONRequest(`{"email":`)
	var dst map[string]any

	err := decode(req, &dst)

	assert.ErrorIs(t, err, ErrInvalidJSON)
}
