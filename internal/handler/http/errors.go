// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vip-motors/internal/service"
)

// Transport level errors. Most of them refine a service error so that the
// mapper can pick a resource specific message while errors.Is against the
// service sentinel keeps working.
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries no usable "Authorization: Bearer" header.
	ErrMissingToken = fmt.Errorf("%w: no bearer token", service.ErrUnauthenticated)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests")

	ErrRouteNotFound = fmt.Errorf("%w: route", service.ErrNotFound)

	ErrHypercarNotFound = fmt.Errorf("%w: hypercar", service.ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user", service.ErrNotFound)
	ErrComparedNotFound = fmt.Errorf("%w: compared hypercars", service.ErrNotFound)

	ErrInvalidRefreshToken      = fmt.Errorf("%w: refresh", service.ErrInvalidToken)
	ErrInvalidResetToken        = fmt.Errorf("%w: password reset", service.ErrInvalidOrExpiredToken)
	ErrInvalidVerificationToken = fmt.Errorf("%w: email verification", service.ErrInvalidOrExpiredToken)
	ErrResetEmailFailed         = fmt.Errorf("%w: password reset", service.ErrNotificationFailed)
)

// refine replaces err by label when err matches target. label is expected to
// wrap target itself.
func refine(err, target, label error) error {
	if errors.Is(err, target) {
		return fmt.Errorf("%w: %w", label, err)
	}
	return err
}
