// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers out-of-band notifications (email verification,
// password reset and welcome messages) to account owners.
//
// The primary abstraction is [Notifier], which decouples the service layer
// from the delivery channel. Two implementations ship with the package:
// an HTTP mail relay client ([NewHTTPMailRelay]) and a logging notifier
// ([NewLogNotifier]) used when no relay is configured. [NewNotifier] picks
// one from the mailer configuration.
//
// Error values defined in errors.go are mapped from relay HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrRelayRejected]
// for 4xx, [ErrRelayUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/vip-motors/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends a rendered notification to its recipient.
//
// Implementations must not retry: a failed reset email is rolled back by the
// caller, and a retried one could arrive after the rollback.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification) error
}
