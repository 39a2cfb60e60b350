package adapter

import (
	"context"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/models"
)

type logNotifier struct {
	templates *templates
}

// NewLogNotifier returns a [Notifier] that renders each notification and
// writes it to the request logger instead of sending it. Links carry live
// tokens, so it is meant for local development only.
func NewLogNotifier(frontendURL string) Notifier {
	return &logNotifier{templates: newTemplates(frontendURL)}
}

func (n *logNotifier) Notify(ctx context.Context, notification models.Notification) error {
	rendered, err := n.templates.render(notification)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "logNotifier.Notify").
		Str("kind", string(notification.Kind)).
		Str("to", notification.To).
		Str("subject", rendered.Subject).
		Str("link", notification.Link).
		Msg("notification not sent: no mail relay configured")

	return nil
}

// NewNotifier picks the mail relay when cfg.URL is set and the logging
// notifier otherwise.
func NewNotifier(cfg config.Mailer, frontendURL string, log *logger.Logger) (Notifier, error) {
	if cfg.URL == "" {
		log.Warn().Str("func", "NewNotifier").Msg("MAILER_URL is empty, notifications will only be logged")
		return NewLogNotifier(frontendURL), nil
	}

	return NewHTTPMailRelay(cfg, frontendURL, log)
}
