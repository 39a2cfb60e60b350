package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

// relayMessage is the JSON body POSTed to the mail relay.
type relayMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type httpMailRelay struct {
	client    *utils.HTTPClient
	endpoint  string
	from      string
	templates *templates

	logger *logger.Logger
}

// NewHTTPMailRelay constructs a [Notifier] that renders notifications and
// POSTs them to the relay at cfg.URL, authenticated with cfg.APIKey as a
// bearer token when set.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPMailRelay(cfg config.Mailer, frontendURL string, log *logger.Logger) (Notifier, error) {
	endpoint, err := normalizeEndpoint(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid mailer url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpMailRelay{
		client:    client,
		endpoint:  endpoint,
		from:      cfg.From,
		templates: newTemplates(frontendURL),
		logger:    log,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Notify implements [Notifier].
func (h *httpMailRelay) Notify(ctx context.Context, notification models.Notification) error {
	log := logger.FromContext(ctx)

	rendered, err := h.templates.render(notification)
	if err != nil {
		log.Err(err).Str("func", "httpMailRelay.Notify").Str("kind", string(notification.Kind)).Msg("failed to render notification")
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(relayMessage{
			From:    h.from,
			To:      notification.To,
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		}).
		Post(h.endpoint)
	if err != nil {
		log.Err(err).Str("func", "httpMailRelay.Notify").Str("kind", string(notification.Kind)).Msg("mail relay request failed")
		return fmt.Errorf("%w: %w", ErrRelayUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpMailRelay.Notify").Int("status", resp.StatusCode()).Msg("mail relay returned an error")
		return err
	}

	log.Info().
		Str("func", "httpMailRelay.Notify").
		Str("kind", string(notification.Kind)).
		Msg("notification sent")

	return nil
}
