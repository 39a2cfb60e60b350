package http

import (
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration
	limiter        *ipRateLimiter
	trustProxy     bool
	// exposeErrors adds internal error text to 500 responses.
	exposeErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		limiter:        newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		trustProxy:     cfg.TrustProxyHeaders,
		exposeErrors:   app.IsDevelopment(),
		logger:         logger,
	}
}
