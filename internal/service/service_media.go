package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/media"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

const defaultUploadURLExpiry = 15 * time.Minute

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type mediaService struct {
	hypercars store.HypercarRepository
	presigner media.Presigner

	publicBaseURL string
	expiry        time.Duration
	newID         func() string

	logger *logger.Logger
}

// NewMediaService constructs a MediaService. A nil presigner disables
// uploads.
func NewMediaService(hypercars store.HypercarRepository, presigner media.Presigner, cfg config.Media, logger *logger.Logger) MediaService {
	expiry := cfg.UploadURLExpiry
	if expiry <= 0 {
		expiry = defaultUploadURLExpiry
	}

	return &mediaService{
		hypercars:     hypercars,
		presigner:     presigner,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		expiry:        expiry,
		newID:         utils.NewUUIDGenerator().Generate,
		logger:        logger,
	}
}

// PresignImageUpload returns a PUT URL under hypercars/<id>/ for an active
// entry.
func (s *mediaService) PresignImageUpload(ctx context.Context, hypercarID, contentType string) (models.UploadURL, error) {
	if s.presigner == nil {
		return models.UploadURL{}, ErrMediaDisabled
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return models.UploadURL{}, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	car, err := s.hypercars.GetHypercar(ctx, hypercarID)
	if err != nil {
		return models.UploadURL{}, hypercarLookupError(err)
	}
	if !car.IsActive {
		return models.UploadURL{}, ErrNotFound
	}

	key := fmt.Sprintf("hypercars/%s/%s%s", car.ID, s.newID(), ext)
	req, err := s.presigner.PresignPut(ctx, key, contentType, s.expiry)
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("error creating upload url: %w", err)
	}

	upload := models.UploadURL{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		ExpiresIn: int(s.expiry.Seconds()),
	}
	if s.publicBaseURL != "" {
		upload.PublicURL = s.publicBaseURL + "/" + key
	}

	logger.FromContext(ctx).Info().Str("hypercar_id", car.ID).Str("key", key).Msg("image upload url issued")
	return upload, nil
}
