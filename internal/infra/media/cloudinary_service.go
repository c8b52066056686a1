// Package media implements the MediaService contract against Cloudinary.
package media

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"shapeme/config"
	"shapeme/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// uploadTransformation is applied once at ingestion time. Stored assets are
// normalized to 800x600 webp so delivery transformations stay cheap.
const uploadTransformation = "c_fill,g_auto,h_600,w_800/q_auto:good"

// imageDimensions maps each display preset to its pixel bounds.
var imageDimensions = map[service.ImageSize]struct{ width, height int }{
	service.ImageSizeThumbnail: {width: 200, height: 150},
	service.ImageSizeMedium:    {width: 400, height: 300},
	service.ImageSizeLarge:     {width: 800, height: 600},
}

// cloudinaryService is a concrete implementation of the MediaService interface.
type cloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService is the constructor for cloudinaryService.
func NewCloudinaryService(cfg *config.Config) (service.MediaService, error) {
	if cfg.Cloudinary == nil {
		return nil, errors.New("cloudinary configuration must be provided")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Cloudinary client")
	}
	cld.Config.URL.Secure = true

	return &cloudinaryService{
		cld:    cld,
		folder: cfg.Cloudinary.Folder,
	}, nil
}

// UploadImage stores the image bytes under a unique public id derived from
// the original filename.
func (s *cloudinaryService) UploadImage(ctx context.Context, content []byte, filename string) (*service.UploadResult, error) {
	publicID := buildPublicID(filename)

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       publicID,
		Format:         "webp",
		Transformation: uploadTransformation,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}
	if resp.Error.Message != "" {
		return nil, errors.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}

	thumbnailURL, err := s.DisplayURL(resp.PublicID, service.ImageSizeThumbnail)
	if err != nil {
		return nil, err
	}
	mediumURL, err := s.DisplayURL(resp.PublicID, service.ImageSizeMedium)
	if err != nil {
		return nil, err
	}
	largeURL, err := s.DisplayURL(resp.PublicID, service.ImageSizeLarge)
	if err != nil {
		return nil, err
	}

	return &service.UploadResult{
		PublicID:     resp.PublicID,
		ThumbnailURL: thumbnailURL,
		MediumURL:    mediumURL,
		LargeURL:     largeURL,
	}, nil
}

// DisplayURL builds a pre-sized delivery URL for a stored image.
func (s *cloudinaryService) DisplayURL(publicID string, size service.ImageSize) (string, error) {
	dims, ok := imageDimensions[size]
	if !ok {
		return "", errors.Errorf("unknown image size: %s", size)
	}

	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", errors.Wrap(err, "failed to build image URL")
	}
	img.Transformation = fmt.Sprintf("c_fill,g_auto,h_%d,w_%d,q_auto:good,f_auto", dims.height, dims.width)

	url, err := img.String()
	if err != nil {
		return "", errors.Wrap(err, "failed to render image URL")
	}

	return url, nil
}

// buildPublicID derives a unique, URL-safe public id from the original
// filename. The random suffix prevents collisions between identical names.
func buildPublicID(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		base = "image"
	}

	return base + "-" + uuid.NewString()[:8]
}
