package service

import "context"

// ImageSize selects one of the fixed display presets generated for every
// stored image.
type ImageSize string

const (
	ImageSizeThumbnail ImageSize = "thumbnail" // 200x150
	ImageSizeMedium    ImageSize = "medium"    // 400x300
	ImageSizeLarge     ImageSize = "large"     // 800x600
)

// UploadResult is what the media host returns for a stored image: the opaque
// identifier to persist on recipes, plus pre-sized display URLs.
type UploadResult struct {
	PublicID     string `json:"public_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	MediumURL    string `json:"medium_url"`
	LargeURL     string `json:"large_url"`
}

// MediaService delegates image hosting to an external CDN. One upload
// contract and one URL-transformation policy; display URLs can be
// regenerated from the public id at any time without re-uploading.
type MediaService interface {
	// UploadImage stores the image bytes under a unique public id derived
	// from the original filename.
	UploadImage(ctx context.Context, content []byte, filename string) (*UploadResult, error)

	// DisplayURL builds a pre-sized delivery URL for a stored image.
	DisplayURL(publicID string, size ImageSize) (string, error)
}
