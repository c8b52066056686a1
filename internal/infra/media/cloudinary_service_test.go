package media

import (
	"strings"
	"testing"

	"shapeme/config"
	"shapeme/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMediaConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cloudinary = &config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "shapeme/recipes",
	}

	return cfg
}

func TestNewCloudinaryService_MissingConfig(t *testing.T) {
	svc, err := NewCloudinaryService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestCloudinaryService_DisplayURL(t *testing.T) {
	svc, err := NewCloudinaryService(testMediaConfig())
	require.NoError(t, err)

	url, err := svc.DisplayURL("shapeme/recipes/salada-1a2b3c4d", service.ImageSizeThumbnail)
	require.NoError(t, err)
	assert.Contains(t, url, "shapeme/recipes/salada-1a2b3c4d")
	assert.Contains(t, url, "h_150")
	assert.Contains(t, url, "w_200")
	assert.True(t, strings.HasPrefix(url, "https://"))
}

func TestCloudinaryService_DisplayURL_AllSizes(t *testing.T) {
	svc, err := NewCloudinaryService(testMediaConfig())
	require.NoError(t, err)

	cases := []struct {
		size  service.ImageSize
		width string
	}{
		{service.ImageSizeThumbnail, "w_200"},
		{service.ImageSizeMedium, "w_400"},
		{service.ImageSizeLarge, "w_800"},
	}
	for _, tc := range cases {
		url, err := svc.DisplayURL("shapeme/recipes/img", tc.size)
		require.NoError(t, err)
		assert.Contains(t, url, tc.width)
	}
}

func TestCloudinaryService_DisplayURL_UnknownSize(t *testing.T) {
	svc, err := NewCloudinaryService(testMediaConfig())
	require.NoError(t, err)

	url, err := svc.DisplayURL("shapeme/recipes/img", service.ImageSize("huge"))
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestBuildPublicID(t *testing.T) {
	id := buildPublicID("Salada Verde.jpg")
	assert.True(t, strings.HasPrefix(id, "Salada_Verde-"))
	assert.Len(t, id, len("Salada_Verde-")+8)

	// Two uploads of the same filename never collide.
	assert.NotEqual(t, buildPublicID("a.png"), buildPublicID("a.png"))

	// Degenerate filenames still produce a usable id.
	assert.True(t, strings.HasPrefix(buildPublicID(".png"), "image-"))
}
