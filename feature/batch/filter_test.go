package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters(t *testing.T) {
	tests := []struct {
		ext       string
		images    bool
		withVideo bool
	}{
		{".png", true, true},
		{".jpeg", true, true},
		{".mp4", false, true},
		{".txt", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.images, Images(tt.ext))
			assert.Equal(t, tt.withVideo, ImagesAndVideo(tt.ext))
			assert.True(t, AllFiles(tt.ext))
		})
	}
}

func TestExtensionFilter_Normalizes(t *testing.T) {
	f := ExtensionFilter("PDF", ".Csv")
	assert.True(t, f(".pdf"))
	assert.True(t, f(".csv"))
	assert.False(t, f(".png"))
}

func TestFilterByName(t *testing.T) {
	for _, name := range []string{"", "all", "images", "MEDIA"} {
		f, err := FilterByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := FilterByName("documents")
	assert.Error(t, err)
}

func TestMimeType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"clip.mp4", "video/mp4"},
		{"CLIP.MP4", "video/mp4"},
		{"a.png", "image/png"},
		{"c.jpg", "image/jpg"},
		{"icon.svg", "image/svg"},
		{"data.unknownext", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeType(tt.name))
		})
	}
}
