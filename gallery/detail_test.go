package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skylight/gallery"
	"skylight/models"
)

func TestBuildDetailImage(t *testing.T) {
	tests := []struct {
		name     string
		item     models.Item
		expected string
	}{
		{
			name: "hd variant preferred",
			item: models.Item{
				MediaType: models.MediaImage,
				URL:       "https://x/img.jpg",
				HDURL:     "https://x/img_hd.jpg",
			},
			expected: "https://x/img_hd.jpg",
		},
		{
			name: "standard url when no hd variant",
			item: models.Item{
				MediaType: models.MediaImage,
				URL:       "https://x/img.jpg",
			},
			expected: "https://x/img.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := gallery.BuildDetail(0, tt.item)
			assert.Equal(t, tt.expected, detail.ImageURL)
			assert.Empty(t, detail.EmbedURL)
			assert.Empty(t, detail.Message)
		})
	}
}

func TestBuildDetailVideo(t *testing.T) {
	tests := []struct {
		name          string
		item          models.Item
		expectedEmbed string
		expectedLink  string
	}{
		{
			name: "recognized video embeds via canonical form",
			item: models.Item{
				MediaType: models.MediaVideo,
				URL:       "https://www.youtube.com/watch?v=ABC123",
			},
			expectedEmbed: "https://www.youtube.com/embed/ABC123",
		},
		{
			name: "unrecognized https video gets a generic frame",
			item: models.Item{
				MediaType: models.MediaVideo,
				URL:       "https://player.vimeo.com/video/123456",
			},
			expectedEmbed: "https://player.vimeo.com/video/123456",
		},
		{
			name: "unembeddable url falls back to a plain link",
			item: models.Item{
				MediaType: models.MediaVideo,
				URL:       "rtsp://stream.example.org/live",
			},
			expectedLink: "rtsp://stream.example.org/live",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := gallery.BuildDetail(0, tt.item)
			assert.Equal(t, tt.expectedEmbed, detail.EmbedURL)
			assert.Equal(t, tt.expectedLink, detail.LinkURL)
			assert.Empty(t, detail.Message)
		})
	}
}

func TestBuildDetailNoMedia(t *testing.T) {
	tests := []struct {
		name string
		item models.Item
	}{
		{
			name: "image without any url",
			item: models.Item{MediaType: models.MediaImage},
		},
		{
			name: "video without url",
			item: models.Item{MediaType: models.MediaVideo},
		},
		{
			name: "unknown media type",
			item: models.Item{MediaType: "audio", URL: "https://x/file.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := gallery.BuildDetail(0, tt.item)
			assert.Equal(t, gallery.MessageNoMedia, detail.Message)
			assert.Empty(t, detail.ImageURL)
			assert.Empty(t, detail.EmbedURL)
			assert.Empty(t, detail.LinkURL)
		})
	}
}

func TestBuildDetailKeepsExplanationAndIndex(t *testing.T) {
	item := models.Item{
		Title:       "Crab Nebula",
		Date:        "2026-08-25",
		Explanation: "Line one.\n\nLine two.",
		MediaType:   models.MediaImage,
		URL:         "https://x/crab.jpg",
		Copyright:   "NASA",
	}

	detail := gallery.BuildDetail(7, item)

	assert.Equal(t, 7, detail.Index)
	assert.Equal(t, "Crab Nebula", detail.Title)
	// Whitespace in the explanation is preserved as-is
	assert.Equal(t, "Line one.\n\nLine two.", detail.Explanation)
	assert.Equal(t, "NASA", detail.Copyright)
}
