package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skylight/models"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name     string
		item     models.Item
		expected models.Item
	}{
		{
			name: "empty item gets full defaults",
			item: models.Item{},
			expected: models.Item{
				Title:       models.PlaceholderTitle,
				Date:        models.PlaceholderDate,
				Explanation: models.PlaceholderExplanation,
				MediaType:   models.MediaImage,
			},
		},
		{
			name: "missing media type defaults to image",
			item: models.Item{Title: "t", Date: "2026-08-25", Explanation: "e", URL: "https://x/img.jpg"},
			expected: models.Item{
				Title:       "t",
				Date:        "2026-08-25",
				Explanation: "e",
				MediaType:   models.MediaImage,
				URL:         "https://x/img.jpg",
			},
		},
		{
			name: "complete item is unchanged",
			item: models.Item{
				Title:       "t",
				Date:        "2026-08-25",
				Explanation: "e",
				MediaType:   models.MediaVideo,
				URL:         "https://youtu.be/ABC123",
			},
			expected: models.Item{
				Title:       "t",
				Date:        "2026-08-25",
				Explanation: "e",
				MediaType:   models.MediaVideo,
				URL:         "https://youtu.be/ABC123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Normalized())
		})
	}
}

func TestDecodeItemsArray(t *testing.T) {
	data := []byte(`[
		{"title": "one", "date": "2026-08-24", "media_type": "image", "url": "https://x/1.jpg"},
		{"title": "two", "date": "2026-08-25", "media_type": "video", "url": "https://youtu.be/ABC123"}
	]`)

	items, err := models.DecodeItems(data)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Title)
	assert.Equal(t, "two", items[1].Title)
}

func TestDecodeItemsKeyedObject(t *testing.T) {
	// Values come back ordered by ascending key
	data := []byte(`{
		"2026-08-25": {"title": "newest"},
		"2026-08-23": {"title": "oldest"},
		"2026-08-24": {"title": "middle"}
	}`)

	items, err := models.DecodeItems(data)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "oldest", items[0].Title)
	assert.Equal(t, "middle", items[1].Title)
	assert.Equal(t, "newest", items[2].Title)
}

func TestDecodeItemsEmptyCollections(t *testing.T) {
	items, err := models.DecodeItems([]byte(`[]`))
	assert.NoError(t, err)
	assert.Empty(t, items)

	items, err = models.DecodeItems([]byte(`{}`))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeItemsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `<html>503</html>`},
		{name: "scalar", data: `42`},
		{name: "truncated", data: `[{"title": "one"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := models.DecodeItems([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
