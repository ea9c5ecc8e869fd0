// Package gallery derives the view models rendered for the picture feed:
// one card per item for the gallery grid and one detail view for the
// selected item. Everything here is pure so it can be tested without a
// rendering surface or network access.
package gallery

import (
	"skylight/models"

	"github.com/samber/lo"
)

// Card is the gallery-grid view model for one feed item. Cards keep the
// input order of the feed; the index ties a card back to its item.
type Card struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	MediaType string `json:"mediaType"`

	// Thumbnail is empty when no preview could be derived, in which case
	// Placeholder names the neutral stand-in to render instead.
	Thumbnail   string `json:"thumbnail,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Placeholder kinds for cards without a derivable thumbnail. Video items get
// a distinct placeholder so they are not mistaken for broken images.
const (
	PlaceholderVideo = "video"
	PlaceholderImage = "image"
)

// BuildCards maps feed items to gallery cards, in input order.
func BuildCards(items []models.Item) []Card {
	return lo.Map(items, func(item models.Item, index int) Card {
		item = item.Normalized()

		card := Card{
			Index:     index,
			Title:     item.Title,
			Date:      item.Date,
			MediaType: item.MediaType,
		}

		if thumb, ok := thumbnailFor(item); ok {
			card.Thumbnail = thumb
		} else if item.MediaType == models.MediaVideo {
			card.Placeholder = PlaceholderVideo
		} else {
			card.Placeholder = PlaceholderImage
		}

		return card
	})
}

// thumbnailFor resolves the preview image for an item. Priority order, first
// match wins: the feed's explicit thumbnail field, a thumbnail derived from
// a recognized video URL, then the image URL itself.
func thumbnailFor(item models.Item) (string, bool) {
	if item.ThumbnailURL != "" {
		return item.ThumbnailURL, true
	}

	if id, ok := VideoID(item.URL); ok {
		return ThumbnailURL(id), true
	}

	if item.MediaType == models.MediaImage {
		if item.URL != "" {
			return item.URL, true
		}
		if item.HDURL != "" {
			return item.HDURL, true
		}
	}

	return "", false
}
