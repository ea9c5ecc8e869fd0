package models

import "time"

// Media types as supplied by the feed. Anything else ends up as a
// "media not available" detail view.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Placeholders for feed records with missing fields. Applied by Normalized,
// never by the loader, so the archive keeps the raw feed values.
const (
	PlaceholderTitle       = "Untitled"
	PlaceholderDate        = "Unknown date"
	PlaceholderExplanation = "No explanation provided."
)

// Item is one astronomy-picture-of-the-day record as supplied by the feed.
// Items are immutable once fetched and carry no identity beyond their
// position in the source collection.
type Item struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Explanation  string `json:"explanation"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Copyright    string `json:"copyright,omitempty"`
}

// Normalized returns a copy of the item with field defaults applied: a
// missing media type resolves to image and missing text fields resolve to
// placeholder strings so no empty value reaches a display region.
func (i Item) Normalized() Item {
	if i.MediaType == "" {
		i.MediaType = MediaImage
	}
	if i.Title == "" {
		i.Title = PlaceholderTitle
	}
	if i.Date == "" {
		i.Date = PlaceholderDate
	}
	if i.Explanation == "" {
		i.Explanation = PlaceholderExplanation
	}
	return i
}

// ItemsLoadedEvent fired when the loader resolves a source into a non-empty
// item set. Consumed by the archive writer.
type ItemsLoadedEvent struct {
	Source string
	Items  []Item
}

type ItemsAggregatedByTime struct {
	Time  time.Time `json:"time"`
	Count int64     `json:"count"`
}
