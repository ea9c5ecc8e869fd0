package gallery

import (
	"net/url"

	"skylight/models"
)

// Detail is the expanded view model for one selected item. Exactly one of
// the media fields is set: ImageURL for a full-size image, EmbedURL for an
// embeddable video frame, LinkURL when the video cannot be embedded, or
// Message when no media can be shown at all. The media area is never left
// empty.
type Detail struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"mediaType"`
	Copyright   string `json:"copyright,omitempty"`

	ImageURL string `json:"imageUrl,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

// MessageNoMedia is shown when an item has no displayable media. Showing it
// is deliberate, the alternative is a silently empty region.
const MessageNoMedia = "Media not available for this item."

// BuildDetail derives the detail view for one item.
//
// Images prefer the high-definition variant and fall back to the standard
// URL. Videos embed via the provider's canonical form when the identifier
// can be extracted, otherwise a generic frame with the raw URL is attempted,
// and if no frame can be constructed the raw URL is offered as a plain link.
func BuildDetail(index int, item models.Item) Detail {
	item = item.Normalized()

	detail := Detail{
		Index:       index,
		Title:       item.Title,
		Date:        item.Date,
		Explanation: item.Explanation,
		MediaType:   item.MediaType,
		Copyright:   item.Copyright,
	}

	switch item.MediaType {
	case models.MediaImage:
		switch {
		case item.HDURL != "":
			detail.ImageURL = item.HDURL
		case item.URL != "":
			detail.ImageURL = item.URL
		default:
			detail.Message = MessageNoMedia
		}

	case models.MediaVideo:
		switch {
		case videoID(item.URL) != "":
			detail.EmbedURL = EmbedURL(videoID(item.URL))
		case embeddable(item.URL):
			detail.EmbedURL = item.URL
		case item.URL != "":
			detail.LinkURL = item.URL
		default:
			detail.Message = MessageNoMedia
		}

	default:
		detail.Message = MessageNoMedia
	}

	return detail
}

func videoID(raw string) string {
	id, ok := VideoID(raw)
	if !ok {
		return ""
	}
	return id
}

// embeddable reports whether a raw URL can at least be tried as a generic
// embedded frame.
func embeddable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" || u.Scheme == "http"
}
