package gallery

import (
	"net/url"
	"strings"
)

// Canonical YouTube URL forms derived from a video identifier.
const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	youtubeThumbBase = "https://img.youtube.com/vi/"
)

// VideoID extracts the video identifier from a recognized video-hosting URL.
// Two hostname shapes are recognized: youtube.com, where the identifier is
// the "v" query parameter (or the /embed/ path segment, which is what the
// feed usually serves for videos), and the youtu.be short link, where the
// identifier is the first path segment. Returns false for anything else.
func VideoID(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, true
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			if id := firstSegment(rest); id != "" {
				return id, true
			}
		}
	case "youtu.be":
		if id := firstSegment(strings.TrimPrefix(u.Path, "/")); id != "" {
			return id, true
		}
	}

	return "", false
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(path, "/")
	return segment
}

// EmbedURL returns the provider's canonical embed form for an identifier.
func EmbedURL(id string) string {
	return youtubeEmbedBase + id
}

// ThumbnailURL returns the provider's canonical thumbnail for an identifier.
func ThumbnailURL(id string) string {
	return youtubeThumbBase + id + "/hqdefault.jpg"
}
