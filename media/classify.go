// Package media infers an article's primary medium from its URL.
package media

import "strings"

// Type is the inferred medium of an article
type Type string

const (
	Video   Type = "video"
	Audio   Type = "audio"
	Podcast Type = "podcast"
	Article Type = "article"
)

// Markers are matched as case-insensitive substrings of the URL
var (
	videoMarkers   = []string{"youtube.com", "vimeo.com", ".mp4"}
	audioMarkers   = []string{"soundcloud.com", ".mp3", ".wav"}
	podcastMarkers = []string{"spotify.com", "podcast", "apple.com/podcast"}
)

// Types lists every media type in classification order
func Types() []Type {
	return []Type{Video, Audio, Podcast, Article}
}

// Classify returns the media type for rawURL. Video markers are checked
// first, then audio, then podcast; anything else is an article.
func Classify(rawURL string) Type {
	u := strings.ToLower(rawURL)
	switch {
	case containsAny(u, videoMarkers):
		return Video
	case containsAny(u, audioMarkers):
		return Audio
	case containsAny(u, podcastMarkers):
		return Podcast
	default:
		return Article
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
