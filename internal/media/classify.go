// Package media classifies a post's media reference URL into a render type.
// Classification is a pure function over the raw URL; the store never
// persists the result.
package media

import (
	"net/url"
	"path"
	"strings"
)

// Type is the render type derived from a media URL.
type Type string

const (
	TypeImage         Type = "image"
	TypeVideo         Type = "video"
	TypeEmbeddedVideo Type = "embedded_video"
)

// File extensions treated as directly playable video.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".ogg":  {},
	".ogv":  {},
	".mov":  {},
	".m4v":  {},
	".avi":  {},
	".mkv":  {},
}

// Classify derives the render type for a media reference URL. Direct video
// links are detected by file extension, embeddable video by the YouTube
// host; everything else falls back to image.
func Classify(rawURL string) Type {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return TypeImage
	}

	if isYouTubeURL(trimmed) {
		return TypeEmbeddedVideo
	}

	p := trimmed
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		p = parsed.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if _, ok := videoExtensions[ext]; ok {
		return TypeVideo
	}

	return TypeImage
}

// isYouTubeURL returns true if u is a YouTube watch, share, or embed URL.
func isYouTubeURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == "youtu.be" ||
		host == "youtube.com" ||
		strings.HasSuffix(host, ".youtube.com")
}
