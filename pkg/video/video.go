// Package video resolves YouTube URLs into video identifiers and builds the
// privacy-enhanced embed links used to play them.
package video

import (
	"net/url"
	"strings"
)

const (
	shortHost  = "youtu.be"
	embedHost  = "https://www.youtube-nocookie.com/embed/"
	watchHost  = "https://www.youtube.com/watch?v="
	shortsPart = "shorts"
	embedPart  = "embed"
)

// ExtractID returns the video identifier carried by raw. Recognized forms:
//
//	https://youtu.be/<id>
//	https://www.youtube.com/watch?v=<id>
//	https://www.youtube.com/shorts/<id>
//	https://www.youtube.com/embed/<id>
//
// Anything else, including malformed URLs, reports false.
func ExtractID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	if strings.EqualFold(u.Hostname(), shortHost) {
		id := strings.TrimPrefix(u.Path, "/")
		return id, id != ""
	}
	if v := u.Query().Get("v"); v != "" {
		return v, true
	}

	parts := splitPath(u.Path)
	if id, ok := after(parts, shortsPart); ok {
		return id, true
	}
	if id, ok := after(parts, embedPart); ok {
		return id, true
	}
	return "", false
}

// EmbedURL is the youtube-nocookie player URL for id.
func EmbedURL(id string) string {
	return embedHost + url.PathEscape(id)
}

// AutoplayURL is EmbedURL with autoplay enabled, as used by the slideshow.
func AutoplayURL(id string) string {
	return EmbedURL(id) + "?autoplay=1"
}

// WatchURL is the regular youtube.com page for id.
func WatchURL(id string) string {
	return watchHost + url.QueryEscape(id)
}

func splitPath(p string) []string {
	raw := strings.Split(p, "/")
	parts := raw[:0]
	for _, s := range raw {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// after returns the segment following the first occurrence of marker.
func after(parts []string, marker string) (string, bool) {
	for i, p := range parts {
		if p != marker {
			continue
		}
		if i+1 < len(parts) {
			return parts[i+1], true
		}
		return "", false
	}
	return "", false
}
