// Package media defines the album data model: sections, items and the
// document that persists them.
package media

import (
	"fmt"
	"strings"
)

// Kind identifies what an item points at.
type Kind string

const (
	// KindPhoto is a remote image URL.
	KindPhoto Kind = "photo"
	// KindVideo is a YouTube video.
	KindVideo Kind = "video"
)

// AllKinds returns the list of supported item kinds.
func AllKinds() []Kind {
	return []Kind{KindPhoto, KindVideo}
}

// ParseKind converts a string to a Kind. The legacy "youtube" spelling maps to
// KindVideo; an empty string defaults to KindPhoto.
func ParseKind(raw string) (Kind, error) {
	k := strings.ToLower(strings.TrimSpace(raw))
	switch k {
	case "":
		return KindPhoto, nil
	case "youtube", "yt":
		return KindVideo, nil
	}
	for _, candidate := range AllKinds() {
		if string(candidate) == k {
			return candidate, nil
		}
	}
	return KindPhoto, fmt.Errorf("media: unknown kind %q", raw)
}

// DefaultTitle is the title given to an item created without one.
func (k Kind) DefaultTitle() string {
	if k == KindVideo {
		return "YouTube video"
	}
	return "Photo"
}

func (k Kind) String() string {
	return string(k)
}
