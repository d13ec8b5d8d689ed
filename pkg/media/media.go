package media

import (
	"fmt"
	"strings"
)

// AllSection is the reserved section that shows every item. It always exists
// and can be neither deleted nor renamed.
const AllSection = "All"

// Section is a named grouping of items.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsAll reports whether the section is the reserved All section.
func (s Section) IsAll() bool {
	return s.Name == AllSection
}

// Item is a single photo or video in the album.
type Item struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	VideoID     string    `json:"videoId,omitempty"`
	SectionName string    `json:"sectionName"`
	CreatedAt   Timestamp `json:"createdAt"`
	Position    int       `json:"position"`
}

// DisplayTitle returns the title, falling back to a name for the kind.
func (it Item) DisplayTitle() string {
	if t := strings.TrimSpace(it.Title); t != "" {
		return t
	}
	if it.Kind == KindVideo {
		return "Video"
	}
	return "Photo"
}

func (it Item) String() string {
	return fmt.Sprintf("%s %s · %s", it.Kind, it.DisplayTitle(), it.SectionName)
}

// MaxPosition returns the largest position in items and false when items is
// empty.
func MaxPosition(items []Item) (int, bool) {
	if len(items) == 0 {
		return 0, false
	}
	max := items[0].Position
	for _, it := range items[1:] {
		if it.Position > max {
			max = it.Position
		}
	}
	return max, true
}

// NextPosition is the position a newly appended item receives.
func NextPosition(items []Item) int {
	max, ok := MaxPosition(items)
	if !ok {
		return 0
	}
	return max + 1
}
