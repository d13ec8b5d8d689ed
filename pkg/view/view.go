// Package view derives what the album shows: the filtered, ordered visible
// list, and the positions that result from dragging one visible item onto
// another.
package view

import (
	"sort"
	"strings"

	"tableflip.dev/album/pkg/media"
)

// Project returns the items visible in activeSection that match query,
// ordered by position. The All section keeps every item. The query is a
// case-insensitive substring matched against the title or the section name; a
// blank query matches everything. items is never modified.
func Project(items []media.Item, activeSection, query string) []media.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]media.Item, 0, len(items))
	for _, it := range items {
		if activeSection != media.AllSection && it.SectionName != activeSection {
			continue
		}
		if q != "" && !matches(it, q) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

func matches(it media.Item, q string) bool {
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.SectionName), q)
}

// IndexOf returns the index of id in items, or -1.
func IndexOf(items []media.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
