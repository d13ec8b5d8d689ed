package app

import (
	"tableflip.dev/album/pkg/media"
)

// Seed returns the document a new album starts with.
func Seed(newID func() string, now media.Timestamp) media.Document {
	return media.Document{
		Sections: []media.Section{
			{ID: newID(), Name: media.AllSection},
			{ID: newID(), Name: "Family"},
			{ID: newID(), Name: "Travel"},
			{ID: newID(), Name: "Events"},
			{ID: newID(), Name: "Videos"},
		},
		Items: []media.Item{
			{
				ID:          newID(),
				Kind:        media.KindPhoto,
				Title:       "Sunset at the beach",
				SourceURL:   "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1600",
				SectionName: "Travel",
				CreatedAt:   now,
				Position:    0,
			},
			{
				ID:          newID(),
				Kind:        media.KindPhoto,
				Title:       "Mom's birthday",
				SourceURL:   "https://images.unsplash.com/photo-1519681393784-d120267933ba?w=1600",
				SectionName: "Family",
				CreatedAt:   now,
				Position:    1,
			},
			{
				ID:          newID(),
				Kind:        media.KindVideo,
				Title:       "A memory on video",
				SourceURL:   "https://www.youtube.com/watch?v=jfKfPfyJRdk",
				VideoID:     "jfKfPfyJRdk",
				SectionName: "Videos",
				CreatedAt:   now,
				Position:    2,
			},
		},
	}
}
