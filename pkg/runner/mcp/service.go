// Package mcp provides the Model Context Protocol server integration for the
// album.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/video"
)

// Service adapts the album state container to the shapes MCP clients see.
type Service struct {
	Album *app.Service
}

// SectionSummary describes a section and how many items it holds.
type SectionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	Removable bool   `json:"removable"`
}

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	SourceURL   string `json:"sourceUrl"`
	VideoID     string `json:"videoId,omitempty"`
	EmbedURL    string `json:"embedUrl,omitempty"`
	SectionName string `json:"sectionName"`
	Position    int    `json:"position"`
	Created     string `json:"created,omitempty"`
}

// AddItemOptions captures the parameters used to create an item.
type AddItemOptions struct {
	Kind    string
	Title   string
	URL     string
	Section string
}

// NewService wraps album.
func NewService(album *app.Service) *Service {
	return &Service{Album: album}
}

func (s *Service) album() (*app.Service, error) {
	if s.Album == nil {
		return nil, errors.New("album is not configured")
	}
	return s.Album, nil
}

// ListSections returns every section in display order with counts.
func (s *Service) ListSections(_ context.Context) ([]SectionSummary, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	counts := a.Counts()
	sections := a.Sections()
	out := make([]SectionSummary, 0, len(sections))
	for _, sec := range sections {
		out = append(out, SectionSummary{
			ID:        sec.ID,
			Name:      sec.Name,
			ItemCount: counts[sec.Name],
			Removable: !sec.IsAll(),
		})
	}
	return out, nil
}

// AddSection creates a section.
func (s *Service) AddSection(ctx context.Context, name string) (*SectionSummary, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	sec, err := a.AddSection(ctx, name)
	if err != nil && !app.IsPersistence(err) {
		return nil, err
	}
	return &SectionSummary{ID: sec.ID, Name: sec.Name, Removable: true}, err
}

// DeleteSection removes a section, moving its items to All.
func (s *Service) DeleteSection(ctx context.Context, name string) (bool, error) {
	a, err := s.album()
	if err != nil {
		return false, err
	}
	if name == media.AllSection {
		return false, errors.New("the All section can not be deleted")
	}
	return a.DeleteSection(ctx, name)
}

// ListItems returns the items visible for section and query in display
// order. An empty section means All.
func (s *Service) ListItems(_ context.Context, section, query string) ([]ItemDTO, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	if section == "" {
		section = media.AllSection
	}
	if _, ok := a.Document().Section(section); !ok {
		return nil, fmt.Errorf("no section named %q", section)
	}
	return toDTOs(a.Visible(section, query)), nil
}

// ItemByID finds one item.
func (s *Service) ItemByID(_ context.Context, id string) (*ItemDTO, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	it, err := a.Item(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	dto := toDTO(it)
	return &dto, nil
}

// AddItem creates an item at the end of the album.
func (s *Service) AddItem(ctx context.Context, opts AddItemOptions) (*ItemDTO, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	kind, err := media.ParseKind(opts.Kind)
	if err != nil {
		return nil, err
	}
	it, err := a.AddItem(ctx, kind, opts.Title, opts.URL, opts.Section)
	if err != nil && !app.IsPersistence(err) {
		return nil, err
	}
	dto := toDTO(it)
	return &dto, err
}

// DeleteItem removes an item. It reports whether one was removed.
func (s *Service) DeleteItem(ctx context.Context, id string) (bool, error) {
	a, err := s.album()
	if err != nil {
		return false, err
	}
	return a.DeleteItem(ctx, id)
}

// MoveItem drops dragID onto targetID within the list visible for section and
// query, and returns that list.
func (s *Service) MoveItem(ctx context.Context, section, query, dragID, targetID string) (bool, []ItemDTO, error) {
	a, err := s.album()
	if err != nil {
		return false, nil, err
	}
	if section == "" {
		section = media.AllSection
	}
	moved, err := a.Move(ctx, section, query, dragID, targetID)
	if err != nil && !app.IsPersistence(err) {
		return false, nil, err
	}
	return moved, toDTOs(a.Visible(section, query)), err
}

// Export renders the album document.
func (s *Service) Export(_ context.Context) ([]byte, error) {
	a, err := s.album()
	if err != nil {
		return nil, err
	}
	return a.Export()
}

func toDTOs(items []media.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it))
	}
	return out
}

func toDTO(it media.Item) ItemDTO {
	dto := ItemDTO{
		ID:          it.ID,
		Kind:        string(it.Kind),
		Title:       it.DisplayTitle(),
		SourceURL:   it.SourceURL,
		VideoID:     it.VideoID,
		SectionName: it.SectionName,
		Position:    it.Position,
	}
	if !it.CreatedAt.IsZero() {
		dto.Created = media.FormatTime(it.CreatedAt.Time)
	}
	if it.Kind == media.KindVideo && it.VideoID != "" {
		dto.EmbedURL = video.EmbedURL(it.VideoID)
	}
	return dto
}
