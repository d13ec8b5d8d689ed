// Package app holds the album's state container: the authoritative list of
// sections and items, every mutation on them, and their persistence.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/video"
	"tableflip.dev/album/pkg/view"
)

// Service owns the album document. Every mutation is persisted to Backend as
// one document. It is safe for concurrent use.
type Service struct {
	Backend store.Backend
	Logger  *slog.Logger

	newID func() string
	now   func() media.Timestamp

	mu     sync.Mutex
	doc    media.Document
	loaded bool
	// unread is set while the stored document could not be read. Saves are
	// refused so the seed album never overwrites it.
	unread bool
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the logger used for persistence and repair warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.Logger = l
	}
}

// WithIDs overrides identifier generation.
func WithIDs(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() media.Timestamp) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New builds a Service over backend. Call Load before use; mutations load
// lazily when it was not called.
func New(backend store.Backend, opts ...Option) *Service {
	s := &Service{
		Backend: backend,
		newID:   media.NewID,
		now:     media.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Load reads the document from the backend. Missing or corrupt data is
// replaced by the seed album, which is written back. A read failure leaves
// the seed album in memory, returns a PersistenceError, and holds back every
// save until a later Load succeeds or the album is replaced by ReplaceAll.
// When an album was already loaded, a read failure keeps it instead.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Reload discards the in-memory document and reads it again.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Service) loadLocked(_ context.Context) error {
	if s.Backend == nil {
		return errors.New("app: no persistence configured")
	}
	hadAlbum := s.loaded && !s.unread
	s.loaded = true

	raw, err := s.Backend.Get(store.DocumentKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.unread = false
		s.doc = Seed(s.newID, s.now())
		return s.saveLocked()
	case err != nil && hadAlbum:
		s.logger().Error("reading album, keeping the one in memory", "err", err)
		return &PersistenceError{Op: "load", Err: err}
	case err != nil:
		s.unread = true
		s.doc = Seed(s.newID, s.now())
		s.logger().Error("reading album, changes will not be saved", "err", err)
		return &PersistenceError{Op: "load", Err: err}
	}
	s.unread = false

	doc, err := media.Decode(raw)
	if err != nil {
		s.logger().Warn("album document unreadable, starting from seed", "err", err)
		s.doc = Seed(s.newID, s.now())
		return s.saveLocked()
	}
	s.doc = doc
	if s.normalizeLocked() {
		return s.saveLocked()
	}
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if err := s.loadLocked(ctx); err != nil && !IsPersistence(err) {
		return err
	}
	return nil
}

// normalizeLocked guarantees the All section, repairs dangling section
// references and fills missing video ids. It reports whether anything changed.
func (s *Service) normalizeLocked() bool {
	changed := s.doc.EnsureAll()
	if moved := s.doc.RepairSections(); len(moved) > 0 {
		s.logger().Warn("items referenced missing sections, moved to All", "items", moved)
		changed = true
	}
	for i := range s.doc.Items {
		it := &s.doc.Items[i]
		if it.Kind != media.KindVideo || it.VideoID != "" {
			continue
		}
		if id, ok := video.ExtractID(it.SourceURL); ok {
			it.VideoID = id
			changed = true
		}
	}
	return changed
}

// Save writes the whole document to the backend.
func (s *Service) Save(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Service) saveLocked() error {
	if s.unread {
		return &PersistenceError{Op: "save", Err: ErrUnread}
	}
	data, err := media.Marshal(s.doc)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := s.Backend.Set(store.DocumentKey, data); err != nil {
		s.logger().Error("saving album", "err", err)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Document returns a copy of the whole album.
func (s *Service) Document() media.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Sections returns the sections in display order.
func (s *Service) Sections() []media.Section {
	return s.Document().Sections
}

// Items returns every item in storage order.
func (s *Service) Items() []media.Item {
	return s.Document().Items
}

// Item returns the item with id.
func (s *Service) Item(id string) (media.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.doc.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return media.Item{}, ErrNotFound
}

// Visible is the ordered list shown for section and query.
func (s *Service) Visible(section, query string) []media.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Project(s.doc.Items, section, query)
}

// Counts returns the number of items per section name. All counts every item.
func (s *Service) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(s.doc.Sections))
	for _, sec := range s.doc.Sections {
		counts[sec.Name] = 0
	}
	for _, it := range s.doc.Items {
		counts[it.SectionName]++
	}
	counts[media.AllSection] = len(s.doc.Items)
	return counts
}

// AddSection appends a section. Blank names and case-insensitive duplicates
// are rejected.
func (s *Service) AddSection(ctx context.Context, name string) (media.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return media.Section{}, invalid("section name", "name the section")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return media.Section{}, err
	}
	if s.doc.HasSectionFold(name) {
		return media.Section{}, invalid("section name", fmt.Sprintf("a section named %q already exists", name))
	}
	sec := media.Section{ID: s.newID(), Name: name}
	s.doc.Sections = append(s.doc.Sections, sec)
	return sec, s.saveLocked()
}

// DeleteSection removes the named section after moving its items to All. The
// All section and unknown names are left alone. It reports whether a section
// was removed.
func (s *Service) DeleteSection(ctx context.Context, name string) (bool, error) {
	if name == media.AllSection {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	idx := -1
	for i, sec := range s.doc.Sections {
		if sec.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	for i := range s.doc.Items {
		if s.doc.Items[i].SectionName == name {
			s.doc.Items[i].SectionName = media.AllSection
		}
	}
	s.doc.Sections = append(s.doc.Sections[:idx:idx], s.doc.Sections[idx+1:]...)
	return true, s.saveLocked()
}

// AddItem creates an item at the end of the album. The URL is required; for
// videos it must resolve to a YouTube id. An empty section means All and an
// unknown section is rejected.
func (s *Service) AddItem(ctx context.Context, kind media.Kind, title, url, section string) (media.Item, error) {
	url = strings.TrimSpace(url)
	title = strings.TrimSpace(title)
	section = strings.TrimSpace(section)
	if url == "" {
		return media.Item{}, invalid("url", "add a valid URL")
	}
	if kind == "" {
		kind = media.KindPhoto
	}
	if kind != media.KindPhoto && kind != media.KindVideo {
		return media.Item{}, invalid("kind", fmt.Sprintf("unknown kind %q", kind))
	}
	var videoID string
	if kind == media.KindVideo {
		id, ok := video.ExtractID(url)
		if !ok {
			return media.Item{}, invalid("url", "not a valid YouTube URL")
		}
		videoID = id
	}
	if section == "" {
		section = media.AllSection
	}
	if title == "" {
		title = kind.DefaultTitle()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return media.Item{}, err
	}
	if err := s.checkSectionLocked(section); err != nil {
		return media.Item{}, err
	}

	it := media.Item{
		ID:          s.newID(),
		Kind:        kind,
		Title:       title,
		SourceURL:   url,
		VideoID:     videoID,
		SectionName: section,
		CreatedAt:   s.now(),
		Position:    media.NextPosition(s.doc.Items),
	}
	s.doc.Items = append(s.doc.Items, it)
	return it, s.saveLocked()
}

// CheckSection returns the ValidationError AddItem would give for section,
// or nil when items can be added to it. An empty section means All.
func (s *Service) CheckSection(ctx context.Context, section string) error {
	section = strings.TrimSpace(section)
	if section == "" {
		section = media.AllSection
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	return s.checkSectionLocked(section)
}

func (s *Service) checkSectionLocked(section string) error {
	if _, ok := s.doc.Section(section); !ok {
		return invalid("section", fmt.Sprintf("no section named %q", section))
	}
	return nil
}

// DeleteItem removes an item. Unknown ids are not an error; it reports
// whether an item was removed.
func (s *Service) DeleteItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	for i, it := range s.doc.Items {
		if it.ID != id {
			continue
		}
		s.doc.Items = append(s.doc.Items[:i:i], s.doc.Items[i+1:]...)
		return true, s.saveLocked()
	}
	return false, nil
}

// ReplaceAll swaps the whole album, as import does. The All section is added
// when missing and items pointing at unknown sections are moved to All. The
// new album is written even when the stored one could not be read.
func (s *Service) ReplaceAll(ctx context.Context, sections []media.Section, items []media.Item) error {
	doc := media.Document{
		Sections: append([]media.Section{}, sections...),
		Items:    append([]media.Item{}, items...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.unread = false
	s.doc = doc
	s.normalizeLocked()
	return s.saveLocked()
}

// Move drops dragID onto targetID within the list visible for section and
// query, renumbering the visible items. It reports whether anything moved.
func (s *Service) Move(ctx context.Context, section, query, dragID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	visible := view.Project(s.doc.Items, section, query)
	positions := view.Reorder(visible, dragID, targetID)
	if positions == nil {
		return false, nil
	}
	s.doc.Items = view.Apply(s.doc.Items, positions)
	return true, s.saveLocked()
}

// Export renders the album as indented JSON.
func (s *Service) Export() ([]byte, error) {
	return media.Marshal(s.Document())
}

// Import replaces the album with the document in data. A document that does
// not parse, or lacks sections or items, is an ImportError and leaves the
// album untouched.
func (s *Service) Import(ctx context.Context, data []byte) error {
	doc, err := media.Decode(data)
	if err != nil {
		return &ImportError{Err: err}
	}
	return s.ReplaceAll(ctx, doc.Sections, doc.Items)
}
