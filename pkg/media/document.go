package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Document is the whole persisted album.
type Document struct {
	Sections []Section `json:"sections"`
	Items    []Item    `json:"items"`
}

var (
	// ErrMissingSections is returned by Decode when the sections key is absent.
	ErrMissingSections = errors.New("media: document has no sections")
	// ErrMissingItems is returned by Decode when the items key is absent.
	ErrMissingItems = errors.New("media: document has no items")
)

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{
		Sections: make([]Section, len(d.Sections)),
		Items:    make([]Item, len(d.Items)),
	}
	copy(out.Sections, d.Sections)
	copy(out.Items, d.Items)
	return out
}

// Section returns the section with exactly the given name.
func (d Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// HasSectionFold reports whether a section name matches case-insensitively.
func (d Document) HasSectionFold(name string) bool {
	for _, s := range d.Sections {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// EnsureAll prepends the All section when it is missing. It reports whether
// the document changed.
func (d *Document) EnsureAll() bool {
	if _, ok := d.Section(AllSection); ok {
		return false
	}
	d.Sections = append([]Section{{ID: NewID(), Name: AllSection}}, d.Sections...)
	return true
}

// RepairSections moves items whose section does not exist into All and
// returns the ids of the moved items.
func (d *Document) RepairSections() []string {
	var moved []string
	for i := range d.Items {
		name := d.Items[i].SectionName
		if name == AllSection {
			continue
		}
		if _, ok := d.Section(name); ok {
			continue
		}
		d.Items[i].SectionName = AllSection
		moved = append(moved, d.Items[i].ID)
	}
	return moved
}

// Marshal renders the document as indented JSON.
func Marshal(d Document) ([]byte, error) {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	if d.Items == nil {
		d.Items = []Item{}
	}
	return json.MarshalIndent(d, "", "  ")
}

type wireDocument struct {
	Sections *[]Section  `json:"sections"`
	Items    *[]wireItem `json:"items"`
}

// wireItem accepts both the current field names and the ones written by the
// browser version of the album (type/url, youtube kind).
type wireItem struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	URL         string    `json:"url"`
	VideoID     string    `json:"videoId"`
	SectionName string    `json:"sectionName"`
	CreatedAt   Timestamp `json:"createdAt"`
	Position    *int      `json:"position"`
}

// Decode parses a document. Both the sections and items keys must be present.
// Items without a position get their index in the array; items without an id
// get a fresh one.
func Decode(data []byte) (Document, error) {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return Document{}, fmt.Errorf("media: decode document: %w", err)
	}
	if wire.Sections == nil {
		return Document{}, ErrMissingSections
	}
	if wire.Items == nil {
		return Document{}, ErrMissingItems
	}

	doc := Document{
		Sections: make([]Section, 0, len(*wire.Sections)),
		Items:    make([]Item, 0, len(*wire.Items)),
	}
	for _, s := range *wire.Sections {
		if s.ID == "" {
			s.ID = NewID()
		}
		doc.Sections = append(doc.Sections, s)
	}
	for idx, w := range *wire.Items {
		it, err := w.item(idx)
		if err != nil {
			return Document{}, fmt.Errorf("media: item %d: %w", idx, err)
		}
		doc.Items = append(doc.Items, it)
	}
	doc.renameBrowserAll()
	return doc, nil
}

// browserAllSection is the name the browser version of the album gave to the
// section that shows everything.
const browserAllSection = "Todos"

// renameBrowserAll turns the browser album's everything section into All.
// Documents that already have an All section keep Todos as a plain section.
func (d *Document) renameBrowserAll() {
	if _, ok := d.Section(AllSection); ok {
		return
	}
	found := false
	for i := range d.Sections {
		if d.Sections[i].Name == browserAllSection {
			d.Sections[i].Name = AllSection
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i := range d.Items {
		if d.Items[i].SectionName == browserAllSection {
			d.Items[i].SectionName = AllSection
		}
	}
}

func (w wireItem) item(idx int) (Item, error) {
	rawKind := w.Kind
	if rawKind == "" {
		rawKind = w.Type
	}
	kind, err := ParseKind(rawKind)
	if err != nil {
		return Item{}, err
	}
	src := w.SourceURL
	if src == "" {
		src = w.URL
	}
	it := Item{
		ID:          w.ID,
		Kind:        kind,
		Title:       w.Title,
		SourceURL:   src,
		VideoID:     w.VideoID,
		SectionName: w.SectionName,
		CreatedAt:   w.CreatedAt,
		Position:    idx,
	}
	if it.ID == "" {
		it.ID = NewID()
	}
	if it.SectionName == "" {
		it.SectionName = AllSection
	}
	if w.Position != nil {
		it.Position = *w.Position
	}
	return it, nil
}
