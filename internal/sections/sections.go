// Package sections holds the free-form document model: an ordered list of
// typed content blocks built incrementally during an editing session.
package sections

import (
	"strings"

	"github.com/google/uuid"
)

// Section kinds.
const (
	KindText      = "text"
	KindTable     = "table"
	KindImage     = "image"
	KindSignature = "signature"
)

// ValidKind reports whether k is a known section kind.
func ValidKind(k string) bool {
	switch k {
	case KindText, KindTable, KindImage, KindSignature:
		return true
	}
	return false
}

// Section is one typed block within a free-form document.
type Section struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	WidthPercent int    `json:"width_percent"`
	HeightPixels int    `json:"height_pixels"`
}

// Model is the ordered collection of sections for one editing session.
// Sequence order is creation order; deletion removes in place. At most one
// section is selected at a time. The zero value is ready to use.
//
// The model belongs to a single session and is mutated by exactly one caller,
// so it carries no locking.
type Model struct {
	sections []Section
	selected string
}

// defaultHeight returns the initial pixel height for a new section of kind k.
func defaultHeight(kind string) int {
	switch kind {
	case KindText:
		return 200
	case KindTable:
		return 300
	default:
		return 150
	}
}

// Add appends a new section of the given kind and returns it. Ids are fresh
// for the lifetime of the session and never reused, even after deletion.
func (m *Model) Add(kind string) Section {
	s := Section{
		ID:           uuid.NewString(),
		Kind:         kind,
		Title:        titleFor(kind),
		Body:         "",
		WidthPercent: 100,
		HeightPixels: defaultHeight(kind),
	}
	m.sections = append(m.sections, s)
	return s
}

// Patch carries partial updates to a section. Nil fields are left untouched;
// id and kind are immutable.
type Patch struct {
	Title        *string
	Body         *string
	WidthPercent *int
	HeightPixels *int
}

// Update merges the patch into the section matching id. Unknown ids are a
// silent no-op so the editing surface survives stale references.
func (m *Model) Update(id string, p Patch) {
	for i := range m.sections {
		if m.sections[i].ID != id {
			continue
		}
		if p.Title != nil {
			m.sections[i].Title = *p.Title
		}
		if p.Body != nil {
			m.sections[i].Body = *p.Body
		}
		if p.WidthPercent != nil {
			m.sections[i].WidthPercent = *p.WidthPercent
		}
		if p.HeightPixels != nil {
			m.sections[i].HeightPixels = *p.HeightPixels
		}
		return
	}
}

// Delete removes the section matching id, preserving the order of the rest.
// Deleting the selected section clears the selection. Unknown ids are a
// no-op.
func (m *Model) Delete(id string) {
	for i := range m.sections {
		if m.sections[i].ID == id {
			m.sections = append(m.sections[:i], m.sections[i+1:]...)
			if m.selected == id {
				m.selected = ""
			}
			return
		}
	}
}

// Select sets the selection pointer. Existence is not validated: selection is
// advisory editing state, and a dangling id simply means nothing is selected.
func (m *Model) Select(id string) {
	m.selected = id
}

// Selected returns the currently selected section id, or empty string.
func (m *Model) Selected() string {
	return m.selected
}

// Sections returns the sections in sequence order. The returned slice is a
// copy; mutating it does not affect the model.
func (m *Model) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// Len returns the number of sections.
func (m *Model) Len() int {
	return len(m.sections)
}

// Flatten renders the model to a single content string, concatenating each
// section in sequence order. Non-text kinds degrade to bracketed placeholder
// text; binary embedding belongs to the export encoder.
func (m *Model) Flatten() string {
	var b strings.Builder
	for i, s := range m.sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if s.Title != "" {
			b.WriteString("## ")
			b.WriteString(s.Title)
			b.WriteString("\n")
		}
		switch s.Kind {
		case KindText:
			b.WriteString(s.Body)
		case KindTable:
			b.WriteString("[table]")
		case KindImage:
			b.WriteString("[image]")
		case KindSignature:
			b.WriteString("[signature]")
		}
	}
	return b.String()
}

// titleFor builds the default title, e.g. "Text Section".
func titleFor(kind string) string {
	if kind == "" {
		return "Section"
	}
	return strings.ToUpper(kind[:1]) + kind[1:] + " Section"
}
