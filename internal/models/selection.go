package models

import (
	"dictview/internal/dictionary"
	"dictview/internal/store"
)

const NoDictionaryTitle = "No dictionary selected"

// Selection holds the known dictionaries, the active one and the selected
// entry. It is owned by the UI loop and carries no locking.
type Selection struct {
	sources    []store.Source
	active     int
	dictionary dictionary.Dictionary
	selected   int
}

func NewSelection() *Selection {
	return &Selection{active: -1, selected: -1}
}

// SetSources replaces the known dictionaries. The active dictionary stays
// active only if it is still listed.
func (s *Selection) SetSources(sources []store.Source) {
	var current string
	if src, ok := s.Active(); ok {
		current = src.Name
	}

	s.sources = append([]store.Source(nil), sources...)
	s.active = s.indexOf(current)
	if s.active < 0 {
		s.dictionary = dictionary.Dictionary{}
		s.selected = -1
	}
}

func (s *Selection) Sources() []store.Source {
	return s.sources
}

// Names returns the menu labels in source order.
func (s *Selection) Names() []string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name
	}
	return names
}

func (s *Selection) Source(name string) (store.Source, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return store.Source{}, false
	}
	return s.sources[i], true
}

// Activate makes name the active dictionary with the given contents and
// selects its first entry. Unknown names leave the state untouched.
func (s *Selection) Activate(name string, d dictionary.Dictionary) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}
	s.active = i
	s.dictionary = d
	s.selected = -1
	if len(d.Entries) > 0 {
		s.selected = 0
	}
	return true
}

func (s *Selection) Active() (store.Source, bool) {
	if s.active < 0 || s.active >= len(s.sources) {
		return store.Source{}, false
	}
	return s.sources[s.active], true
}

func (s *Selection) Entries() []dictionary.Entry {
	return s.dictionary.Entries
}

// Select marks entry i as displayed.
func (s *Selection) Select(i int) (dictionary.Entry, bool) {
	if i < 0 || i >= len(s.dictionary.Entries) {
		return dictionary.Entry{}, false
	}
	s.selected = i
	return s.dictionary.Entries[i], true
}

// SelectedIndex is -1 when nothing is selected.
func (s *Selection) SelectedIndex() int {
	return s.selected
}

func (s *Selection) Detail() string {
	if s.selected < 0 || s.selected >= len(s.dictionary.Entries) {
		return ""
	}
	return s.dictionary.Entries[s.selected].Description
}

// Title prefers the dictionary's own name over its file name.
func (s *Selection) Title() string {
	src, ok := s.Active()
	if !ok {
		return NoDictionaryTitle
	}
	if s.dictionary.Name != "" {
		return s.dictionary.Name
	}
	return src.Name
}

func (s *Selection) Description() string {
	return s.dictionary.Description
}

func (s *Selection) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, src := range s.sources {
		if src.Name == name {
			return i
		}
	}
	return -1
}
