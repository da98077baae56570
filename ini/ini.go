// Package ini implements a configuration file model which preserves what
// makes hand-written files readable: section and key order, comments
// attached to the entry below them, and values folded over continuation
// lines. Long values are folded to a width boundary on output, lines are
// broken at whitespace (see inikit/ini/value for the exact rules).
package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"inikit/ini/comment"
	"inikit/ini/value"
)

// DefaultBoundary is the fold width used when the caller does not request
// a specific one.
const DefaultBoundary = 80

// File is an ordered collection of sections. Keys which appear before any
// section header live in the default section with the empty name.
type File struct {
	sections []*Section
	index    map[string]*Section
	trailing *comment.Comment // comment at the end of file, owned by no key
}

// NewFile creates an empty file with just the default section.
func NewFile() *File {
	f := &File{index: make(map[string]*Section)}
	f.AddSection("")
	return f
}

// Load reads, decodes and parses the file at the given path.
func Load(path string, log *zap.Logger) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	text, err := DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", path, err)
	}
	f, err := NewParser(log).Parse(text, path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	return f, nil
}

// Section returns the named section or nil when it does not exist.
func (f *File) Section(name string) *Section {
	return f.index[name]
}

// AddSection returns the named section, creating it when necessary.
func (f *File) AddSection(name string) *Section {
	if s, ok := f.index[name]; ok {
		return s
	}
	s := newSection(name, 0)
	f.sections = append(f.sections, s)
	f.index[name] = s
	return s
}

// DeleteSection removes the named section with all its keys. Reports
// whether the section existed. The default section cannot be removed.
func (f *File) DeleteSection(name string) bool {
	if name == "" {
		return false
	}
	s, ok := f.index[name]
	if !ok {
		return false
	}
	delete(f.index, name)
	for i, cur := range f.sections {
		if cur == s {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			break
		}
	}
	return true
}

// Sections returns all sections in their current order.
func (f *File) Sections() []*Section {
	return f.sections
}

// Get returns the value of the key in the named section.
func (f *File) Get(section, key string) (*value.Value, bool) {
	s, ok := f.index[section]
	if !ok {
		return nil, false
	}
	return s.Get(key)
}

// Set updates the key in the named section, creating both when necessary.
func (f *File) Set(section, key string, val []byte, boundary int) error {
	return f.AddSection(section).Set(key, val, boundary)
}

// Refold folds every value in the file to the new boundary.
func (f *File) Refold(boundary int) error {
	for _, s := range f.sections {
		if err := s.refold(boundary); err != nil {
			return err
		}
	}
	return nil
}

// SortSections orders sections naturally, leaving keys inside each
// section alone. The default section always stays first.
func (f *File) SortSections() {
	sort.SliceStable(f.sections, func(i, j int) bool {
		a, b := f.sections[i].name, f.sections[j].name
		if a == "" || b == "" {
			return a == ""
		}
		return natural.Less(a, b)
	})
}

// Sort orders sections and keys naturally. The default section always
// stays first.
func (f *File) Sort() {
	f.SortSections()
	for _, s := range f.sections {
		s.sortKeys()
	}
}

// Serialize produces the on-disk text of the whole file.
func (f *File) Serialize() []byte {
	var buf bytes.Buffer
	for _, s := range f.sections {
		s.serializeTo(&buf)
	}
	for i := range f.trailing.Len() {
		buf.Write(f.trailing.Line(i))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteTo writes the serialized file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Serialize())
	return int64(n), err
}
