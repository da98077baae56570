package ini

import (
	"bytes"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"inikit/ini/comment"
	"inikit/ini/value"
)

// Section is a named group of configuration keys. Key order is the order of
// appearance in the file (or of creation) and is preserved on output.
type Section struct {
	name    string
	line    int // line of the section header, 0 when created in memory
	comment *comment.Comment
	keys    []string
	values  map[string]*value.Value
}

func newSection(name string, line int) *Section {
	return &Section{
		name:   name,
		line:   line,
		values: make(map[string]*value.Value),
	}
}

// Name returns the section name. The default section has an empty name.
func (s *Section) Name() string {
	return s.name
}

// Line returns the line number of the section header in the source file.
func (s *Section) Line() int {
	return s.line
}

// Comment returns the comment attached to the section header, nil when
// there is none.
func (s *Section) Comment() *comment.Comment {
	return s.comment
}

// PutComment attaches a comment to the section header, replacing any
// present one.
func (s *Section) PutComment(c *comment.Comment) {
	s.comment = c
}

// Keys returns key names in their current order.
func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// Get returns the value of the key.
func (s *Section) Get(key string) (*value.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set updates the key with the given value, creating the key when it does
// not exist yet. New and updated values fold to the given boundary.
func (s *Section) Set(key string, val []byte, boundary int) error {
	if v, ok := s.values[key]; ok {
		return v.Update(val, value.OriginCreated, boundary)
	}
	v, err := value.New(val, value.OriginCreated, len(key), boundary, nil)
	if err != nil {
		return err
	}
	s.put(key, v)
	return nil
}

// Delete removes the key. Reports whether the key existed.
func (s *Section) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
	return true
}

// put stores the value preserving first-seen key order. A repeated key
// replaces the previous value but keeps its position.
func (s *Section) put(key string, v *value.Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// refold folds every value in the section to the new boundary.
func (s *Section) refold(boundary int) error {
	for _, key := range s.keys {
		v := s.values[key]
		if err := v.Update(v.Bytes(), v.Origin(), boundary); err != nil {
			return err
		}
	}
	return nil
}

// sortKeys orders keys naturally (numeric runs compare by value).
func (s *Section) sortKeys() {
	sort.SliceStable(s.keys, func(i, j int) bool {
		return natural.Less(s.keys[i], s.keys[j])
	})
}

func (s *Section) serializeTo(buf *bytes.Buffer) {
	if s.name != "" || s.comment.Len() > 0 {
		for i := range s.comment.Len() {
			buf.Write(s.comment.Line(i))
			buf.WriteByte('\n')
		}
	}
	if s.name != "" {
		buf.WriteByte('[')
		buf.WriteString(s.name)
		buf.WriteString("]\n")
	}
	for _, key := range s.keys {
		s.values[key].SerializeTo(buf, key)
	}
}
