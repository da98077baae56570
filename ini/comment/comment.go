// Package comment implements the comment block which can be attached to a
// configuration key or section. A comment is an ordered list of physical
// lines kept exactly as they appear in the file, markers included.
package comment

import (
	"bytes"
	"errors"
)

// ErrMalformed is returned when a line does not look like a comment.
var ErrMalformed = errors.New("comment line must be empty or start with ';' or '#'")

// Comment keeps ordered comment lines. Zero value is ready to use.
type Comment struct {
	lines [][]byte
}

// New creates an empty comment.
func New() *Comment {
	return &Comment{}
}

// Build creates a comment from the given lines, validating each one.
func Build(lines ...string) (*Comment, error) {
	c := New()
	for _, line := range lines {
		if err := c.Append([]byte(line)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Append adds a line to the comment. The line must be empty or start with
// one of the comment markers. The bytes are copied.
func (c *Comment) Append(line []byte) error {
	if len(line) != 0 && line[0] != ';' && line[0] != '#' {
		return ErrMalformed
	}
	c.lines = append(c.lines, bytes.Clone(line))
	return nil
}

// Len returns number of lines in the comment. Safe on nil receiver.
func (c *Comment) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

// Line returns i-th line of the comment or nil when i is out of range.
// Returned slice must not be modified.
func (c *Comment) Line(i int) []byte {
	if c == nil || i < 0 || i >= len(c.lines) {
		return nil
	}
	return c.lines[i]
}

// Equal reports whether two comments have identical lines.
func (c *Comment) Equal(o *Comment) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i := range c.Len() {
		if !bytes.Equal(c.Line(i), o.Line(i)) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the comment. Nil copies to nil.
func (c *Comment) Copy() *Comment {
	if c == nil {
		return nil
	}
	n := New()
	for _, line := range c.lines {
		n.lines = append(n.lines, bytes.Clone(line))
	}
	return n
}
