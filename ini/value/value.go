// Package value implements the representation of a single configuration
// value which may span multiple physical lines in the file (continuation
// lines). The value is kept in two forms at the same time: the canonical
// one-line form and the folded physical-line fragments. Whichever form the
// value was built from, the other one is derived immediately, so both are
// always consistent.
package value

import (
	"bytes"
	"errors"

	"inikit/ini/comment"
)

// Origin tells where the value came from.
// ENUM(file, created)
type Origin int

var (
	// ErrNoFragments is returned when a required fragment store is absent.
	ErrNoFragments = errors.New("fragment store is required")
	// ErrNilValue is returned when a nil value slice is passed where value
	// bytes are required. An empty value is legal, a missing one is not.
	ErrNilValue = errors.New("value bytes are required")
)

// Value is a single configuration value together with its positioning
// metadata and an optionally attached comment. Value is not safe for
// concurrent mutation, callers must serialize access.
type Value struct {
	fragments *Fragments // folded physical form
	canonical []byte     // unfolded logical form
	origin    Origin
	line      int // line in the source file, 0 when origin is not a file
	keyLen    int // byte length of the key this value belongs to
	boundary  int // maximum physical line width used when folding
	comment   *comment.Comment
}

// FromFragments builds a value from physical lines read from a file. The
// fragments are authoritative, the canonical form is derived by unfolding.
// The value takes ownership of the store and of the comment.
func FromFragments(frags *Fragments, line int, origin Origin, keyLen, boundary int, c *comment.Comment) (*Value, error) {
	if frags == nil {
		return nil, ErrNoFragments
	}
	return &Value{
		fragments: frags,
		canonical: unfold(frags),
		origin:    origin,
		line:      line,
		keyLen:    keyLen,
		boundary:  boundary,
		comment:   c,
	}, nil
}

// New builds a value from a flat logical string. The canonical form is
// authoritative, the fragments are derived by folding. The input bytes are
// copied. The value takes ownership of the comment.
func New(val []byte, origin Origin, keyLen, boundary int, c *comment.Comment) (*Value, error) {
	if val == nil {
		return nil, ErrNilValue
	}
	v := &Value{
		fragments: NewFragments(),
		canonical: bytes.Clone(val),
		origin:    origin,
		keyLen:    keyLen,
		boundary:  boundary,
		comment:   c,
	}
	fold(v.canonical, v.keyLen, v.boundary, v.fragments)
	return v, nil
}

// Bytes returns the canonical (unfolded) value. The returned slice is a
// view into the value and must not be modified.
func (v *Value) Bytes() []byte {
	return v.canonical
}

// String returns the canonical value as a string.
func (v *Value) String() string {
	return string(v.canonical)
}

// Origin returns where the value came from.
func (v *Value) Origin() Origin {
	return v.origin
}

// Line returns the line number in the originating file, 0 when the value
// was created in memory.
func (v *Value) Line() int {
	return v.line
}

// Boundary returns the physical line width the value folds to.
func (v *Value) Boundary() int {
	return v.boundary
}

// Fragments returns the folded physical form of the value. The store is
// owned by the value and must not be modified.
func (v *Value) Fragments() *Fragments {
	return v.fragments
}

// SetKeyLen records the new key length and refolds the existing canonical
// value, the first physical line budget depends on it. The canonical form
// is not touched.
func (v *Value) SetKeyLen(keyLen int) {
	v.keyLen = keyLen
	fold(v.canonical, v.keyLen, v.boundary, v.fragments)
}

// Update replaces the value with the given bytes, records the new origin
// and boundary, and refolds. The previous canonical form and fragments are
// discarded completely, never mixed with the new ones.
func (v *Value) Update(val []byte, origin Origin, boundary int) error {
	if val == nil {
		return ErrNilValue
	}
	v.canonical = bytes.Clone(val)
	v.origin = origin
	v.boundary = boundary
	fold(v.canonical, v.keyLen, v.boundary, v.fragments)
	return nil
}

// Comment returns the attached comment without transferring ownership.
// Nil when no comment is attached.
func (v *Value) Comment() *comment.Comment {
	return v.comment
}

// ExtractComment detaches the comment from the value and transfers
// ownership to the caller. The value is left with no comment.
func (v *Value) ExtractComment() *comment.Comment {
	c := v.comment
	v.comment = nil
	return c
}

// PutComment attaches the comment to the value, replacing the present one
// if it is different. Attaching the comment the value already owns is a
// no-op.
func (v *Value) PutComment(c *comment.Comment) {
	if v.comment == c {
		return
	}
	v.comment = c
}

// Serialize produces the on-disk physical form of the key/value pair: the
// attached comment lines, then "key = " followed by the value fragments,
// one per line. When the key length differs from the one the value was
// folded with, the value is refolded first so the first line fits the
// boundary with this key.
func (v *Value) Serialize(key string) []byte {
	var buf bytes.Buffer
	v.SerializeTo(&buf, key)
	return buf.Bytes()
}

// SerializeTo is Serialize appending to the caller's buffer.
func (v *Value) SerializeTo(buf *bytes.Buffer, key string) {
	if len(key) != v.keyLen {
		v.SetKeyLen(len(key))
	}
	for i := range v.comment.Len() {
		buf.Write(v.comment.Line(i))
		buf.WriteByte('\n')
	}
	buf.WriteString(key)
	buf.WriteString(" = ")
	for frag := range v.fragments.All() {
		buf.Write(frag)
		buf.WriteByte('\n')
	}
}
