package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"inikit/ini/comment"
)

func TestNew(t *testing.T) {
	t.Run("nil value", func(t *testing.T) {
		if _, err := New(nil, OriginCreated, 3, 10, nil); err != ErrNilValue {
			t.Errorf("expected ErrNilValue, got %v", err)
		}
	})

	t.Run("folds on construction", func(t *testing.T) {
		v, err := New([]byte("aaaa bbbb cccc"), OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.String(); got != "aaaa bbbb cccc" {
			t.Errorf("canonical = %q", got)
		}
		want := []string{"aaaa", " bbbb cccc"}
		if diff := cmp.Diff(want, parts(v.Fragments())); diff != "" {
			t.Errorf("unexpected fragments (-want +got):\n%s", diff)
		}
		if v.Line() != 0 {
			t.Errorf("created value reports line %d", v.Line())
		}
		if v.Origin() != OriginCreated {
			t.Errorf("origin = %v", v.Origin())
		}
	})

	t.Run("empty value", func(t *testing.T) {
		v, err := New([]byte{}, OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		if v.Fragments().Len() != 1 || len(v.Fragments().Get(0)) != 0 {
			t.Errorf("empty value folded to %q", parts(v.Fragments()))
		}
	})

	t.Run("input is copied", func(t *testing.T) {
		buf := []byte("abc")
		v, err := New(buf, OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		buf[0] = 'X'
		if got := v.String(); got != "abc" {
			t.Errorf("canonical changed to %q after caller reused the input", got)
		}
	})
}

func TestFromFragments(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		if _, err := FromFragments(nil, 5, OriginFile, 3, 10, nil); err != ErrNoFragments {
			t.Errorf("expected ErrNoFragments, got %v", err)
		}
	})

	t.Run("unfolds on construction", func(t *testing.T) {
		frags := NewFragments()
		frags.Append([]byte("aaaa"))
		frags.Append([]byte(" bbbb cccc"))

		v, err := FromFragments(frags, 12, OriginFile, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.String(); got != "aaaa bbbb cccc" {
			t.Errorf("canonical = %q", got)
		}
		if v.Line() != 12 {
			t.Errorf("line = %d, want 12", v.Line())
		}
		if v.Origin() != OriginFile {
			t.Errorf("origin = %v", v.Origin())
		}
		// fragments stay as given, they are authoritative
		want := []string{"aaaa", " bbbb cccc"}
		if diff := cmp.Diff(want, parts(v.Fragments())); diff != "" {
			t.Errorf("unexpected fragments (-want +got):\n%s", diff)
		}
	})
}

func TestSetKeyLen(t *testing.T) {
	v, err := New([]byte("aa bb cc dd"), OriginCreated, 3, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"aa", " bb cc dd"}, parts(v.Fragments())); diff != "" {
		t.Fatalf("unexpected initial fragments (-want +got):\n%s", diff)
	}

	v.SetKeyLen(0)

	// refolded to the wider first line, canonical untouched
	if diff := cmp.Diff([]string{"aa bb", " cc dd"}, parts(v.Fragments())); diff != "" {
		t.Errorf("unexpected fragments after SetKeyLen (-want +got):\n%s", diff)
	}
	if got := v.String(); got != "aa bb cc dd" {
		t.Errorf("canonical changed to %q", got)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("nil value", func(t *testing.T) {
		v, err := New([]byte("old"), OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := v.Update(nil, OriginCreated, 10); err != ErrNilValue {
			t.Errorf("expected ErrNilValue, got %v", err)
		}
	})

	t.Run("refolds completely", func(t *testing.T) {
		v, err := New([]byte("aaaa bbbb cccc"), OriginFile, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}

		next := "one two three four five six seven"
		if err := v.Update([]byte(next), OriginCreated, 20); err != nil {
			t.Fatal(err)
		}

		if got := v.String(); got != next {
			t.Errorf("canonical = %q", got)
		}
		if v.Origin() != OriginCreated {
			t.Errorf("origin = %v", v.Origin())
		}
		if v.Boundary() != 20 {
			t.Errorf("boundary = %d", v.Boundary())
		}

		// fragments must match a fresh fold, no leftovers from the old value
		fresh, err := New([]byte(next), OriginCreated, 3, 20, nil)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(parts(fresh.Fragments()), parts(v.Fragments())); diff != "" {
			t.Errorf("updated fragments differ from a fresh fold (-fresh +updated):\n%s", diff)
		}
	})
}

func TestComments(t *testing.T) {
	mustComment := func(t *testing.T, lines ...string) *comment.Comment {
		t.Helper()
		c, err := comment.Build(lines...)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	t.Run("extract transfers ownership", func(t *testing.T) {
		c := mustComment(t, "; first", "; second")
		v, err := New([]byte("x"), OriginCreated, 3, 10, c)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.ExtractComment(); got != c {
			t.Error("extracted comment is not the attached one")
		}
		if v.Comment() != nil {
			t.Error("value still holds the comment after extraction")
		}
		if v.ExtractComment() != nil {
			t.Error("second extraction returned a comment")
		}
	})

	t.Run("put replaces a different comment", func(t *testing.T) {
		v, err := New([]byte("x"), OriginCreated, 3, 10, mustComment(t, "; old"))
		if err != nil {
			t.Fatal(err)
		}
		next := mustComment(t, "; new")
		v.PutComment(next)
		if v.Comment() != next {
			t.Error("comment was not replaced")
		}
	})

	t.Run("put of the identical comment is a no-op", func(t *testing.T) {
		c := mustComment(t, "; same")
		v, err := New([]byte("x"), OriginCreated, 3, 10, c)
		if err != nil {
			t.Fatal(err)
		}
		v.PutComment(c)
		if v.Comment() != c {
			t.Error("comment changed")
		}
	})
}

func TestSerialize(t *testing.T) {
	t.Run("folded value", func(t *testing.T) {
		v, err := New([]byte("aaaa bbbb cccc"), OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := "foo = aaaa\n bbbb cccc\n"
		if got := string(v.Serialize("foo")); got != want {
			t.Errorf("serialized = %q, want %q", got, want)
		}
	})

	t.Run("single line", func(t *testing.T) {
		v, err := New([]byte("short"), OriginCreated, 3, 100, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := "foo = short\n"
		if got := string(v.Serialize("foo")); got != want {
			t.Errorf("serialized = %q, want %q", got, want)
		}
	})

	t.Run("comment comes first", func(t *testing.T) {
		c, err := comment.Build("; one", "; two")
		if err != nil {
			t.Fatal(err)
		}
		v, err := New([]byte("x"), OriginCreated, 3, 100, c)
		if err != nil {
			t.Fatal(err)
		}
		want := "; one\n; two\nkey = x\n"
		if got := string(v.Serialize("key")); got != want {
			t.Errorf("serialized = %q, want %q", got, want)
		}
	})

	t.Run("refolds when key length changed", func(t *testing.T) {
		v, err := New([]byte("aa bb cc dd"), OriginCreated, 3, 10, nil)
		if err != nil {
			t.Fatal(err)
		}
		// single character key leaves more room on the first line
		want := "k = aa bb\n cc dd\n"
		if got := string(v.Serialize("k")); got != want {
			t.Errorf("serialized = %q, want %q", got, want)
		}
	})
}

func TestOriginEnum(t *testing.T) {
	if OriginFile.String() != "file" || OriginCreated.String() != "created" {
		t.Errorf("unexpected names: %q %q", OriginFile, OriginCreated)
	}
	if o, err := ParseOrigin("created"); err != nil || o != OriginCreated {
		t.Errorf("ParseOrigin(created) = %v, %v", o, err)
	}
	if _, err := ParseOrigin("bogus"); err == nil {
		t.Error("ParseOrigin accepted bogus input")
	}
}
