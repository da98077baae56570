package ini

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileSetGet(t *testing.T) {
	f := NewFile()

	if err := f.Set("db", "host", []byte("localhost"), DefaultBoundary); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("", "root", []byte("yes"), DefaultBoundary); err != nil {
		t.Fatal(err)
	}

	v, ok := f.Get("db", "host")
	if !ok || v.String() != "localhost" {
		t.Fatalf("db.host = %v, %v", v, ok)
	}
	if _, ok := f.Get("db", "missing"); ok {
		t.Error("found a key which was never set")
	}
	if _, ok := f.Get("missing", "host"); ok {
		t.Error("found a section which was never created")
	}

	t.Run("update in place", func(t *testing.T) {
		if err := f.Set("db", "host", []byte("remote"), DefaultBoundary); err != nil {
			t.Fatal(err)
		}
		v, _ := f.Get("db", "host")
		if v.String() != "remote" {
			t.Errorf("db.host = %q after update", v)
		}
		if got := f.Section("db").Keys(); len(got) != 1 {
			t.Errorf("update duplicated the key: %v", got)
		}
	})
}

func TestFileDelete(t *testing.T) {
	f := NewFile()
	if err := f.Set("s", "a", []byte("1"), DefaultBoundary); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("s", "b", []byte("2"), DefaultBoundary); err != nil {
		t.Fatal(err)
	}

	if !f.Section("s").Delete("a") {
		t.Error("Delete reported missing key")
	}
	if f.Section("s").Delete("a") {
		t.Error("Delete reported deleting twice")
	}
	if diff := cmp.Diff([]string{"b"}, f.Section("s").Keys()); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}

	if !f.DeleteSection("s") {
		t.Error("DeleteSection reported missing section")
	}
	if f.Section("s") != nil {
		t.Error("section still present after DeleteSection")
	}
	if f.DeleteSection("") {
		t.Error("default section must not be removable")
	}
}

func TestFileSerialize(t *testing.T) {
	f := NewFile()
	if err := f.Set("", "root", []byte("yes"), 80); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("db", "host", []byte("localhost"), 80); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("db", "note", []byte("aaaa bbbb cccc"), 10); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"root = yes",
		"[db]",
		"host = localhost",
		"note = aaaa",
		" bbbb cccc",
		"",
	}, "\n")
	if got := string(f.Serialize()); got != want {
		t.Errorf("serialized:\n%s\nwant:\n%s", got, want)
	}
}

func TestFileSort(t *testing.T) {
	f := NewFile()
	for _, kv := range []struct{ section, key string }{
		{"s10", "x"},
		{"s2", "key10"},
		{"s2", "key2"},
		{"", "z"},
		{"", "a"},
	} {
		if err := f.Set(kv.section, kv.key, []byte("v"), DefaultBoundary); err != nil {
			t.Fatal(err)
		}
	}

	f.Sort()

	var names []string
	for _, s := range f.Sections() {
		names = append(names, s.Name())
	}
	// natural order: s2 before s10, default section first
	if diff := cmp.Diff([]string{"", "s2", "s10"}, names); diff != "" {
		t.Errorf("unexpected section order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"key2", "key10"}, f.Section("s2").Keys()); diff != "" {
		t.Errorf("unexpected key order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "z"}, f.Section("").Keys()); diff != "" {
		t.Errorf("unexpected default section key order (-want +got):\n%s", diff)
	}
}

func TestFileRefold(t *testing.T) {
	f, err := NewParser(testLogger(t)).Parse([]byte("note = aaaa bbbb cccc\n"))
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Refold(10); err != nil {
		t.Fatal(err)
	}

	want := "note = aaaa\n bbbb cccc\n"
	if got := string(f.Serialize()); got != want {
		t.Errorf("refolded output %q, want %q", got, want)
	}

	// value itself is untouched
	v, _ := f.Get("", "note")
	if v.String() != "aaaa bbbb cccc" {
		t.Errorf("canonical changed to %q", v)
	}
}
