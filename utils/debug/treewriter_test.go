package debug

import (
	"testing"
)

func TestTreeWriterLine(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "root", nil, "root\n"},
		{"depth 1", 1, "child", nil, "  child\n"},
		{"with formatting", 2, "key %q (line %d)", []any{"host", 3}, "    key \"host\" (line 3)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterTextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value stays unquoted", 0, "value", "", "value: \n"},
		{"plain value", 1, "value", "localhost", "  value: \"localhost\"\n"},
		{"leading blank stays visible", 1, "fragment", " bbbb cccc", "  fragment: \" bbbb cccc\"\n"},
		{"control characters escaped", 0, "value", "a\tb\nc", "value: \"a\\tb\\nc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterTree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "file: %d section(s)", 1)
	tw.Line(1, "section %q", "db")
	tw.TextBlock(2, "value", "localhost")
	tw.TextBlock(2, "fragment 0", "localhost")

	want := "file: 1 section(s)\n" +
		"  section \"db\"\n" +
		"    value: \"localhost\"\n" +
		"    fragment 0: \"localhost\"\n"
	if got := tw.String(); got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}
