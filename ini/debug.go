package ini

import (
	"strconv"

	"inikit/utils/debug"
)

// DebugDump renders the parsed structure of the file for troubleshooting:
// every section and key with its source line, origin and fragments.
func (f *File) DebugDump() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "file: %d section(s)", len(f.sections))
	for _, s := range f.sections {
		tw.Line(1, "section %q (line %d, %d key(s))", s.name, s.line, len(s.keys))
		for _, k := range s.keys {
			v := s.values[k]
			tw.Line(2, "key %q (line %d, origin %s, boundary %d)", k, v.Line(), v.Origin(), v.Boundary())
			tw.TextBlock(3, "value", v.String())
			var i int
			for frag := range v.Fragments().All() {
				tw.TextBlock(3, "fragment "+strconv.Itoa(i), string(frag))
				i++
			}
		}
	}
	return tw.String()
}
