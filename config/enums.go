package config

// Specification of requested output ordering.
// ENUM(none, sections, full)
type SortMode int

// Sections reports whether section order should be normalized.
func (m SortMode) Sections() bool {
	return m == SortModeSections || m == SortModeFull
}

// Keys reports whether key order inside sections should be normalized.
func (m SortMode) Keys() bool {
	return m == SortModeFull
}
