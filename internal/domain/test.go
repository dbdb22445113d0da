package domain

// TestCase represents a single test case within a suite
type TestCase struct {
	Name     string   // Test case name as declared
	FullName string   // Enclosing suite names and the test name joined by "."
	Tags     []string // Tags in declared order, may be empty
	Doc      string   // Documentation, empty when not set
}

// HasTags reports whether any tag is set. A nil and an empty tag list are the same.
func (tc *TestCase) HasTags() bool {
	return len(tc.Tags) > 0
}

// HasDoc reports whether documentation is set. Absent and empty are the same.
func (tc *TestCase) HasDoc() bool {
	return tc.Doc != ""
}
