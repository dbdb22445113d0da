package domain

// Suite represents a suite file or directory.
// Built once by the loader; readers must not modify it.
type Suite struct {
	Name     string      // Suite name derived from the source
	FullName string      // Parent full name and Name joined by "."
	Source   string      // File or directory the suite was built from
	Doc      string      // Suite documentation
	Tests    []*TestCase // Direct test cases in declared order
	Suites   []*Suite    // Child suites in declared order
}

// CountTests returns the number of test cases in the subtree rooted at s.
func (s *Suite) CountTests() int {
	count := len(s.Tests)
	for _, child := range s.Suites {
		count += child.CountTests()
	}
	return count
}
