package collector

import (
	"fmt"
	"io"
	"strings"

	"tcl/internal/domain"
)

const (
	// NoTagsPlaceholder is printed when a test case has no tags
	NoTagsPlaceholder = "no tags were set"
	// NoDocPlaceholder is printed when a test case has no documentation
	NoDocPlaceholder = "no documentation available"
)

// Collector prints one record per test case of a suite tree
type Collector struct {
	out io.Writer
}

// New creates a Collector writing records to out
func New(out io.Writer) *Collector {
	return &Collector{out: out}
}

// Collect writes the records of every test case under suite.
// A suite's own tests are written before its child suites are visited.
func (c *Collector) Collect(suite *domain.Suite) error {
	for _, test := range suite.Tests {
		if _, err := io.WriteString(c.out, FormatTestCase(test)); err != nil {
			return fmt.Errorf("write test case %s: %w", test.FullName, err)
		}
	}
	for _, child := range suite.Suites {
		if err := c.Collect(child); err != nil {
			return err
		}
	}
	return nil
}

// FormatTestCase renders the record of a single test case, blank separator line included
func FormatTestCase(test *domain.TestCase) string {
	tags := NoTagsPlaceholder
	if test.HasTags() {
		tags = FormatTags(test.Tags)
	}
	doc := NoDocPlaceholder
	if test.HasDoc() {
		doc = test.Doc
	}
	return fmt.Sprintf("Test Case: %s\nTags: %s\nDocumentation: %s\n\n", test.FullName, tags, doc)
}

// FormatTags renders tags as a quoted list, e.g. ['smoke', 'fast']
func FormatTags(tags []string) string {
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = quote(tag)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quote wraps s in single quotes, or double quotes when s holds a single quote only
func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}
	var b strings.Builder
	b.WriteString(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case string(r) == q:
			b.WriteString(`\` + q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(q)
	return b.String()
}
