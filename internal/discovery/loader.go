package discovery

import (
	"errors"
	"path/filepath"
	"strings"

	"tcl/internal/config"
	"tcl/internal/domain"
)

const robotExtension = ".robot"

var jsonExtensions = []string{".rbt", ".json"}

var (
	// ErrSuiteNotFound is returned when the suite path does not exist
	ErrSuiteNotFound = errors.New("suite path does not exist")
	// ErrUnsupportedSource is returned for a suite file of an unknown kind
	ErrUnsupportedSource = errors.New("unsupported suite source")
	// ErrMalformedSuite is returned when a suite file cannot be decoded
	ErrMalformedSuite = errors.New("malformed suite")
)

// Loader builds the suite tree of a suite file or directory
type Loader struct {
	scanner *Scanner
	parser  *Parser
}

// NewLoader creates a Loader from the configured extensions and ignore patterns
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		scanner: NewScanner(cfg.Extensions, NewFilter(cfg.PathsToIgnore)),
		parser:  NewParser(),
	}
}

// Load builds the suite tree rooted at path
func (l *Loader) Load(path string) (*domain.Suite, error) {
	src, err := l.scanner.Scan(path)
	if err != nil {
		return nil, err
	}
	return l.build(src, nil, nil)
}

func (l *Loader) build(src *Source, parent *domain.Suite, inherited []string) (*domain.Suite, error) {
	switch {
	case src.IsDir:
		return l.buildDir(src, parent, inherited)
	case isJSONFile(src.Path):
		return l.buildJSON(src, parent, inherited)
	default:
		return l.buildRobot(src, parent, inherited)
	}
}

func (l *Loader) buildDir(src *Source, parent *domain.Suite, inherited []string) (*domain.Suite, error) {
	suite := newSuite(SuiteName(src.Path, true), src.Path, parent)

	if src.InitFile != "" {
		initFile, err := l.parser.ParseFile(src.InitFile)
		if err != nil {
			return nil, err
		}
		suite.Doc = initFile.Doc
		inherited = extend(inherited, initFile.TestTags)
	}

	for _, child := range src.Children {
		childSuite, err := l.build(child, suite, inherited)
		if err != nil {
			return nil, err
		}
		suite.Suites = append(suite.Suites, childSuite)
	}
	return suite, nil
}

func (l *Loader) buildRobot(src *Source, parent *domain.Suite, inherited []string) (*domain.Suite, error) {
	file, err := l.parser.ParseFile(src.Path)
	if err != nil {
		return nil, err
	}

	suite := newSuite(SuiteName(src.Path, false), src.Path, parent)
	suite.Doc = file.Doc
	inherited = extend(inherited, file.TestTags)

	for _, test := range file.Tests {
		own := file.DefaultTags
		if test.TagsSet {
			own = test.Tags
		}
		suite.Tests = append(suite.Tests, newTestCase(suite, test.Name, resolveTags(own, inherited), test.Doc))
	}
	return suite, nil
}

func (l *Loader) buildJSON(src *Source, parent *domain.Suite, inherited []string) (*domain.Suite, error) {
	model, err := l.parser.ParseJSONFile(src.Path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model.Name) == "" {
		model.Name = SuiteName(src.Path, false)
	}
	return jsonToSuite(*model, src.Path, parent, inherited), nil
}

func jsonToSuite(model JSONSuite, source string, parent *domain.Suite, inherited []string) *domain.Suite {
	suite := newSuite(model.Name, source, parent)
	suite.Doc = model.Doc

	for _, test := range model.Tests {
		suite.Tests = append(suite.Tests, newTestCase(suite, test.Name, resolveTags(test.Tags, inherited), test.Doc))
	}
	for _, child := range model.Suites {
		suite.Suites = append(suite.Suites, jsonToSuite(child, source, suite, inherited))
	}
	return suite
}

func newSuite(name, source string, parent *domain.Suite) *domain.Suite {
	fullName := name
	if parent != nil {
		fullName = parent.FullName + "." + name
	}
	return &domain.Suite{Name: name, FullName: fullName, Source: source}
}

func newTestCase(suite *domain.Suite, name string, tags []string, doc string) *domain.TestCase {
	return &domain.TestCase{
		Name:     name,
		FullName: suite.FullName + "." + name,
		Tags:     tags,
		Doc:      doc,
	}
}

// extend returns a new slice so sibling suites never share inherited tags
func extend(tags []string, more []string) []string {
	out := make([]string, 0, len(tags)+len(more))
	out = append(out, tags...)
	return append(out, more...)
}

func isJSONFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, jsonExt := range jsonExtensions {
		if ext == jsonExt {
			return true
		}
	}
	return false
}
