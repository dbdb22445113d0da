package discovery

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// RobotFile holds what the listing needs from a .robot file
type RobotFile struct {
	Doc         string
	TestTags    []string // Test Tags and Force Tags, applied to every test below
	DefaultTags []string // Used by tests that set no [Tags]
	Tests       []RobotTest
}

// RobotTest is a test case as declared in a .robot file
type RobotTest struct {
	Name    string
	Tags    []string
	TagsSet bool
	Doc     string
}

type section int

const (
	sectionNone section = iota
	sectionSettings
	sectionTests
	sectionOther
)

var (
	spaceSeparator = regexp.MustCompile(`\t+ *|  +\t*`)
	pipeSeparator  = regexp.MustCompile(`\s+\|\s+`)
)

// Parser reads the settings and test cases of .robot files.
// It does not validate syntax; unknown sections and settings are skipped.
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses the .robot file at filePath
func (p *Parser) ParseFile(filePath string) (*RobotFile, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer f.Close()

	file, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return file, nil
}

// Parse reads a .robot file from r
func (p *Parser) Parse(r io.Reader) (*RobotFile, error) {
	file := &RobotFile{}
	current := sectionNone

	// last setting seen, so "..." rows can extend it
	var lastSetting string
	var lastTest *RobotTest

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		cells := splitCells(scanner.Text())
		if len(cells) == 0 {
			continue
		}

		if strings.HasPrefix(cells[0], "*") {
			current = sectionFor(cells[0])
			lastSetting = ""
			lastTest = nil
			continue
		}

		switch current {
		case sectionSettings:
			name := cells[0]
			values := cells[1:]
			if name == "..." {
				name = lastSetting
			} else {
				lastSetting = name
			}
			p.applySuiteSetting(file, name, values, cells[0] == "...")

		case sectionTests:
			if cells[0] != "" {
				file.Tests = append(file.Tests, RobotTest{Name: cells[0]})
				lastTest = &file.Tests[len(file.Tests)-1]
				lastSetting = ""
				cells = append([]string{""}, cells[1:]...)
			}
			if lastTest == nil || len(cells) < 2 {
				continue
			}
			name := cells[1]
			values := cells[2:]
			if name == "..." {
				name = lastSetting
			} else {
				lastSetting = name
			}
			p.applyTestSetting(lastTest, name, values, cells[1] == "...")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return file, nil
}

func (p *Parser) applySuiteSetting(file *RobotFile, name string, values []string, continued bool) {
	switch normalizeSetting(name) {
	case "testtags", "forcetags":
		file.TestTags = append(file.TestTags, values...)
	case "defaulttags":
		file.DefaultTags = append(file.DefaultTags, values...)
	case "documentation":
		file.Doc = joinDoc(file.Doc, values, continued)
	}
}

func (p *Parser) applyTestSetting(test *RobotTest, name string, values []string, continued bool) {
	switch normalizeSetting(name) {
	case "[tags]":
		test.Tags = append(test.Tags, values...)
		test.TagsSet = true
	case "[documentation]":
		test.Doc = joinDoc(test.Doc, values, continued)
	}
}

// joinDoc joins cells of a row with spaces and continuation rows with newlines
func joinDoc(doc string, values []string, continued bool) string {
	row := strings.Join(values, " ")
	if continued && doc != "" {
		return doc + "\n" + row
	}
	return row
}

func sectionFor(header string) section {
	name := normalizeSetting(strings.Trim(header, "* \t"))
	switch name {
	case "settings", "setting":
		return sectionSettings
	case "testcases", "testcase", "tasks", "task":
		return sectionTests
	default:
		return sectionOther
	}
}

func normalizeSetting(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// splitCells splits a data row in space or pipe separated format.
// The first cell is empty for indented rows; comments and trailing empty cells are dropped.
func splitCells(line string) []string {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return nil
	}

	var cells []string
	if strings.HasPrefix(line, "| ") || line == "|" {
		line = strings.TrimPrefix(line, "|")
		line = strings.TrimSuffix(line, " |")
		for _, cell := range pipeSeparator.Split(line, -1) {
			cells = append(cells, strings.TrimSpace(cell))
		}
	} else {
		cells = spaceSeparator.Split(line, -1)
		if strings.HasPrefix(line, " ") && cells[0] != "" {
			// single leading space still marks an indented row
			cells[0] = strings.TrimLeft(cells[0], " ")
			cells = append([]string{""}, cells...)
		}
	}

	for i, cell := range cells {
		if strings.HasPrefix(cell, "#") {
			cells = cells[:i]
			break
		}
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) == 0 {
		return nil
	}
	return cells
}
