package discovery

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// JSONSuite is a suite read from the Robot Framework JSON suite model
type JSONSuite struct {
	Name   string
	Doc    string
	Tests  []RobotTest
	Suites []JSONSuite
}

// ParseJSONFile reads a JSON suite model file
func (p *Parser) ParseJSONFile(filePath string) (*JSONSuite, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	suite, err := p.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return suite, nil
}

// ParseJSON decodes a JSON suite model
func (p *Parser) ParseJSON(data []byte) (*JSONSuite, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedSuite)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: suite must be a JSON object", ErrMalformedSuite)
	}

	suite := jsonSuite(root)
	return &suite, nil
}

func jsonSuite(node gjson.Result) JSONSuite {
	suite := JSONSuite{
		Name: node.Get("name").String(),
		Doc:  node.Get("doc").String(),
	}

	for _, t := range node.Get("tests").Array() {
		test := RobotTest{
			Name: t.Get("name").String(),
			Doc:  t.Get("doc").String(),
		}
		if tags := t.Get("tags"); tags.Exists() {
			test.TagsSet = true
			for _, tag := range tags.Array() {
				test.Tags = append(test.Tags, tag.String())
			}
		}
		suite.Tests = append(suite.Tests, test)
	}

	for _, child := range node.Get("suites").Array() {
		suite.Suites = append(suite.Suites, jsonSuite(child))
	}

	return suite
}
