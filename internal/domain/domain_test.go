package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestCase_HasTags(t *testing.T) {
	assert.False(t, (&TestCase{}).HasTags())
	assert.False(t, (&TestCase{Tags: []string{}}).HasTags())
	assert.True(t, (&TestCase{Tags: []string{"smoke"}}).HasTags())
}

func TestTestCase_HasDoc(t *testing.T) {
	assert.False(t, (&TestCase{}).HasDoc())
	assert.True(t, (&TestCase{Doc: "Checks login"}).HasDoc())
}

func TestSuite_CountTests(t *testing.T) {
	root := &Suite{
		Name:  "Root",
		Tests: []*TestCase{{Name: "T1"}},
		Suites: []*Suite{
			{Name: "Child", Tests: []*TestCase{{Name: "T2"}, {Name: "T3"}}},
			{Name: "Empty", Suites: []*Suite{{Name: "Deeper"}}},
		},
	}

	assert.Equal(t, 3, root.CountTests())
	assert.Equal(t, 0, root.Suites[1].CountTests())
}
