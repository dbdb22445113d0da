package discovery

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// SuiteName derives a suite name from a file or directory path.
// "01__user_login.robot" becomes "User Login"; names with upper-case letters keep their case.
func SuiteName(path string, isDir bool) string {
	name := filepath.Base(path)
	if !isDir {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if _, rest, found := strings.Cut(name, "__"); found && rest != "" {
		name = rest
	}
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))

	if strings.ToLower(name) == name && strings.ToUpper(name) != name {
		name = titleCaser.String(name)
	}
	return name
}

// normalizeTag folds case, spaces and underscores so equivalent tags compare equal
func normalizeTag(tag string) string {
	tag = strings.ToLower(tag)
	tag = strings.ReplaceAll(tag, " ", "")
	return strings.ReplaceAll(tag, "_", "")
}

// resolveTags combines a test's own tags with inherited ones.
// "-tag" entries remove matching inherited tags; "NONE" in any case is dropped.
// Duplicates are dropped and declared order is kept.
func resolveTags(own []string, inherited []string) []string {
	removed := make(map[string]bool)
	seen := make(map[string]bool)
	var tags []string

	add := func(tag string, removable bool) {
		tag = strings.TrimSpace(tag)
		key := normalizeTag(tag)
		if key == "" || strings.EqualFold(tag, "NONE") || seen[key] || (removable && removed[key]) {
			return
		}
		seen[key] = true
		tags = append(tags, tag)
	}

	for _, tag := range own {
		if strings.HasPrefix(tag, "-") && len(tag) > 1 {
			removed[normalizeTag(tag[1:])] = true
		}
	}
	for _, tag := range own {
		if !strings.HasPrefix(tag, "-") {
			add(tag, false)
		}
	}
	for _, tag := range inherited {
		add(tag, true)
	}
	return tags
}
