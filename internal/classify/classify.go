// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps free-text skill tags onto technology categories
// (language, framework, database, tool) using data-driven badge tables.
// Matching is case-insensitive and intentionally loose: short keys may
// over-match, which is an accepted precision/recall tradeoff for resume
// text.
package classify

import (
	"regexp"
	"strings"
)

// Badge is one classified entry: a display label plus the external badge
// image it renders as.
type Badge struct {
	Label string `json:"label" yaml:"label"`
	Image string `json:"badge" yaml:"badge"`
}

// Entry is one lookup-table row. Key is the lowercase canonical
// identifier tags are matched against.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Image string `json:"badge" yaml:"badge"`
}

// Tables holds the four category lookup tables in their file order.
// Tables are immutable static configuration: build them once at startup
// and treat them as read-only.
type Tables struct {
	Languages  []Entry `json:"languages" yaml:"languages"`
	Frameworks []Entry `json:"frameworks" yaml:"frameworks"`
	Databases  []Entry `json:"databases" yaml:"databases"`
	Tools      []Entry `json:"tools" yaml:"tools"`
}

// Classification groups the matched badges per category, in detection
// order, deduplicated by (label, image) pair. Categories are independent;
// one tag may appear in several.
type Classification struct {
	Languages  []Badge
	Frameworks []Badge
	Databases  []Badge
	Tools      []Badge
}

// IsEmpty reports whether no tag classified into any category.
func (c Classification) IsEmpty() bool {
	return len(c.Languages) == 0 && len(c.Frameworks) == 0 &&
		len(c.Databases) == 0 && len(c.Tools) == 0
}

// Classify runs every skill tag through the four category tables.
func Classify(skills []string, t *Tables) Classification {
	return Classification{
		Languages:  matchCategory(skills, t.Languages),
		Frameworks: matchCategory(skills, t.Frameworks),
		Databases:  matchCategory(skills, t.Databases),
		Tools:      matchCategory(skills, t.Tools),
	}
}

// matchCategory collects the table entries matched by each tag, keeping
// tag detection order and table order within a tag, deduplicated by
// (label, image).
func matchCategory(skills []string, table []Entry) []Badge {
	var badges []Badge
	seen := make(map[Badge]bool)

	for _, tag := range skills {
		norm := normalizeTag(tag)
		if norm == "" {
			continue
		}
		for _, e := range table {
			if !tagMatches(norm, e.Key) {
				continue
			}
			b := Badge{Label: e.Label, Image: e.Image}
			if seen[b] {
				continue
			}
			seen[b] = true
			badges = append(badges, b)
		}
	}
	return badges
}

// tagCharset keeps word characters plus the symbols that occur in
// technology names (c++, c#, .net); everything else becomes a space.
var tagCharset = regexp.MustCompile(`[^\w+\-#.]+`)

// normalizeTag lowercases the tag and replaces characters outside the
// permitted set with spaces.
func normalizeTag(tag string) string {
	return strings.TrimSpace(tagCharset.ReplaceAllString(strings.ToLower(tag), " "))
}

// tagMatches tests the three tolerance levels in order: exact equality,
// whole-token containment, substring containment. Any of the three
// suffices.
func tagMatches(norm, key string) bool {
	if norm == key {
		return true
	}
	for _, tok := range strings.Fields(norm) {
		if tok == key {
			return true
		}
	}
	return strings.Contains(norm, key)
}
