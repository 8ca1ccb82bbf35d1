// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw resume text into a structured Record via an
// ordered battery of heuristic rules. Matching is best-effort by design:
// resumes have wildly inconsistent structure, so each rule prefers
// precision over recall and leaves its field empty rather than guess.
// Parse never fails; only the document reader can.
package extract

import (
	"regexp"
	"strings"

	"github.com/pablofazio/cvreadme/pkg/types"
)

// document is the shared input every rule reads: the raw text plus the
// derived list of non-empty trimmed lines.
type document struct {
	text  string
	lines []string
}

// rule is one named extraction step. Rules run in fixed order and write
// at most their own fields of the Record; they never read fields written
// by later rules.
type rule struct {
	name  string
	apply func(d *document, r *types.Record)
}

// rules is the extraction pipeline. Order matters: occupation excludes
// name tokens, so name detection must run first.
var rules = []rule{
	{"name", detectName},
	{"occupation", detectOccupation},
	{"email", detectEmail},
	{"linkedin", detectLinkedIn},
	{"github", detectGitHub},
	{"website", detectWebsite},
	{"profiles", detectProfiles},
	{"skills", detectSkills},
}

// Parse extracts a Record from raw resume text. Every field defaults to
// empty when its rules find nothing; Parse itself cannot fail.
func Parse(text string) types.Record {
	d := &document{
		text:  text,
		lines: nonEmptyLines(text),
	}

	var rec types.Record
	for _, ru := range rules {
		ru.apply(d, &rec)
	}
	return rec
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// maxNameLines bounds how deep into the document a name is searched for.
const maxNameLines = 10

// namePattern matches lines of mostly-alphabetic tokens (accents
// included) separated by spaces, hyphens or apostrophes.
var namePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ][A-Za-zÁÉÍÓÚÜÑáéíóúüñ \-']+$`)

// detectName takes the first plausible name-like line among the first ten
// non-empty lines: at least two whitespace-separated tokens, no '@', only
// letters/spaces/hyphens/apostrophes. The first token becomes the first
// name and the rest the last name.
func detectName(d *document, r *types.Record) {
	n := len(d.lines)
	if n > maxNameLines {
		n = maxNameLines
	}
	for _, ln := range d.lines[:n] {
		if strings.Contains(ln, "@") || !namePattern.MatchString(ln) {
			continue
		}
		parts := strings.Fields(ln)
		if len(parts) < 2 {
			continue
		}
		r.FirstName = parts[0]
		r.LastName = strings.Join(parts[1:], " ")
		return
	}
}

// firstMatch returns the first capture group of the first pattern that
// matches text, or "" when none does.
func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
