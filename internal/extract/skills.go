// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pablofazio/cvreadme/pkg/types"
)

const (
	// skillFollowLines is how many lines after the section header are
	// swept for tags.
	skillFollowLines = 3

	// Fragment length bounds, inclusive. Anything shorter is noise,
	// anything longer is prose that leaked out of the section.
	minSkillLen = 2
	maxSkillLen = 40
)

// skillHeaderPattern finds the skills section header in English or Spanish.
var skillHeaderPattern = regexp.MustCompile(`(?i)\b(Skills|Habilidades|Tecnologías|Tecnologias)\b`)

// skillHeaderOnly matches fragments that are nothing but a header keyword.
var skillHeaderOnly = regexp.MustCompile(`(?i)^(skills|habilidades|tecnologías|tecnologias)$`)

// skillSeparator splits the section text into tag fragments: bullets,
// commas, semicolons, colons, hyphens, newlines.
var skillSeparator = regexp.MustCompile(`[•\-,;:\r\n]+`)

// detectSkills locates the first skills-like section header, sweeps that
// line plus up to three following lines, and splits the result into
// trimmed tags. Fragments outside the 2..40 length bound and fragments
// that are just a header keyword are dropped; first-seen order is kept
// and exact duplicates removed.
func detectSkills(d *document, r *types.Record) {
	start := -1
	for i, ln := range d.lines {
		if skillHeaderPattern.MatchString(ln) {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	end := start + skillFollowLines + 1
	if end > len(d.lines) {
		end = len(d.lines)
	}
	joined := strings.Join(d.lines[start:end], "\n")

	var skills []string
	seen := make(map[string]bool)
	for _, frag := range skillSeparator.Split(joined, -1) {
		frag = strings.TrimSpace(frag)
		if n := len([]rune(frag)); n < minSkillLen || n > maxSkillLen {
			continue
		}
		if skillHeaderOnly.MatchString(frag) || seen[frag] {
			continue
		}
		seen[frag] = true
		skills = append(skills, frag)
	}
	r.Skills = skills
}
