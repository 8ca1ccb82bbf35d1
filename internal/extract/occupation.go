// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pablofazio/cvreadme/pkg/types"
)

// maxOccupationLines bounds how deep into the document an occupation
// headline is searched for before falling back to full-text scanning.
const maxOccupationLines = 6

// occupationVocabulary lists role phrases in plain text: job titles,
// academic ranks, seniority words. Whole-word regexes are compiled from
// these at init.
var occupationVocabulary = []string{
	"student", "intern", "phd", "ph.d", "postdoc", "post-doctoral",
	"professor", "lecturer", "researcher", "scientist",
	"data scientist", "data analyst", "data engineer",
	"software engineer", "engineer", "developer",
	"full-stack", "full stack", "fullstack", "frontend", "front-end",
	"backend", "back-end", "machine learning", "ml engineer",
	"research assistant", "teaching assistant",
	"manager", "consultant", "analyst", "architect", "administrator",
	"designer", "devops", "senior", "junior", "lead", "principal",
}

// occupationPatterns holds one whole-word, case-insensitive regexp per
// vocabulary phrase, in vocabulary order.
var occupationPatterns = compileVocabulary(occupationVocabulary)

func compileVocabulary(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return res
}

// phdPattern normalizes "ph.d" / "ph d" spellings to "PhD".
var phdPattern = regexp.MustCompile(`(?i)\bph[.\s]?d\b`)

// multiSpace collapses runs of whitespace.
var multiSpace = regexp.MustCompile(`\s{2,}`)

// sentenceSplit breaks the full text into sentence-like segments for the
// loosest fallback scan.
var sentenceSplit = regexp.MustCompile(`[.!?;\n]+`)

// detectOccupation finds a short role phrase. Three tiers, strictest
// first: a whole-word vocabulary hit in the first six non-empty lines
// (name tokens stripped so a line echoing the person's name does not
// win), then a compacted-containment pass over the same lines to catch
// run-together PDF text, then a whole-word scan over sentence-like
// segments of the entire document.
func detectOccupation(d *document, r *types.Record) {
	tokens := nameTokens(r.FirstName, r.LastName)

	n := len(d.lines)
	if n > maxOccupationLines {
		n = maxOccupationLines
	}
	head := make([]string, 0, n)
	for _, ln := range d.lines[:n] {
		head = append(head, stripTokens(ln, tokens))
	}

	// Tier 1: whole-word match on cleaned headline lines.
	for _, ln := range head {
		for _, p := range occupationPatterns {
			if p.MatchString(ln) {
				r.Occupation = normalizeOccupation(ln)
				return
			}
		}
	}

	// Tier 2: compacted containment for text with lost word spacing.
	for _, ln := range head {
		if occ := compactedMatch(ln); occ != "" {
			r.Occupation = normalizeOccupation(occ)
			return
		}
	}

	// Tier 3: whole-word match over sentence-like segments of the full
	// text. Name tokens are stripped here too so a segment that merely
	// repeats the person's name cannot win.
	for _, seg := range sentenceSplit.Split(d.text, -1) {
		seg = stripTokens(strings.TrimSpace(seg), tokens)
		if seg == "" {
			continue
		}
		for _, p := range occupationPatterns {
			if p.MatchString(seg) {
				r.Occupation = normalizeOccupation(seg)
				return
			}
		}
	}
}

// nameTokens lowercases the detected name parts so occupation lines that
// merely repeat the person's name can be discounted.
func nameTokens(first, last string) map[string]bool {
	tokens := make(map[string]bool)
	for _, part := range append(strings.Fields(first), strings.Fields(last)...) {
		tokens[strings.ToLower(part)] = true
	}
	return tokens
}

// stripTokens removes whitespace-separated fields whose lowercase form is
// in tokens.
func stripTokens(line string, tokens map[string]bool) string {
	if len(tokens) == 0 {
		return line
	}
	var kept []string
	for _, f := range strings.Fields(line) {
		if !tokens[strings.ToLower(f)] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// compactedMatch strips every non-alphanumeric character from the line
// and each vocabulary phrase and tests substring containment. Catches
// run-together extractions like "SoftwareEngineer". When several phrases
// match, the most specific ones (those not contained in another match)
// are joined with "and" in title case.
func compactedMatch(line string) string {
	lineC := compact(line)
	if lineC == "" {
		return ""
	}

	var hits []string
	seen := make(map[string]bool)
	for _, w := range occupationVocabulary {
		wc := compact(w)
		if wc == "" || seen[wc] || !strings.Contains(lineC, wc) {
			continue
		}
		seen[wc] = true
		hits = append(hits, w)
	}
	if len(hits) == 0 {
		return ""
	}

	// Drop phrases subsumed by a more specific hit ("engineer" inside
	// "software engineer").
	var kept []string
	for i, h := range hits {
		subsumed := false
		for j, other := range hits {
			if i != j && len(compact(other)) > len(compact(h)) && strings.Contains(compact(other), compact(h)) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, titleCase(h))
		}
	}
	return strings.Join(kept, " and ")
}

// compact lowercases s and removes everything but letters and digits.
func compact(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// titleCase capitalizes the first letter of each whitespace-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// normalizeOccupation collapses whitespace and fixes common spellings.
func normalizeOccupation(s string) string {
	s = multiSpace.ReplaceAllString(s, " ")
	s = phdPattern.ReplaceAllString(s, "PhD")
	return strings.TrimSpace(s)
}
