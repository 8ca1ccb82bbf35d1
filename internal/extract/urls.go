// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pablofazio/cvreadme/pkg/types"
)

// emailPattern matches local@domain.tld, permitting accented characters
// in the local part (common in Spanish-language resumes).
var emailPattern = regexp.MustCompile(`[A-Za-z0-9áéíóúüñÁÉÍÓÚÜÑ._%+-]+@(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}`)

// detectEmail takes the first syntactically valid address anywhere in the
// text.
func detectEmail(d *document, r *types.Record) {
	r.Email = emailPattern.FindString(d.text)
}

// Handle patterns accept both scheme-prefixed URLs and bare fragments;
// either way only the handle is kept and the canonical URL is rebuilt
// from a fixed prefix. This deliberately erases scheme/www/trailing-slash
// variance: http://github.com/bob/ and github.com/bob both resolve to
// https://github.com/bob.
var (
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([\w\-.%]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([\w\-.%]+)`)
	websitePattern  = regexp.MustCompile(`(?i)\b([A-Za-z0-9_-]+\.github\.io)\b`)
)

// detectLinkedIn resolves the first linkedin.com/in/<handle> match to its
// canonical URL.
func detectLinkedIn(d *document, r *types.Record) {
	if h := firstMatch(d.text, []*regexp.Regexp{linkedinPattern}); h != "" {
		r.LinkedIn = "https://www.linkedin.com/in/" + strings.TrimRight(h, "/")
	}
}

// detectGitHub resolves the first github.com/<handle> match to its
// canonical URL.
func detectGitHub(d *document, r *types.Record) {
	if h := firstMatch(d.text, []*regexp.Regexp{githubPattern}); h != "" {
		r.GitHub = "https://github.com/" + strings.TrimRight(h, "/")
	}
}

// detectWebsite resolves a *.github.io host (absolute or bare) to an
// https URL.
func detectWebsite(d *document, r *types.Record) {
	if h := firstMatch(d.text, []*regexp.Regexp{websitePattern}); h != "" {
		r.Website = "https://" + h
	}
}

// profileSpec binds one service key to its detection pattern and the
// canonical URL prefix the captured handle is appended to.
type profileSpec struct {
	key     types.ProfileKey
	pattern *regexp.Regexp
	prefix  string
}

// profileSpecs is iterated in the same order the renderer emits icons.
var profileSpecs = []profileSpec{
	{types.ProfileInstagram, regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/([A-Za-z0-9._]+)`), "https://instagram.com/"},
	{types.ProfileX, regexp.MustCompile(`(?i)https?://(?:www\.)?x\.com/([A-Za-z0-9_]+)`), "https://x.com/"},
	{types.ProfileTwitter, regexp.MustCompile(`(?i)https?://(?:www\.)?twitter\.com/([A-Za-z0-9_]+)`), "https://twitter.com/"},
	{types.ProfileGitLab, regexp.MustCompile(`(?i)https?://(?:www\.)?gitlab\.com/([A-Za-z0-9_-]+)`), "https://gitlab.com/"},
	{types.ProfileTikTok, regexp.MustCompile(`(?i)https?://(?:www\.)?tiktok\.com/@?([A-Za-z0-9_-]+)`), "https://www.tiktok.com/@"},
	{types.ProfileFacebook, regexp.MustCompile(`(?i)https?://(?:www\.)?facebook\.com/([A-Za-z0-9._-]+)`), "https://www.facebook.com/"},
	{types.ProfileStackOverflow, regexp.MustCompile(`(?i)https?://(?:www\.)?stackoverflow\.com/users/([0-9]+/[A-Za-z0-9_-]+)`), "https://stackoverflow.com/users/"},
	{types.ProfileMedium, regexp.MustCompile(`(?i)https?://(?:www\.)?medium\.com/@?([A-Za-z0-9_-]+)`), "https://medium.com/@"},
	{types.ProfileDevTo, regexp.MustCompile(`(?i)https?://(?:www\.)?dev\.to/([A-Za-z0-9_-]+)`), "https://dev.to/"},
	{types.ProfileKaggle, regexp.MustCompile(`(?i)https?://(?:www\.)?kaggle\.com/([A-Za-z0-9_-]+)`), "https://kaggle.com/"},
	{types.ProfileCodepen, regexp.MustCompile(`(?i)https?://(?:www\.)?codepen\.io/([A-Za-z0-9_-]+)`), "https://codepen.io/"},
	{types.ProfileLeetCode, regexp.MustCompile(`(?i)https?://(?:www\.)?leetcode\.com/([A-Za-z0-9/_-]+)`), "https://leetcode.com/"},
	{types.ProfileHackerRank, regexp.MustCompile(`(?i)https?://(?:www\.)?hackerrank\.com/([A-Za-z0-9_-]+)`), "https://www.hackerrank.com/"},
	{types.ProfileBitbucket, regexp.MustCompile(`(?i)https?://(?:www\.)?bitbucket\.org/([A-Za-z0-9_-]+)`), "https://bitbucket.org/"},
	{types.ProfileGoogleScholar, regexp.MustCompile(`(?i)https?://scholar\.google\.com/citations\?user=([A-Za-z0-9_-]+)`), "https://scholar.google.com/citations?user="},
	{types.ProfileArxiv, regexp.MustCompile(`(?i)https?://arxiv\.org/a/([A-Za-z0-9_-]+)`), "https://arxiv.org/a/"},
	{types.ProfileORCID, regexp.MustCompile(`(?i)https?://orcid\.org/([0-9X-]+)`), "https://orcid.org/"},
	{types.ProfileDialnet, regexp.MustCompile(`(?i)https?://dialnet\.unirioja\.es/servlet/articulo\?codigo=([0-9]+)`), "https://dialnet.unirioja.es/servlet/articulo?codigo="},
	{types.ProfileScopus, regexp.MustCompile(`(?i)https?://(?:www\.)?scopus\.com/authid/detail\.uri\?authorId=([0-9]+)`), "https://www.scopus.com/authid/detail.uri?authorId="},
	{types.ProfileResearchGate, regexp.MustCompile(`(?i)https?://(?:www\.)?researchgate\.net/profile/([A-Za-z0-9_-]+)`), "https://www.researchgate.net/profile/"},
	{types.ProfileAcademia, regexp.MustCompile(`(?i)https?://(?:www\.)?academia\.edu/([A-Za-z0-9_-]+)`), "https://www.academia.edu/"},
}

// urlPattern finds http(s) URLs for the generic-website fallback.
var urlPattern = regexp.MustCompile(`https?://[^\s)\]>]+`)

// knownHosts are services with dedicated detection; the generic website
// fallback skips them. github.io is listed because those hosts already
// populate the website field.
var knownHosts = []string{
	"github.com", "github.io", "linkedin.com", "instagram.com", "x.com",
	"twitter.com", "gitlab.com", "facebook.com", "tiktok.com",
	"stackoverflow.com", "medium.com", "dev.to", "kaggle.com",
	"codepen.io", "leetcode.com", "hackerrank.com", "bitbucket.org",
	"dialnet.unirioja.es", "scholar.google.com", "arxiv.org", "orcid.org",
	"scopus.com", "researchgate.net", "academia.edu",
}

// detectProfiles scans the text once per known service, rebuilding a
// canonical URL from the captured handle. After the known services, the
// first http(s) URL on an unknown host becomes a generic website entry
// unless one was already set.
func detectProfiles(d *document, r *types.Record) {
	profiles := make(map[types.ProfileKey]string)

	for _, spec := range profileSpecs {
		m := spec.pattern.FindStringSubmatch(d.text)
		if m == nil {
			continue
		}
		handle := strings.TrimRight(m[1], "/")
		if handle == "" {
			continue
		}
		profiles[spec.key] = spec.prefix + handle
	}

	if _, ok := profiles[types.ProfileWebsite]; !ok {
		for _, u := range urlPattern.FindAllString(d.text, -1) {
			u = strings.TrimRight(u, `.,;)"`)
			if u == "" || hostKnown(u) {
				continue
			}
			profiles[types.ProfileWebsite] = u
			break
		}
	}

	if len(profiles) > 0 {
		r.Profiles = profiles
	}
}

func hostKnown(url string) bool {
	for _, h := range knownHosts {
		if strings.Contains(url, h) {
			return true
		}
	}
	return false
}
