// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfileKey identifies one of the known social/academic profile services
// detected in resume text.
type ProfileKey string

const (
	ProfileInstagram     ProfileKey = "instagram"
	ProfileX             ProfileKey = "x"
	ProfileTwitter       ProfileKey = "twitter"
	ProfileGitLab        ProfileKey = "gitlab"
	ProfileTikTok        ProfileKey = "tiktok"
	ProfileFacebook      ProfileKey = "facebook"
	ProfileStackOverflow ProfileKey = "stackoverflow"
	ProfileMedium        ProfileKey = "medium"
	ProfileDevTo         ProfileKey = "devto"
	ProfileKaggle        ProfileKey = "kaggle"
	ProfileCodepen       ProfileKey = "codepen"
	ProfileLeetCode      ProfileKey = "leetcode"
	ProfileHackerRank    ProfileKey = "hackerrank"
	ProfileBitbucket     ProfileKey = "bitbucket"
	ProfileGoogleScholar ProfileKey = "google_scholar"
	ProfileArxiv         ProfileKey = "arxiv"
	ProfileORCID         ProfileKey = "orcid"
	ProfileDialnet       ProfileKey = "dialnet"
	ProfileScopus        ProfileKey = "scopus"
	ProfileResearchGate  ProfileKey = "researchgate"
	ProfileAcademia      ProfileKey = "academia"
	ProfileWebsite       ProfileKey = "website"
)

// ProfileKeys lists every known profile key in presentation order. The
// renderer emits social icons in exactly this order; do not reorder.
var ProfileKeys = []ProfileKey{
	ProfileInstagram,
	ProfileX,
	ProfileTwitter,
	ProfileGitLab,
	ProfileTikTok,
	ProfileFacebook,
	ProfileStackOverflow,
	ProfileMedium,
	ProfileDevTo,
	ProfileKaggle,
	ProfileCodepen,
	ProfileLeetCode,
	ProfileHackerRank,
	ProfileBitbucket,
	ProfileGoogleScholar,
	ProfileArxiv,
	ProfileORCID,
	ProfileDialnet,
	ProfileScopus,
	ProfileResearchGate,
	ProfileAcademia,
	ProfileWebsite,
}

// Record holds the structured facts extracted from one resume document.
// Every string field is either empty or trimmed non-whitespace content;
// Profiles never contains an empty value; Skills contains no empty entries
// and no exact duplicates. A Record is a pure value: it is built once per
// extraction and never mutated afterwards.
type Record struct {
	// FirstName and LastName come from the first name-like line of the
	// document. Both are empty when no such line exists.
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`

	// Occupation is a short phrase identifying the professional role
	// (e.g. "Software Engineer", "PhD Student").
	Occupation string `json:"occupation" yaml:"occupation"`

	// Email is the first syntactically valid address found in the text.
	Email string `json:"email" yaml:"email"`

	// LinkedIn, GitHub and Website are canonical absolute URLs
	// re-synthesized from the matched handle, or empty when not found.
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
	Website  string `json:"website" yaml:"website"`

	// Profiles maps detected service keys to canonical profile URLs.
	// Keys are present only when the service was detected.
	Profiles map[ProfileKey]string `json:"profiles,omitempty" yaml:"profiles,omitempty"`

	// Skills lists free-text tags from the skills section, in detection
	// order, exact duplicates removed.
	Skills []string `json:"skills" yaml:"skills"`
}

// GitHubUsername returns the username portion of the GitHub profile URL,
// or the empty string when no GitHub URL was detected. The username is the
// last path segment with any trailing slash stripped.
func (r Record) GitHubUsername() string {
	u := r.GitHub
	for len(u) > 0 && u[len(u)-1] == '/' {
		u = u[:len(u)-1]
	}
	if u == "" {
		return ""
	}
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] == '/' {
			return u[i+1:]
		}
	}
	return ""
}

// FullName joins first and last name with a space, trimming when either
// side is missing.
func (r Record) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}
