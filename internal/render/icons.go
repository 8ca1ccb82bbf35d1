// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pablofazio/cvreadme/pkg/types"

// Fixed external icon images for the social row. One per contact
// channel; profile icons are keyed by service.
const (
	emailIcon     = "https://img.icons8.com/color/48/000000/gmail--v1.png"
	linkedinIcon  = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/linkedin/linkedin-original.svg"
	githubIcon    = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/github/github-original.svg"
	portfolioIcon = "https://img.icons8.com/ios-filled/50/000000/portfolio.png"
)

// profileIcons maps each known profile service to its badge image.
var profileIcons = map[types.ProfileKey]string{
	types.ProfileInstagram:     "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/instagram/instagram-original.svg",
	types.ProfileX:             "https://img.icons8.com/ios-filled/50/000000/twitter--v1.png",
	types.ProfileTwitter:       "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/twitter/twitter-original.svg",
	types.ProfileGitLab:        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/gitlab/gitlab-original.svg",
	types.ProfileTikTok:        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/tiktok/tiktok-original.svg",
	types.ProfileFacebook:      "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/facebook/facebook-original.svg",
	types.ProfileStackOverflow: "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/stackoverflow/stackoverflow-original.svg",
	types.ProfileMedium:        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/medium/medium-original.svg",
	types.ProfileDevTo:         "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/devto/devto-original.svg",
	types.ProfileKaggle:        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/kaggle/kaggle-original.svg",
	types.ProfileCodepen:       "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/codepen/codepen-original.svg",
	types.ProfileLeetCode:      "https://img.icons8.com/ios-filled/50/000000/leetcode.png",
	types.ProfileHackerRank:    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/hackerrank/hackerrank-original.svg",
	types.ProfileBitbucket:     "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/bitbucket/bitbucket-original.svg",
	types.ProfileGoogleScholar: "https://img.icons8.com/ios-filled/50/000000/google-scholar.png",
	types.ProfileArxiv:         "https://upload.wikimedia.org/wikipedia/commons/4/45/ArXiv_logo.svg",
	types.ProfileORCID:         "https://orcid.org/sites/default/files/images/orcid_16x16.png",
	types.ProfileDialnet:       "https://dialnet.unirioja.es/images/dialnet-logo.png",
	types.ProfileScopus:        "https://www.elsevier.com/__data/assets/image/0007/69401/scopus-logo.png",
	types.ProfileResearchGate:  "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/researchgate/researchgate-original.svg",
	types.ProfileAcademia:      "https://upload.wikimedia.org/wikipedia/commons/1/12/Academia.edu_logo.png",
	types.ProfileWebsite:       portfolioIcon,
}
