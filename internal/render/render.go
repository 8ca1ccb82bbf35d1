// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles the profile README from an extracted Record.
// Sections come in a fixed order and are emitted only when their data is
// present; the renderer itself never fails, and the optional GitHub
// repository fetch degrades to search-link badges on any error.
package render

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pablofazio/cvreadme/internal/classify"
	"github.com/pablofazio/cvreadme/internal/github"
	"github.com/pablofazio/cvreadme/pkg/types"
)

// iconSpacer separates icons in the social row.
const iconSpacer = "&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;"

// attribution is the fixed footer badge.
const attribution = "[![Generated with cvreadme](https://img.shields.io/badge/Generated%20with-cvreadme-blue?logo=github)](https://github.com/pablofazio/cvreadme)"

// RepoLister fetches a user's repositories for the projects section.
// *github.Client implements it; tests supply a stub.
type RepoLister interface {
	ListRepos(ctx context.Context, username string, limit int) ([]github.Repo, error)
}

// Renderer turns Records into README markup. The zero value renders with
// the embedded badge tables and no repository fetch.
type Renderer struct {
	// Tables are the classifier badge tables; nil means the embedded
	// defaults.
	Tables *classify.Tables

	// Repos lists GitHub repositories for the projects section. Nil
	// disables the fetch; the section falls back to search badges.
	Repos RepoLister

	// MaxRepos caps the projects section (default 6).
	MaxRepos int
}

// README renders the complete document. Section order is fixed: header,
// occupation, social icons, website highlight, skills, GitHub projects,
// GitHub stats, footer. Absent optional fields skip their section; the
// result is a valid document even for an all-empty record.
func (rd *Renderer) README(ctx context.Context, rec types.Record) string {
	tables := rd.Tables
	if tables == nil {
		tables = classify.DefaultTables()
	}
	cls := classify.Classify(rec.Skills, tables)
	username := rec.GitHubUsername()

	var md []string
	md = append(md, header(rec))
	md = appendOccupation(md, rec)
	md = appendSocialIcons(md, rec)
	md = appendWebsiteHighlight(md, rec)
	md = appendSkills(md, cls, username)
	md = rd.appendProjects(ctx, md, cls, username)
	md = appendStats(md, username)
	md = append(md, "---", "", attribution)

	return strings.Join(md, "\n") + "\n"
}

// header greets with the first name, or a generic greeting when no name
// was detected.
func header(rec types.Record) string {
	name := rec.FirstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<h1 align="center">Hi 👋, I'm %s</h1>`, name)
}

func appendOccupation(md []string, rec types.Record) []string {
	if rec.Occupation == "" {
		return md
	}
	return append(md, fmt.Sprintf(`<h3 align="center">%s</h3>`, rec.Occupation), "")
}

// appendSocialIcons emits one linked icon per populated contact channel:
// email, linkedin, github, then every detected profile in the fixed key
// order, then the personal website.
func appendSocialIcons(md []string, rec types.Record) []string {
	var icons []string
	add := func(href, img, alt string) {
		icons = append(icons, fmt.Sprintf(`<a href="%s"><img width="40px" src="%s" alt="%s"></a>`, href, img, alt))
	}

	if rec.Email != "" {
		add("mailto:"+rec.Email, emailIcon, "Email")
	}
	if rec.LinkedIn != "" {
		add(rec.LinkedIn, linkedinIcon, "LinkedIn")
	}
	if rec.GitHub != "" {
		add(rec.GitHub, githubIcon, "GitHub")
	}
	for _, key := range types.ProfileKeys {
		if u := rec.Profiles[key]; u != "" {
			add(u, profileIcons[key], string(key))
		}
	}
	if rec.Website != "" {
		add(rec.Website, portfolioIcon, "Personal website")
	}

	if len(icons) == 0 {
		return md
	}
	return append(md,
		"<!-- Social icons section -->",
		`<p align="center">`,
		"  "+strings.Join(icons, iconSpacer),
		"</p>",
		"",
	)
}

// appendWebsiteHighlight renders a badge showing the bare domain of the
// personal website, linking to the full URL.
func appendWebsiteHighlight(md []string, rec types.Record) []string {
	if rec.Website == "" {
		return md
	}
	domain := bareDomain(rec.Website)
	badge := fmt.Sprintf("https://img.shields.io/badge/🌐_%s-0A66C2?style=for-the-badge", shieldsEscape(domain))
	return append(md,
		`<p align="center">`,
		fmt.Sprintf(`  <a href="%s"><img src="%s" alt="%s"></a>`, rec.Website, badge, domain),
		"</p>",
		"",
	)
}

// categorySection pairs a skills subsection heading with its badges.
type categorySection struct {
	heading string
	badges  []classify.Badge
	linked  bool // badges link to user-scoped code search
}

// appendSkills renders the classified badge subsections in fixed
// category order, or a placeholder notice when nothing classified.
func appendSkills(md []string, cls classify.Classification, username string) []string {
	md = append(md, "<details open>", "<summary><h2>🛠️ Skills</h2></summary>", "")

	sections := []categorySection{
		{"👨‍💻 Programming Languages", cls.Languages, username != ""},
		{"🧰 Frameworks & Libraries", cls.Frameworks, false},
		{"🗄️ Databases", cls.Databases, false},
		{"🔧 Development Tools", cls.Tools, false},
	}

	if cls.IsEmpty() {
		md = append(md, "Here you can add your main skills.", "")
	} else {
		for _, sec := range sections {
			if len(sec.badges) == 0 {
				continue
			}
			md = append(md, fmt.Sprintf("<h3>%s</h3>", sec.heading), `<p align="center">`)
			for _, b := range sec.badges {
				img := fmt.Sprintf(`<img src="%s" alt="%s">`, b.Image, b.Label)
				if sec.linked {
					md = append(md, fmt.Sprintf(`  <a href="%s">%s</a>`, codeSearchURL(username, b.Label), img))
				} else {
					md = append(md, "  "+img)
				}
			}
			md = append(md, "</p>", "")
		}
	}

	return append(md, "</details>", "")
}

// appendProjects renders up to MaxRepos repository cards for the
// resolved GitHub user. The fetch is best-effort: any failure (or no
// lister) falls back to per-language search badges so the section is
// never empty.
func (rd *Renderer) appendProjects(ctx context.Context, md []string, cls classify.Classification, username string) []string {
	if username == "" {
		return md
	}

	md = append(md, "<details open>", "<summary><h2>📘 GitHub Projects</h2></summary>", "")

	var repos []github.Repo
	if rd.Repos != nil {
		if fetched, err := rd.Repos.ListRepos(ctx, username, rd.maxRepos()); err == nil {
			repos = fetched
		}
	}

	if len(repos) > 0 {
		md = append(md, `<p align="center">`)
		for _, r := range repos {
			card := fmt.Sprintf("https://github-readme-stats.vercel.app/api/pin/?username=%s&repo=%s", username, url.QueryEscape(r.Name))
			md = append(md, fmt.Sprintf(`  <a href="%s"><img src="%s" alt="%s"></a>`, r.HTMLURL, card, r.Name))
		}
		md = append(md, "</p>", "")
	} else {
		md = append(md, `<p align="center">`,
			fmt.Sprintf(`  <a href="https://github.com/%s?tab=repositories&sort=stargazers">All repositories</a>`, username))
		for _, b := range cls.Languages {
			md = append(md, fmt.Sprintf(`  <a href="%s"><img src="%s" alt="%s"></a>`, codeSearchURL(username, b.Label), b.Image, b.Label))
		}
		md = append(md, "</p>", "")
	}

	return append(md, "</details>", "")
}

// appendStats renders the two fixed statistics images for the resolved
// GitHub user.
func appendStats(md []string, username string) []string {
	if username == "" {
		return md
	}
	return append(md,
		"<details open>",
		"<summary><h2>📊 GitHub Stats</h2></summary>",
		`<p align="center">`,
		fmt.Sprintf(`    <img align="center" height="200" alt="%s's GitHub Stats" src="https://github-readme-stats.vercel.app/api/?username=%s" />`, username, username),
		"&nbsp;",
		fmt.Sprintf(`    <img align="center" height="200" alt="%s's Top Languages" src="https://github-readme-stats.vercel.app/api/top-langs/?username=%s&langs_count=8&layout=compact" />`, username, username),
		"</p>",
		"</details>",
		"",
	)
}

func (rd *Renderer) maxRepos() int {
	if rd.MaxRepos > 0 {
		return rd.MaxRepos
	}
	return github.DefaultMaxRepos
}

// codeSearchURL builds a code-search query scoped to the user for one
// language label.
func codeSearchURL(username, language string) string {
	q := url.QueryEscape("user:" + username + " language:" + strings.ToLower(language))
	return "https://github.com/search?q=" + q + "&type=code"
}

// bareDomain strips scheme, leading www. and trailing slashes from a URL
// for display.
func bareDomain(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	return strings.TrimRight(u, "/")
}

// shieldsEscape escapes a shields.io badge label: dashes and underscores
// are literal only when doubled, spaces become underscores.
func shieldsEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	return strings.ReplaceAll(s, " ", "_")
}
