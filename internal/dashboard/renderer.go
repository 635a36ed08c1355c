package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
	"github.com/vilaca/release-dashboard/internal/service"
)

// Renderer handles rendering responses to HTTP clients.
// This interface follows Interface Segregation Principle (SOLID-I).
type Renderer interface {
	RenderHealth(w io.Writer) error
	RenderReleases(w io.Writer, releases []domain.Release) error
	RenderRelease(w io.Writer, view *service.ReleaseView) error
	RenderReleaseJSON(w io.Writer, view *service.ReleaseView) error
	RenderPullRequestLink(w io.Writer, link prlink.Link) error
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	// All HTML is embedded in methods, no external templates needed
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

// RenderPullRequestLink writes the bare fragment, without page chrome.
func (r *HTMLRenderer) RenderPullRequestLink(w io.Writer, link prlink.Link) error {
	_, err := io.WriteString(w, link.HTML())
	return err
}

// RenderReleases renders the release list page.
func (r *HTMLRenderer) RenderReleases(w io.Writer, releases []domain.Release) error {
	var sb strings.Builder

	sb.WriteString(htmlHead("Releases", ""))
	sb.WriteString(`
<body>
	<div class="container">
		<h1>Releases</h1>
		`)
	sb.WriteString(buildNavigation())
	sb.WriteString("\n")

	if len(releases) == 0 {
		sb.WriteString(`		<div class="empty">No releases found. Point CATALOG_PATH at a release catalog.</div>
`)
	} else {
		sb.WriteString(`		<table>
			<thead><tr><th>Version</th><th>Repository</th><th>Created</th><th>Commits</th></tr></thead>
			<tbody>
`)
		for _, rel := range releases {
			fmt.Fprintf(&sb, `				<tr><td><a href="/releases/%s">%s</a></td><td>%s</td><td class="meta-text">%s</td><td>%d</td></tr>
`, url.PathEscape(rel.Version), escapeHTML(rel.Version), escapeHTML(rel.Repository),
				formatDate(rel), len(rel.Commits))
		}
		sb.WriteString(`			</tbody>
		</table>
`)
	}

	sb.WriteString(`	</div>
`)
	sb.WriteString(htmlFooter())

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderRelease renders one release with a row per commit.
func (r *HTMLRenderer) RenderRelease(w io.Writer, view *service.ReleaseView) error {
	var sb strings.Builder

	title := fmt.Sprintf("Release %s", view.Release.Version)
	sb.WriteString(htmlHead(title, ""))
	sb.WriteString(`
<body>
	`)
	sb.WriteString(iconSprite())
	fmt.Fprintf(&sb, `
	<div class="container">
		<h1>%s</h1>
		<p class="meta-text">%s &middot; %s</p>
		`, escapeHTML(title), externalLink(view.Repository.URL, view.Repository.Name), formatDate(view.Release))
	sb.WriteString(buildNavigation())
	sb.WriteString("\n")

	if len(view.Commits) == 0 {
		sb.WriteString(`		<div class="empty">This release has no commits.</div>
`)
	} else {
		sb.WriteString(`		<table>
			<thead><tr><th>Commit</th><th>Message</th><th>Author</th><th>Pull Request</th></tr></thead>
			<tbody>
`)
		for _, cl := range view.Commits {
			r.writeCommitRow(&sb, cl)
		}
		sb.WriteString(`			</tbody>
		</table>
`)
	}

	sb.WriteString(`	</div>
`)
	sb.WriteString(htmlFooter())

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCommitRow writes a single commit row to the string builder.
func (r *HTMLRenderer) writeCommitRow(sb *strings.Builder, cl service.CommitLink) {
	fmt.Fprintf(sb, `				<tr><td><code>%s</code></td><td>%s</td><td>%s</td><td>%s</td></tr>
`, escapeHTML(cl.Commit.ShortID()), escapeHTML(cl.Commit.Message), escapeHTML(cl.Commit.Author), pullRequestCell(cl))
}

func pullRequestCell(cl service.CommitLink) string {
	switch {
	case cl.Err != nil:
		return `<span class="meta-text">invalid reference</span>`
	case cl.Link == nil:
		return "-"
	default:
		return cl.Link.HTML()
	}
}

// releaseJSON is the API shape of a release.
type releaseJSON struct {
	Version    string            `json:"version"`
	Repository domain.Repository `json:"repository"`
	Created    string            `json:"dateCreated,omitempty"`
	Commits    []commitJSON      `json:"commits"`
}

type commitJSON struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	Author        string `json:"author"`
	PullRequestID string `json:"pullRequestId,omitempty"`
	URL           string `json:"pullRequestUrl,omitempty"`
	HTML          string `json:"pullRequestHtml,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (r *HTMLRenderer) RenderReleaseJSON(w io.Writer, view *service.ReleaseView) error {
	out := releaseJSON{
		Version:    view.Release.Version,
		Repository: view.Repository,
		Created:    formatDate(view.Release),
		Commits:    make([]commitJSON, 0, len(view.Commits)),
	}
	for _, cl := range view.Commits {
		c := commitJSON{
			ID:            cl.Commit.ID,
			Message:       cl.Commit.Message,
			Author:        cl.Commit.Author,
			PullRequestID: cl.Commit.PullRequestID,
		}
		if cl.Err != nil {
			c.Error = cl.Err.Error()
		} else if cl.Link != nil {
			c.URL = cl.Link.URL
			c.HTML = cl.Link.HTML()
		}
		out.Commits = append(out.Commits, c)
	}
	return json.NewEncoder(w).Encode(out)
}

func formatDate(rel domain.Release) string {
	if rel.DateCreated.IsZero() {
		return ""
	}
	return rel.DateCreated.Format("2006-01-02 15:04")
}
