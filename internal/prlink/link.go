// Package prlink renders references to pull requests as HTML fragments:
// a link to the provider's pull request page when one can be built, plain
// text otherwise.
package prlink

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vilaca/release-dashboard/internal/domain"
)

var (
	// ErrMissingRepository is returned when no repository descriptor is given.
	ErrMissingRepository = errors.New("repository is required")
	// ErrMissingProvider is returned when the repository has an empty provider id.
	ErrMissingProvider = errors.New("repository provider is required")
	// ErrMissingPullRequestID is returned for an empty pull request id.
	ErrMissingPullRequestID = errors.New("pull request id is required")
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes special HTML characters to prevent XSS.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// CSS classes for the two link styles.
const (
	InlineClass = "inline-commit"
	ButtonClass = "btn btn-default btn-sm"
)

// Icon names an SVG sprite symbol.
type Icon string

const (
	IconNone      Icon = ""
	IconGitHub    Icon = "icon-github"
	IconBitbucket Icon = "icon-bitbucket"
)

const iconSize = "14px"

// IconFor picks the provider glyph. Only exact provider ids match.
func IconFor(p domain.Provider) Icon {
	switch p.Kind() {
	case domain.ProviderKindGitHub:
		return IconGitHub
	case domain.ProviderKindBitbucket:
		return IconBitbucket
	default:
		return IconNone
	}
}

// Label returns the display label for a pull request id.
func Label(pullRequestID string) string {
	return "#" + pullRequestID
}

// Link is the rendered reference. URL is empty when the provider has no
// known pull request path.
type Link struct {
	Label  string
	URL    string
	Icon   Icon
	Inline bool
}

// IsLink reports whether the reference is clickable.
func (l Link) IsLink() bool {
	return l.URL != ""
}

// Class returns the CSS class of the anchor.
func (l Link) Class() string {
	if l.Inline {
		return InlineClass
	}
	return ButtonClass
}

// HTML returns the escaped markup for the reference.
func (l Link) HTML() string {
	label := EscapeHTML(l.Label)
	if !l.IsLink() {
		return "<span>" + label + "</span>"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<a class="%s" href="%s" target="_blank" rel="noopener noreferrer">`,
		l.Class(), EscapeHTML(l.URL))
	if l.Icon != IconNone {
		fmt.Fprintf(&sb, `<svg class="icon" width="%s" height="%s" style="vertical-align: text-top"><use href="#%s"></use></svg>`,
			iconSize, iconSize, l.Icon)
	}
	sb.WriteString("&nbsp;")
	// button style keeps a gap between glyph and label
	if !l.Inline {
		sb.WriteString(" ")
	}
	sb.WriteString(label)
	sb.WriteString("</a>")
	return sb.String()
}

// Renderer turns pull request references into Links.
// It holds no per-call state, so one Renderer is shared by all requests.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer backed by the given registry.
// A nil registry falls back to DefaultRegistry.
func NewRenderer(registry *Registry) *Renderer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Renderer{registry: registry}
}

// Render builds the Link for a pull request of repo. The inputs are only read.
func (r *Renderer) Render(pullRequestID string, repo *domain.Repository, inline bool) (Link, error) {
	if repo == nil {
		return Link{}, ErrMissingRepository
	}
	if repo.Provider.ID == "" {
		return Link{}, fmt.Errorf("repository %q: %w", repo.Name, ErrMissingProvider)
	}
	if pullRequestID == "" {
		return Link{}, ErrMissingPullRequestID
	}

	link := Link{
		Label:  Label(pullRequestID),
		Inline: inline,
	}

	builder, ok := r.registry.Lookup(repo.Provider.ID)
	if !ok {
		return link, nil
	}

	link.URL = builder.PullRequestURL(repo.URL, pullRequestID)
	link.Icon = IconFor(repo.Provider)
	return link, nil
}

// RenderHTML is Render followed by Link.HTML.
func (r *Renderer) RenderHTML(pullRequestID string, repo *domain.Repository, inline bool) (string, error) {
	link, err := r.Render(pullRequestID, repo, inline)
	if err != nil {
		return "", err
	}
	return link.HTML(), nil
}
