package prlink

import (
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/vilaca/release-dashboard/internal/domain"
)

// URLBuilder knows how a provider lays out pull request pages.
type URLBuilder interface {
	PullRequestURL(repoURL, pullRequestID string) string
}

// URLBuilderFunc adapts a plain function to URLBuilder.
type URLBuilderFunc func(repoURL, pullRequestID string) string

func (f URLBuilderFunc) PullRequestURL(repoURL, pullRequestID string) string {
	return f(repoURL, pullRequestID)
}

var (
	// GitHubURLs builds https://github.com/org/repo/pull/<id>.
	GitHubURLs URLBuilder = URLBuilderFunc(func(repoURL, id string) string {
		return joinPath(repoURL, "pull", id)
	})

	// BitbucketURLs builds https://bitbucket.org/org/repo/pull-requests/<id>.
	BitbucketURLs URLBuilder = URLBuilderFunc(func(repoURL, id string) string {
		return joinPath(repoURL, "pull-requests", id)
	})
)

func joinPath(repoURL, segment, id string) string {
	return strings.TrimRight(repoURL, "/") + "/" + segment + "/" + url.PathEscape(id)
}

// Registry maps provider ids to URL builders.
// Follows Open/Closed Principle - new providers are registered, not coded in.
type Registry struct {
	builders map[string]URLBuilder
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry. Nothing gets a URL until a builder
// is registered.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]URLBuilder),
	}
}

// DefaultRegistry returns a registry that only knows GitHub.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(domain.ProviderGitHub, GitHubURLs)
	return r
}

// Register adds or replaces the builder for a provider id.
func (r *Registry) Register(providerID string, b URLBuilder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[providerID] = b
}

// Lookup returns the builder registered for the provider id.
func (r *Registry) Lookup(providerID string) (URLBuilder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[providerID]
	return b, ok
}

// Providers returns the registered provider ids, sorted.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
