package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
)

var (
	// ErrRepositoryNotFound is returned when no repository is registered under a name.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrReleaseNotFound is returned for an unknown release version.
	ErrReleaseNotFound = errors.New("release not found")
)

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// CommitLink pairs a commit with its rendered pull request reference.
// Link is nil when the commit has no pull request or rendering failed (Err).
type CommitLink struct {
	Commit domain.Commit
	Link   *prlink.Link
	Err    error
}

// ReleaseView is a release resolved against its repository.
type ReleaseView struct {
	Release    domain.Release
	Repository domain.Repository
	Commits    []CommitLink
}

// ReleaseService answers release questions from an in-memory catalog.
// Follows Single Responsibility Principle - orchestrates catalog lookups and link rendering.
type ReleaseService struct {
	links        *prlink.Renderer
	repositories map[string]domain.Repository
	releases     map[string]domain.Release
	mu           sync.RWMutex
}

// NewReleaseService creates a service that renders links with links.
func NewReleaseService(links *prlink.Renderer) *ReleaseService {
	return &ReleaseService{
		links:        links,
		repositories: make(map[string]domain.Repository),
		releases:     make(map[string]domain.Release),
	}
}

// Replace swaps the served catalog. The catalog must already be valid.
func (s *ReleaseService) Replace(c *Catalog) {
	repositories := make(map[string]domain.Repository, len(c.Repositories))
	for _, repo := range c.Repositories {
		repositories[repo.Name] = repo
	}
	releases := make(map[string]domain.Release, len(c.Releases))
	for _, rel := range c.Releases {
		releases[rel.Version] = rel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.repositories = repositories
	s.releases = releases
}

// Repository returns the repository registered under name.
func (s *ReleaseService) Repository(name string) (domain.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repo, ok := s.repositories[name]
	if !ok {
		return domain.Repository{}, fmt.Errorf("%q: %w", name, ErrRepositoryNotFound)
	}
	return repo, nil
}

// Releases returns all releases, newest first.
func (s *ReleaseService) Releases() []domain.Release {
	s.mu.RLock()
	result := make([]domain.Release, 0, len(s.releases))
	for _, rel := range s.releases {
		result = append(result, rel)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].DateCreated.Equal(result[j].DateCreated) {
			return result[i].DateCreated.After(result[j].DateCreated)
		}
		return result[i].Version > result[j].Version
	})
	return result
}

// Release returns one release by version together with its commit links.
func (s *ReleaseService) Release(version string, inline bool) (*ReleaseView, error) {
	s.mu.RLock()
	rel, ok := s.releases[version]
	repo, repoOK := s.repositories[rel.Repository]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", version, ErrReleaseNotFound)
	}
	if !repoOK {
		return nil, fmt.Errorf("release %q: %q: %w", version, rel.Repository, ErrRepositoryNotFound)
	}

	view := &ReleaseView{
		Release:    rel,
		Repository: repo,
		Commits:    make([]CommitLink, 0, len(rel.Commits)),
	}
	for _, c := range rel.Commits {
		view.Commits = append(view.Commits, s.commitLink(c, &repo, inline))
	}
	return view, nil
}

// PullRequestLink renders a single reference for a named repository.
func (s *ReleaseService) PullRequestLink(repository, pullRequestID string, inline bool) (prlink.Link, error) {
	if repository == "" {
		return prlink.Link{}, prlink.ErrMissingRepository
	}
	repo, err := s.Repository(repository)
	if err != nil {
		return prlink.Link{}, err
	}
	return s.links.Render(pullRequestID, &repo, inline)
}

func (s *ReleaseService) commitLink(c domain.Commit, repo *domain.Repository, inline bool) CommitLink {
	cl := CommitLink{Commit: c}
	if c.PullRequestID == "" {
		return cl
	}

	link, err := s.links.Render(c.PullRequestID, repo, inline)
	if err != nil {
		cl.Err = err
		return cl
	}
	cl.Link = &link
	return cl
}
