package domain

import "time"

// Release is a tagged version of a repository and the commits it shipped.
type Release struct {
	Version     string    `yaml:"version" json:"version"`
	Repository  string    `yaml:"repository" json:"repository"` // Repository.Name
	DateCreated time.Time `yaml:"date_created" json:"dateCreated"`
	Commits     []Commit  `yaml:"commits" json:"commits"`
}

// Commit is a single change in a release. PullRequestID is empty when the
// commit did not land through a pull request.
type Commit struct {
	ID            string `yaml:"id" json:"id"`
	Message       string `yaml:"message" json:"message"`
	Author        string `yaml:"author" json:"author"`
	PullRequestID string `yaml:"pull_request_id,omitempty" json:"pullRequestId,omitempty"`
}

// ShortID returns the first 7 characters of the commit id.
func (c Commit) ShortID() string {
	if len(c.ID) > 7 {
		return c.ID[:7]
	}
	return c.ID
}
