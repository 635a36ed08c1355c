package domain

// ProviderKind is the closed set of source-control providers the dashboard
// knows about. Anything else is ProviderKindOther and keeps its raw id.
type ProviderKind int

const (
	ProviderKindOther ProviderKind = iota
	ProviderKindGitHub
	ProviderKindBitbucket
)

// Provider identifies the hosting service of a repository.
type Provider struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Kind maps the provider id onto a ProviderKind by exact match.
func (p Provider) Kind() ProviderKind {
	switch p.ID {
	case ProviderGitHub:
		return ProviderKindGitHub
	case ProviderBitbucket:
		return ProviderKindBitbucket
	default:
		return ProviderKindOther
	}
}

// Repository describes a repository a release is cut from.
// Follows Single Responsibility - only holds repository data.
type Repository struct {
	Name     string   `yaml:"name" json:"name"`
	URL      string   `yaml:"url" json:"url"` // Base web URL, e.g. https://github.com/org/repo
	Provider Provider `yaml:"provider" json:"provider"`
}
