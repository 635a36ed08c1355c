package domain

// Provider identifiers as they appear in repository descriptors.
const (
	// ProviderGitHub represents repositories hosted on GitHub
	ProviderGitHub = "github"
	// ProviderBitbucket represents repositories hosted on Bitbucket
	ProviderBitbucket = "bitbucket"
)
