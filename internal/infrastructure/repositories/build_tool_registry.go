package repositories

import (
	"sort"

	domainRepos "github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// BuildToolRegistry manages all registered build tool implementations.
type BuildToolRegistry struct {
	buildTools map[string]domainRepos.BuildToolRepository
}

// NewBuildToolRegistry creates an empty build tool registry.
func NewBuildToolRegistry() *BuildToolRegistry {
	return &BuildToolRegistry{
		buildTools: make(map[string]domainRepos.BuildToolRepository),
	}
}

// Register adds a build tool under its name.
func (r *BuildToolRegistry) Register(b domainRepos.BuildToolRepository) {
	r.buildTools[b.Name()] = b
}

// Get returns the build tool with the given name, or nil if not registered.
func (r *BuildToolRegistry) Get(name string) domainRepos.BuildToolRepository {
	return r.buildTools[name]
}

// Names returns the sorted list of registered build tool names.
func (r *BuildToolRegistry) Names() []string {
	names := make([]string, 0, len(r.buildTools))
	for name := range r.buildTools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
