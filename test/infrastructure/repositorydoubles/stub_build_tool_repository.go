//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// SpyBuildToolRepository implements repositories.BuildToolRepository as a configurable spy.
type SpyBuildToolRepository struct {
	// --- identity ---
	BuildToolName string

	// --- ListProjects ---
	ProjectsOutput  string
	ListProjectsErr error
	ProjectsDirs    []string

	// --- ListDependencies ---
	DependenciesOutput  string
	ListDependenciesErr error
	DependenciesCalls   []ListDependenciesCall
}

// ListDependenciesCall records a single invocation of ListDependencies.
type ListDependenciesCall struct {
	Dir         string
	Config      entities.BuildToolConfig
	Subprojects []string
}

var _ repositories.BuildToolRepository = (*SpyBuildToolRepository)(nil)

func (s *SpyBuildToolRepository) Name() string {
	if s.BuildToolName == "" {
		return "gradle"
	}
	return s.BuildToolName
}

func (s *SpyBuildToolRepository) ListProjects(
	_ context.Context, dir string, _ entities.BuildToolConfig,
) (string, error) {
	s.ProjectsDirs = append(s.ProjectsDirs, dir)
	return s.ProjectsOutput, s.ListProjectsErr
}

func (s *SpyBuildToolRepository) ListDependencies(
	_ context.Context,
	dir string,
	config entities.BuildToolConfig,
	subprojects []string,
) (string, error) {
	s.DependenciesCalls = append(s.DependenciesCalls, ListDependenciesCall{
		Dir:         dir,
		Config:      config,
		Subprojects: subprojects,
	})
	return s.DependenciesOutput, s.ListDependenciesErr
}
