package repositories

import (
	"context"

	"github.com/rios0rios0/changelogdeps/internal/domain/entities"
)

// BuildToolRepository abstracts the build tool that knows the project layout
// and its declared dependencies. Implementations return the raw report text;
// parsing belongs to the domain.
type BuildToolRepository interface {
	// Name returns the build tool identifier (e.g. "gradle").
	Name() string

	// ListProjects runs the project-listing command in dir and returns its output.
	ListProjects(ctx context.Context, dir string, config entities.BuildToolConfig) (string, error)

	// ListDependencies runs a single dependency-listing command covering every
	// given subproject in dir and returns its output.
	ListDependencies(
		ctx context.Context,
		dir string,
		config entities.BuildToolConfig,
		subprojects []string,
	) (string, error)
}
