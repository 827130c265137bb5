package repositories

import (
	domainRepos "github.com/rios0rios0/changelogdeps/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/changelogdeps/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/changelogdeps/internal/infrastructure/repositories/git"
	gradleRepo "github.com/rios0rios0/changelogdeps/internal/infrastructure/repositories/gradle"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register build tool registry with all build tool implementations
	if err := container.Provide(func() *BuildToolRegistry {
		reg := NewBuildToolRegistry()
		reg.Register(gradleRepo.NewBuildToolRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ChangelogRepository {
		return fsRepo.NewChangelogRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.WorkspaceRepository {
		return gitRepo.NewWorkspaceRepository()
	}); err != nil {
		return err
	}

	return nil
}
