//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// StubWorkspaceRepository is a stub implementation of repositories.WorkspaceRepository.
type StubWorkspaceRepository struct {
	RootDir  string
	RootErr  error
	RootDirs []string
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) Root(dir string) (string, error) {
	s.RootDirs = append(s.RootDirs, dir)
	return s.RootDir, s.RootErr
}
