package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// WorkspaceRepository locates Git work trees with go-git.
type WorkspaceRepository struct{}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a new WorkspaceRepository.
func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{}
}

// Root walks up from dir until it finds a ".git" entry and returns the root
// of that work tree.
func (it *WorkspaceRepository) Root(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", dir, err)
	}

	logger.Debugf("[git] opening repository at %s", absDir)
	repo, err := gogit.PlainOpenWithOptions(absDir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", absDir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree of %s: %w", absDir, err)
	}
	return worktree.Filesystem.Root(), nil
}
