//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

// InMemoryChangelogRepository implements repositories.ChangelogRepository on a map.
type InMemoryChangelogRepository struct {
	Files    map[string]string // path -> content
	ReadErr  error
	WriteErr error
	// spy: paths written, in order
	Written []string
}

var _ repositories.ChangelogRepository = (*InMemoryChangelogRepository)(nil)

// NewInMemoryChangelogRepository creates a repository holding the given files.
func NewInMemoryChangelogRepository(files map[string]string) *InMemoryChangelogRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &InMemoryChangelogRepository{Files: files}
}

func (r *InMemoryChangelogRepository) Read(path string) (string, error) {
	if r.ReadErr != nil {
		return "", r.ReadErr
	}
	content, ok := r.Files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (r *InMemoryChangelogRepository) Write(path, content string) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	r.Files[path] = content
	r.Written = append(r.Written, path)
	return nil
}
