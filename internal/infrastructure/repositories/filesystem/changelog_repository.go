package filesystem

import (
	"fmt"
	"os"

	"github.com/rios0rios0/changelogdeps/internal/domain/repositories"
)

const changelogFileMode = 0o644

// ChangelogRepository reads and writes changelog files on the local disk.
type ChangelogRepository struct{}

var _ repositories.ChangelogRepository = (*ChangelogRepository)(nil)

// NewChangelogRepository creates a new ChangelogRepository.
func NewChangelogRepository() *ChangelogRepository {
	return &ChangelogRepository{}
}

// Read returns the content of the file at path.
func (it *ChangelogRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write creates or truncates the file at path.
func (it *ChangelogRepository) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), changelogFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
