package repositories

// ChangelogRepository reads and writes changelog documents.
type ChangelogRepository interface {
	// Read returns the whole document at path.
	Read(path string) (string, error)

	// Write replaces the document at path with content.
	Write(path, content string) error
}
