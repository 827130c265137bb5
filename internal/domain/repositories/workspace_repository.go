package repositories

// WorkspaceRepository resolves the directory the pipeline runs in.
type WorkspaceRepository interface {
	// Root returns the root of the work tree that contains dir.
	Root(dir string) (string, error)
}
