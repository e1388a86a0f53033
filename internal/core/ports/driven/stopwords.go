package driven

// StopWordStore loads named stop-word lists.
// Implementations fall back to built-in lists when no user list exists.
type StopWordStore interface {
	// Load returns the terms of the named list, or of the list file when
	// name is a path.
	Load(name string) ([]string, error)

	// Names returns the names of the built-in lists.
	Names() []string

	// Dir returns the directory user lists are read from.
	Dir() string
}
