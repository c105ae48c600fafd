package driven

// FileLoader extracts plain text from a file on disk so it can become
// a corpus entry. Implementations decide which formats they accept.
type FileLoader interface {
	// Supports reports whether the loader can handle the file.
	Supports(path string) bool

	// Load reads the file and returns a display label and its plain
	// text content.
	Load(path string) (label, text string, err error)
}
