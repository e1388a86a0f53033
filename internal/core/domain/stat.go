package domain

// StatSummary is a point-in-time aggregate over a resolved document set.
type StatSummary struct {
	// Files is the number of documents that existed when measured.
	Files int

	// Categories is the number of distinct categories involved.
	Categories int

	// Extensions counts documents per lowercased, dot-stripped extension.
	Extensions map[string]int

	// TotalSize, MaxSize and MinSize are byte sizes.
	TotalSize int64
	MaxSize   int64
	MinSize   int64

	// MeanSize is TotalSize / Files.
	MeanSize float64

	// Paragraphs, Sentences and Words are filled by text readers only.
	// Words stays zero unless explicitly requested.
	Paragraphs int
	Sentences  int
	Words      int
}
