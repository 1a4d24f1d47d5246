package core

// Confirmer answers the yes/no question attached to every fixable finding.
// Implementations decide whether to ask the operator, answer yes for the
// whole run, or answer no and only report.
type Confirmer interface {
	Confirm(question string) bool
}

// Writable is a document that knows where it lives on disk and how to render
// itself for writing.
type Writable interface {
	GetFilePath() string
	Marshal() ([]byte, error)
}

// DocWriter persists a Writable back to its file path.
// There is a single implementation writing to the real filesystem; tests
// substitute their own to capture writes.
type DocWriter interface {
	Write(doc Writable) error
}
