package port

// FileReader reads a source file as text.
type FileReader interface {
	ReadSource(path string) (string, error)
}

// PairWriter commits the two output artifacts atomically: after a
// successful call both files exist with the given contents; after a
// failed call neither does.
type PairWriter interface {
	WritePair(dir, testName, testBody, reportName, reportBody string) error
}
