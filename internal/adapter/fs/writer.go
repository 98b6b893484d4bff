package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"testpilot/internal/domain"
)

// Writer commits the two output artifacts with atomic-or-nothing
// semantics: contents go to temp files in the destination directory
// first, then rename into place. If the second rename fails the first
// artifact is removed, so a failed run never leaves a partial pair.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WritePair(dir, testName, testBody, reportName, reportBody string) error {
	testTmp, err := writeTemp(dir, testName, testBody)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	reportTmp, err := writeTemp(dir, reportName, reportBody)
	if err != nil {
		os.Remove(testTmp)
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	testPath := filepath.Join(dir, testName)
	reportPath := filepath.Join(dir, reportName)

	if err := os.Rename(testTmp, testPath); err != nil {
		os.Remove(testTmp)
		os.Remove(reportTmp)
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, testPath, err)
	}
	if err := os.Rename(reportTmp, reportPath); err != nil {
		os.Remove(testPath)
		os.Remove(reportTmp)
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, reportPath, err)
	}
	return nil
}

func writeTemp(dir, name, body string) (string, error) {
	f, err := os.CreateTemp(dir, ".tmp-"+name+"-*")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
