package fs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"testpilot/internal/domain"
)

// Reader loads a source file as UTF-8 text.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) ReadSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", domain.ErrInputUnreadable, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8 text", domain.ErrInputUnreadable, path)
	}
	return string(data), nil
}
