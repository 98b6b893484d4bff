package domain

import "errors"

// Error taxonomy for the pipeline. Fatal errors wrap one of these
// sentinels so the CLI can name which half of the run failed.
var (
	// ErrUnsupportedLanguage means the input extension is not in the
	// supported set. Raised before any output is written.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInputNotFound means the input path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable means the input exists but could not be read
	// or is not valid UTF-8 text.
	ErrInputUnreadable = errors.New("input file unreadable")

	// ErrRenderFailed means test or report rendering failed. No output
	// is written when rendering fails.
	ErrRenderFailed = errors.New("rendering failed")

	// ErrWriteFailed means committing the output files failed. The
	// writer guarantees no partial artifacts are left behind.
	ErrWriteFailed = errors.New("writing outputs failed")
)
