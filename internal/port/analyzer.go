package port

import "testpilot/internal/domain"

// Analyzer extracts functions and classes from raw source text.
// Implementations are best-effort: constructs they cannot match are
// skipped, and a result with zero entities is valid.
type Analyzer interface {
	Analyze(content string) (*domain.Analysis, error)
}
