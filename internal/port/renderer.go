package port

import "testpilot/internal/domain"

// TestRenderer renders a test-file body for one analysis result.
type TestRenderer interface {
	Render(a *domain.Analysis) (string, error)
}

// ReportRenderer renders the markdown coverage report.
type ReportRenderer interface {
	RenderReport(a *domain.Analysis, testFile string) string
}
