package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"testpilot/internal/domain"
)

// Renderer produces the markdown coverage report. Output is a pure
// function of the analysis, so reruns on unchanged input are
// byte-identical.
type Renderer struct {
	excerptLen int
}

func NewRenderer(excerptLen int) *Renderer {
	if excerptLen <= 0 {
		excerptLen = 100
	}
	return &Renderer{excerptLen: excerptLen}
}

func (r *Renderer) RenderReport(a *domain.Analysis, testFile string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Test Report for %s\n\n", filepath.Base(a.Path))
	fmt.Fprintf(&b, "This report details the test coverage for the source file: `%s`\n\n", a.Path)

	b.WriteString("## Source Code Analysis\n")
	fmt.Fprintf(&b, "- Language: %s\n", a.Language)
	fmt.Fprintf(&b, "- Total Functions: %d\n", len(a.Functions))
	fmt.Fprintf(&b, "- Total Classes: %d\n\n", len(a.Classes))

	if a.Empty() {
		b.WriteString("No functions or classes found.\n\n")
	}

	if len(a.Functions) > 0 {
		b.WriteString("## Functions Analyzed\n\n")
		for _, fn := range a.Functions {
			fmt.Fprintf(&b, "- **%s** (line %d)\n", fn.Name, fn.Line)
			if fn.Doc != "" {
				fmt.Fprintf(&b, "  - Description: %s\n", r.excerpt(fn.Doc))
			}
			fmt.Fprintf(&b, "  - Arguments: %d (%s)\n\n", len(fn.Parameters), argList(fn.Parameters))
		}
	}

	if len(a.Classes) > 0 {
		b.WriteString("## Classes Analyzed\n\n")
		for _, cls := range a.Classes {
			fmt.Fprintf(&b, "- **%s** (line %d)\n", cls.Name, cls.Line)
			if cls.Doc != "" {
				fmt.Fprintf(&b, "  - Description: %s\n", r.excerpt(cls.Doc))
			}
			fmt.Fprintf(&b, "  - Methods: %d\n", len(cls.Methods))
			for _, m := range cls.Methods {
				fmt.Fprintf(&b, "    - %s (line %d)\n", m.Name, m.Line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Test Coverage Status\n")
	b.WriteString("- Basic tests: generated\n")
	b.WriteString("- Edge case tests: manual implementation needed\n")
	b.WriteString("- Integration tests: not implemented\n\n")

	b.WriteString("## Next Steps\n")
	b.WriteString("1. Review the generated tests\n")
	b.WriteString("2. Implement the actual test logic in the TODO sections\n")
	b.WriteString("3. Add more specific assertions based on expected behavior\n")
	b.WriteString("4. Run the tests to validate functionality\n\n")

	b.WriteString("## Test File Location\n")
	fmt.Fprintf(&b, "The test file has been generated as: `%s`\n", testFile)

	return b.String()
}

// excerpt returns the first line of a doc comment, truncated.
func (r *Renderer) excerpt(doc string) string {
	line := doc
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if len(line) > r.excerptLen {
		return line[:r.excerptLen] + "..."
	}
	return line
}

func argList(params []string) string {
	if len(params) == 0 {
		return "none"
	}
	return strings.Join(params, ", ")
}
