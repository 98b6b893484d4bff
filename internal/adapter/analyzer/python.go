package analyzer

import (
	"regexp"
	"strings"

	"testpilot/internal/domain"
)

// PythonAnalyzer extracts functions, classes, and methods from Python
// source using line-scan heuristics. Recognition is best-effort: a def at
// column zero is a top-level function, a def indented inside a class block
// is a method, and anything the patterns cannot match is skipped. Names
// with a leading underscore are excluded.
type PythonAnalyzer struct{}

func NewPythonAnalyzer() *PythonAnalyzer {
	return &PythonAnalyzer{}
}

var (
	pyDefRe       = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]*)\)`)
	pyClassRe     = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?:\([^)]*\))?\s*:`)
	pyCommentRe   = regexp.MustCompile(`^\s*#\s?(.*)$`)
	pyDecoratorRe = regexp.MustCompile(`^\s*@`)
	pyDocOpenRe   = regexp.MustCompile(`^\s*(?:'''|""")(.*)$`)
)

func (p *PythonAnalyzer) Analyze(content string) (*domain.Analysis, error) {
	result := &domain.Analysis{Language: domain.LangPython}
	lines := strings.Split(content, "\n")

	var class *domain.ClassEntity
	classSkipped := false

	flush := func() {
		if class != nil {
			result.Classes = append(result.Classes, *class)
			class = nil
		}
		classSkipped = false
	}

	for i, line := range lines {
		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			flush()
			name := m[1]
			if isPrivateName(name) {
				// Skip the class and everything indented under it.
				classSkipped = true
				continue
			}
			class = &domain.ClassEntity{
				Name: name,
				Line: i + 1,
				Doc:  pyLeadingDoc(lines, i),
			}
			continue
		}

		m := pyDefRe.FindStringSubmatch(line)
		if m == nil {
			// Any other statement at column zero ends the class scope.
			if (class != nil || classSkipped) && line != "" && !strings.HasPrefix(line, " ") &&
				!strings.HasPrefix(line, "\t") && !pyCommentRe.MatchString(line) {
				flush()
			}
			continue
		}

		indent, name, params := m[1], m[2], m[3]
		if isPrivateName(name) {
			continue
		}

		entity := domain.CodeEntity{
			Name:       name,
			Parameters: parsePyParams(params),
			Line:       i + 1,
			Doc:        pyLeadingDoc(lines, i),
		}

		if indent == "" {
			flush()
			entity.Kind = domain.KindFunction
			result.Functions = append(result.Functions, entity)
			continue
		}

		if classSkipped || class == nil {
			// Indented def outside a recognized class (nested function,
			// or method of a private class).
			continue
		}
		entity.Kind = domain.KindMethod
		entity.Class = class.Name
		class.Methods = append(class.Methods, entity)
	}

	flush()
	return result, nil
}

// pyLeadingDoc returns doc text for the declaration at line i: a
// contiguous # comment block immediately above wins; failing that, a
// docstring opening the body. Decorator lines between the comment block
// and the declaration are skipped.
func pyLeadingDoc(lines []string, i int) string {
	j := i - 1
	for j >= 0 && pyDecoratorRe.MatchString(lines[j]) {
		j--
	}

	var comments []string
	for j >= 0 {
		m := pyCommentRe.FindStringSubmatch(lines[j])
		if m == nil {
			break
		}
		comments = append([]string{strings.TrimSpace(m[1])}, comments...)
		j--
	}
	if len(comments) > 0 {
		return strings.Join(comments, "\n")
	}

	// Docstring on the first body line.
	if i+1 < len(lines) {
		if m := pyDocOpenRe.FindStringSubmatch(lines[i+1]); m != nil {
			text := m[1]
			for _, q := range []string{`"""`, `'''`} {
				if idx := strings.Index(text, q); idx >= 0 {
					text = text[:idx]
				}
			}
			return strings.TrimSpace(text)
		}
	}
	return ""
}

// parsePyParams extracts parameter names from the raw parenthesized list,
// stripping annotations, defaults, and the self/cls receiver.
func parsePyParams(raw string) []string {
	var params []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if idx := strings.IndexAny(name, ":="); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		name = strings.TrimLeft(name, "*")
		if name == "" || name == "self" || name == "cls" || name == "/" {
			continue
		}
		params = append(params, name)
	}
	return params
}

// isPrivateName reports whether a name follows the private convention.
func isPrivateName(name string) bool {
	return strings.HasPrefix(name, "_")
}
