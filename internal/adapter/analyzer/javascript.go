package analyzer

import (
	"regexp"
	"strings"

	"testpilot/internal/domain"
)

// JSAnalyzer extracts functions, classes, and methods from JavaScript or
// TypeScript source using line-scan heuristics. Top-level declarations
// must start at column zero (an optional export prefix is allowed);
// class bodies are tracked by brace depth and method declarations are
// matched only at the body's top level. Names with a leading underscore
// and TypeScript members marked private are excluded.
type JSAnalyzer struct {
	lang domain.Language
}

func NewJSAnalyzer(lang domain.Language) *JSAnalyzer {
	return &JSAnalyzer{lang: lang}
}

var (
	jsFuncRe         = regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([A-Za-z_$][\w$]*)\s*\(([^)]*)\)`)
	jsBindRe         = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?function\s*\*?\s*\(([^)]*)\)`)
	jsArrowRe        = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?\(([^)]*)\)\s*(?::\s*[^=]+)?=>`)
	jsArrowOneRe     = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?([A-Za-z_$][\w$]*)\s*=>`)
	jsClassRe        = regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)`)
	jsMethodRe       = regexp.MustCompile(`^\s*(?:(?:public|private|protected|readonly|static|override|async)\s+)*\*?\s*([A-Za-z_$][\w$]*)\s*\(([^)]*)\)\s*(?::\s*[^{]*)?\{`)
	jsLineCommentRe  = regexp.MustCompile(`^\s*//\s?(.*)$`)
	jsBlockCommentRe = regexp.MustCompile(`^\s*/?\*+/?\s?(.*?)\s*(?:\*+/)?$`)
	jsDecoratorRe    = regexp.MustCompile(`^\s*@`)
	jsIdentRe        = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
)

// jsMethodKeywords are control-flow words that jsMethodRe would otherwise
// mistake for method names inside a class body.
var jsMethodKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true,
	"catch": true, "return": true, "constructor": true, "function": true,
	"super": true, "new": true,
}

func (j *JSAnalyzer) Analyze(content string) (*domain.Analysis, error) {
	result := &domain.Analysis{Language: j.lang}
	lines := strings.Split(content, "\n")

	var class *domain.ClassEntity
	classSkipped := false
	depth := 0

	flush := func() {
		if class != nil {
			result.Classes = append(result.Classes, *class)
			class = nil
		}
		classSkipped = false
		depth = 0
	}

	inClass := false
	for i, line := range lines {
		if !inClass {
			if m := jsClassRe.FindStringSubmatch(line); m != nil {
				name := m[1]
				inClass = true
				depth = braceDelta(line)
				if isPrivateName(name) {
					classSkipped = true
				} else {
					class = &domain.ClassEntity{
						Name: name,
						Line: i + 1,
						Doc:  jsLeadingDoc(lines, i),
					}
				}
				continue
			}

			if name, params, ok := matchTopLevelFunc(line); ok {
				if isPrivateName(name) {
					continue
				}
				result.Functions = append(result.Functions, domain.CodeEntity{
					Name:       name,
					Kind:       domain.KindFunction,
					Parameters: j.parseParams(params),
					Line:       i + 1,
					Doc:        jsLeadingDoc(lines, i),
				})
			}
			continue
		}

		// Inside a class body: methods only at the body's top level.
		if depth == 1 && !classSkipped {
			if m := jsMethodRe.FindStringSubmatch(line); m != nil {
				name := m[1]
				private := isPrivateName(name) ||
					strings.HasPrefix(strings.TrimSpace(line), "private ")
				if !jsMethodKeywords[name] && !private {
					class.Methods = append(class.Methods, domain.CodeEntity{
						Name:       name,
						Kind:       domain.KindMethod,
						Parameters: j.parseParams(m[2]),
						Class:      class.Name,
						Line:       i + 1,
						Doc:        jsLeadingDoc(lines, i),
					})
				}
			}
		}

		depth += braceDelta(line)
		if depth <= 0 {
			inClass = false
			flush()
		}
	}

	flush()
	return result, nil
}

func matchTopLevelFunc(line string) (name, params string, ok bool) {
	for _, re := range []*regexp.Regexp{jsFuncRe, jsBindRe, jsArrowRe, jsArrowOneRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// jsLeadingDoc returns the contiguous // comment block or the /** */
// block ending immediately above the declaration at line i, with comment
// markers stripped. Decorator lines between the block and the declaration
// are skipped.
func jsLeadingDoc(lines []string, i int) string {
	j := i - 1
	for j >= 0 && jsDecoratorRe.MatchString(lines[j]) {
		j--
	}
	if j < 0 {
		return ""
	}

	if m := jsLineCommentRe.FindStringSubmatch(lines[j]); m != nil {
		comments := []string{strings.TrimSpace(m[1])}
		for j--; j >= 0; j-- {
			m := jsLineCommentRe.FindStringSubmatch(lines[j])
			if m == nil {
				break
			}
			comments = append([]string{strings.TrimSpace(m[1])}, comments...)
		}
		return strings.Join(comments, "\n")
	}

	// Block comment closing on the line above.
	if strings.HasSuffix(strings.TrimSpace(lines[j]), "*/") {
		var body []string
		for ; j >= 0; j-- {
			trimmed := strings.TrimSpace(lines[j])
			if m := jsBlockCommentRe.FindStringSubmatch(lines[j]); m != nil && m[1] != "" {
				body = append([]string{m[1]}, body...)
			}
			if strings.HasPrefix(trimmed, "/*") {
				break
			}
		}
		return strings.Join(body, "\n")
	}
	return ""
}

// parseParams extracts parameter names, stripping TypeScript type
// annotations, optional markers, rest prefixes, and default values.
func (j *JSAnalyzer) parseParams(raw string) []string {
	var params []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if idx := strings.IndexAny(name, ":="); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		name = strings.TrimPrefix(name, "...")
		name = strings.TrimSuffix(name, "?")
		if name == "" || !jsIdentRe.MatchString(name) {
			continue
		}
		params = append(params, name)
	}
	return params
}

// braceDelta returns the net curly-brace count of a line. String and
// comment contents are not tracked; this is part of the best-effort
// contract.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
