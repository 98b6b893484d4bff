package analyzer

import (
	"fmt"

	"testpilot/internal/domain"
	"testpilot/internal/port"
)

// registry maps language tags to their analyzer implementation. Adding a
// language means adding a detection entry and one implementation here;
// nothing in the orchestrator changes.
var registry = map[domain.Language]port.Analyzer{
	domain.LangPython:     NewPythonAnalyzer(),
	domain.LangJavaScript: NewJSAnalyzer(domain.LangJavaScript),
	domain.LangTypeScript: NewJSAnalyzer(domain.LangTypeScript),
}

// ForLanguage returns the analyzer for a detected language tag.
func ForLanguage(lang domain.Language) (port.Analyzer, error) {
	a, ok := registry[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, lang)
	}
	return a, nil
}
