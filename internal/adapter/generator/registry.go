package generator

import (
	"fmt"

	"testpilot/internal/domain"
	"testpilot/internal/port"
)

// registry maps language tags to their test renderer.
var registry = map[domain.Language]port.TestRenderer{
	domain.LangPython:     NewPythonRenderer(),
	domain.LangJavaScript: NewJSRenderer(domain.LangJavaScript),
	domain.LangTypeScript: NewJSRenderer(domain.LangTypeScript),
}

// ForLanguage returns the test renderer for a detected language tag.
func ForLanguage(lang domain.Language) (port.TestRenderer, error) {
	r, ok := registry[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, lang)
	}
	return r, nil
}
