package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"

	"testpilot/internal/domain"
)

// langByExt maps file extensions to language tags.
var langByExt = map[string]domain.Language{
	".py": domain.LangPython,
	".js": domain.LangJavaScript,
	".ts": domain.LangTypeScript,
}

// SupportedExtensions returns the recognized extensions in a fixed order.
func SupportedExtensions() []string {
	return []string{".py", ".js", ".ts"}
}

// Detect maps a file path to its language tag based solely on the
// extension. Unknown extensions fail with domain.ErrUnsupportedLanguage.
func Detect(path string) (domain.Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := langByExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q (supported: %s)",
			domain.ErrUnsupportedLanguage, ext, strings.Join(SupportedExtensions(), ", "))
	}
	return lang, nil
}
