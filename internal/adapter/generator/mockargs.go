package generator

import (
	"path/filepath"
	"strings"

	"testpilot/internal/domain"
)

// mockStringNames, mockNumberNames, and mockBoolNames classify parameter
// names into placeholder value families. The match is on the lowercased
// full name; anything unmatched falls through to a generic mock string.
var (
	mockStringNames = map[string]bool{"name": true, "title": true, "text": true, "str": true, "path": true, "label": true}
	mockNumberNames = map[string]bool{"num": true, "count": true, "size": true, "int": true, "index": true, "limit": true}
	mockBoolNames   = map[string]bool{"flag": true, "enabled": true, "bool": true, "active": true}
)

// mockValue returns a positional placeholder argument for a parameter.
// trueLit is the language's boolean true literal.
func mockValue(param, trueLit string) string {
	lower := strings.ToLower(param)
	switch {
	case mockStringNames[lower]:
		return "'test_" + param + "'"
	case mockNumberNames[lower]:
		return "1"
	case mockBoolNames[lower]:
		return trueLit
	default:
		return "'mock_" + param + "'"
	}
}

// mockArgs renders a full positional argument list.
func mockArgs(params []string, trueLit string) string {
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = mockValue(p, trueLit)
	}
	return strings.Join(args, ", ")
}

// moduleName returns the import/module identifier for a source path: the
// base name without its extension.
func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TestFileName returns the conventional test file name for a source path.
func TestFileName(path string, lang domain.Language) string {
	stem := moduleName(path)
	switch lang {
	case domain.LangPython:
		return "test_" + stem + ".py"
	case domain.LangTypeScript:
		return stem + ".test.ts"
	default:
		return stem + ".test.js"
	}
}
