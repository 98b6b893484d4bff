package domain

// Language identifies a supported source language.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
)

// EntityKind classifies a discovered callable.
type EntityKind string

const (
	KindFunction EntityKind = "function"
	KindMethod   EntityKind = "method"
)

// CodeEntity is one discovered function or method.
type CodeEntity struct {
	Name       string
	Kind       EntityKind
	Parameters []string // parameter names only, best effort
	Class      string   // owning class, set for methods
	Doc        string   // leading comment or docstring, may be empty
	Line       int      // 1-based declaration line
}

// ClassEntity is one discovered class definition with its methods.
type ClassEntity struct {
	Name    string
	Line    int
	Doc     string
	Methods []CodeEntity
}

// Analysis is the result of scanning a single source file.
// Functions holds top-level functions only; methods live under Classes.
// Both slices preserve source order.
type Analysis struct {
	Path      string
	Language  Language
	Functions []CodeEntity
	Classes   []ClassEntity
}

// Empty reports whether the scan found nothing.
func (a *Analysis) Empty() bool {
	return len(a.Functions) == 0 && len(a.Classes) == 0
}

// MethodCount returns the total number of methods across all classes.
func (a *Analysis) MethodCount() int {
	n := 0
	for _, c := range a.Classes {
		n += len(c.Methods)
	}
	return n
}
