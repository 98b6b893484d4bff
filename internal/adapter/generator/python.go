package generator

import (
	"fmt"
	"strings"

	"testpilot/internal/domain"
)

// PythonRenderer renders a unittest-style test skeleton. The framework
// choice is fixed; every stub carries a TODO marker and a trivial
// placeholder assertion so the file runs green until filled in.
type PythonRenderer struct{}

func NewPythonRenderer() *PythonRenderer {
	return &PythonRenderer{}
}

// Template fragments. Kept as data so adding a language stays a
// table-plus-implementation change.
const (
	pyHeader = `import unittest
from unittest.mock import Mock, patch

import %s


class Test%s(unittest.TestCase):
    def setUp(self):
        # Setup code for tests
        pass
`

	pyEmptyBody = `
    # No functions or classes found in %s
    def test_nothing_to_cover(self):
        self.assertTrue(True)
`

	pyFooter = `

if __name__ == '__main__':
    unittest.main()
`
)

func (r *PythonRenderer) Render(a *domain.Analysis) (string, error) {
	module := moduleName(a.Path)
	var b strings.Builder
	fmt.Fprintf(&b, pyHeader, module, pyClassName(module))

	if a.Empty() {
		fmt.Fprintf(&b, pyEmptyBody, module+".py")
		b.WriteString(pyFooter)
		return b.String(), nil
	}

	for _, fn := range a.Functions {
		r.writeFunctionStubs(&b, module, fn)
	}
	for _, cls := range a.Classes {
		r.writeClassStubs(&b, module, cls)
	}

	b.WriteString(pyFooter)
	return b.String(), nil
}

func (r *PythonRenderer) writeFunctionStubs(b *strings.Builder, module string, fn domain.CodeEntity) {
	fmt.Fprintf(b, "\n    def test_%s_basic(self):\n", fn.Name)
	fmt.Fprintf(b, "        # Test basic functionality of %s\n", fn.Name)
	fmt.Fprintf(b, "        # TODO: Implement actual test for %s\n", fn.Name)
	fmt.Fprintf(b, "        # result = %s.%s(%s)\n", module, fn.Name, mockArgs(fn.Parameters, "True"))
	b.WriteString("        # self.assertIsNotNone(result)\n")
	b.WriteString("        self.assertTrue(True)\n")

	fmt.Fprintf(b, "\n    def test_%s_edge_cases(self):\n", fn.Name)
	fmt.Fprintf(b, "        # Test edge cases for %s\n", fn.Name)
	fmt.Fprintf(b, "        # TODO: Add edge case tests for %s\n", fn.Name)
	b.WriteString("        self.assertTrue(True)\n")
}

func (r *PythonRenderer) writeClassStubs(b *strings.Builder, module string, cls domain.ClassEntity) {
	lower := strings.ToLower(cls.Name)

	fmt.Fprintf(b, "\n    def test_%s_instantiation(self):\n", lower)
	fmt.Fprintf(b, "        # Test that %s can be instantiated\n", cls.Name)
	b.WriteString("        # TODO: Adjust constructor arguments as needed\n")
	fmt.Fprintf(b, "        instance = %s.%s()\n", module, cls.Name)
	b.WriteString("        self.assertIsNotNone(instance)\n")

	for _, m := range cls.Methods {
		fmt.Fprintf(b, "\n    def test_%s_%s_basic(self):\n", lower, m.Name)
		fmt.Fprintf(b, "        # Test basic functionality of %s.%s\n", cls.Name, m.Name)
		fmt.Fprintf(b, "        # TODO: Implement actual test for %s.%s\n", cls.Name, m.Name)
		fmt.Fprintf(b, "        instance = %s.%s()\n", module, cls.Name)
		fmt.Fprintf(b, "        # result = instance.%s(%s)\n", m.Name, mockArgs(m.Parameters, "True"))
		b.WriteString("        # self.assertIsNotNone(result)\n")
		b.WriteString("        self.assertTrue(True)\n")

		fmt.Fprintf(b, "\n    def test_%s_%s_edge_cases(self):\n", lower, m.Name)
		fmt.Fprintf(b, "        # Test edge cases for %s.%s\n", cls.Name, m.Name)
		fmt.Fprintf(b, "        # TODO: Add edge case tests for %s.%s\n", cls.Name, m.Name)
		b.WriteString("        self.assertTrue(True)\n")
	}
}

// pyClassName turns a module stem into a CamelCase test class suffix,
// e.g. "string_utils" becomes "StringUtils".
func pyClassName(module string) string {
	parts := strings.FieldsFunc(module, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return "Module"
	}
	return b.String()
}
