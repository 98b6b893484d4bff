package generator

import (
	"strings"
	"testing"

	"testpilot/internal/domain"
)

func pyAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Path:     "calculator.py",
		Language: domain.LangPython,
		Functions: []domain.CodeEntity{
			{Name: "add", Kind: domain.KindFunction, Parameters: []string{"a", "b"}, Line: 2},
		},
		Classes: []domain.ClassEntity{
			{
				Name: "Calculator",
				Line: 6,
				Methods: []domain.CodeEntity{
					{Name: "multiply", Kind: domain.KindMethod, Class: "Calculator", Parameters: []string{"value"}, Line: 8},
				},
			},
		},
	}
}

func TestPythonRender_Stubs(t *testing.T) {
	out, err := NewPythonRenderer().Render(pyAnalysis())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"import unittest",
		"from unittest.mock import Mock, patch",
		"import calculator",
		"class TestCalculator(unittest.TestCase):",
		"def test_add_basic(self):",
		"def test_add_edge_cases(self):",
		"# TODO: Implement actual test for add",
		"# result = calculator.add('mock_a', 'mock_b')",
		"def test_calculator_instantiation(self):",
		"instance = calculator.Calculator()",
		"def test_calculator_multiply_basic(self):",
		"def test_calculator_multiply_edge_cases(self):",
		"if __name__ == '__main__':",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestPythonRender_EveryStubHasBody(t *testing.T) {
	out, err := NewPythonRenderer().Render(pyAnalysis())
	if err != nil {
		t.Fatal(err)
	}

	// A def whose body is only comments is a syntax error, so every stub
	// must close with an executable placeholder line.
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "def test_") {
			continue
		}
		found := false
		for j := i + 1; j < len(lines); j++ {
			body := strings.TrimSpace(lines[j])
			if strings.HasPrefix(body, "def ") || (body != "" && !strings.HasPrefix(lines[j], " ")) {
				break
			}
			if body != "" && !strings.HasPrefix(body, "#") {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("stub at line %d has no executable body: %s", i+1, line)
		}
	}
}

func TestPythonRender_Empty(t *testing.T) {
	a := &domain.Analysis{Path: "empty.py", Language: domain.LangPython}
	out, err := NewPythonRenderer().Render(a)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "# No functions or classes found in empty.py") {
		t.Error("empty shell must note that nothing was found")
	}
	if !strings.Contains(out, "class TestEmpty(unittest.TestCase):") {
		t.Error("empty shell must still declare the test class")
	}
	if !strings.Contains(out, "unittest.main()") {
		t.Error("empty shell must keep the runner footer")
	}
}

func TestPythonRender_Deterministic(t *testing.T) {
	r := NewPythonRenderer()
	first, err := r.Render(pyAnalysis())
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(pyAnalysis())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("rendering the same analysis twice must be byte-identical")
	}
}

func TestMockArgs(t *testing.T) {
	cases := []struct {
		params []string
		lit    string
		want   string
	}{
		{[]string{"name", "count", "flag"}, "True", "'test_name', 1, True"},
		{[]string{"payload"}, "true", "'mock_payload'"},
		{nil, "True", ""},
	}
	for _, c := range cases {
		if got := mockArgs(c.params, c.lit); got != c.want {
			t.Errorf("mockArgs(%v) = %q, want %q", c.params, got, c.want)
		}
	}
}

func TestTestFileName(t *testing.T) {
	cases := []struct {
		path string
		lang domain.Language
		want string
	}{
		{"calculator.py", domain.LangPython, "test_calculator.py"},
		{"/src/utils.js", domain.LangJavaScript, "utils.test.js"},
		{"lib/service.ts", domain.LangTypeScript, "service.test.ts"},
	}
	for _, c := range cases {
		if got := TestFileName(c.path, c.lang); got != c.want {
			t.Errorf("TestFileName(%q, %s) = %q, want %q", c.path, c.lang, got, c.want)
		}
	}
}

func TestPyClassName(t *testing.T) {
	cases := map[string]string{
		"calculator":   "Calculator",
		"string_utils": "StringUtils",
		"a-b":          "AB",
		"":             "Module",
	}
	for in, want := range cases {
		if got := pyClassName(in); got != want {
			t.Errorf("pyClassName(%q) = %q, want %q", in, got, want)
		}
	}
}
