package usecase

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"testpilot/config"
)

func TestBundle_ArchivesAndExcludes(t *testing.T) {
	root := t.TempDir()
	skillDir := filepath.Join(root, "my-skill")
	for _, dir := range []string{skillDir, filepath.Join(skillDir, "scripts"), filepath.Join(skillDir, ".git"), filepath.Join(skillDir, "__pycache__")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	mustWriteFile(t, filepath.Join(skillDir, "SKILL.md"), "# my skill\n")
	mustWriteFile(t, filepath.Join(skillDir, "scripts", "run.py"), "print('hi')\n")
	mustWriteFile(t, filepath.Join(skillDir, ".git", "config"), "[core]\n")
	mustWriteFile(t, filepath.Join(skillDir, "__pycache__", "run.pyc"), "binary")

	outPath := filepath.Join(root, "my-skill.skill")
	uc := NewBundleUseCase(config.DefaultConfig())

	result, err := uc.Bundle(skillDir, outPath, nil)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	if result.Files != 2 {
		t.Errorf("expected 2 bundled files, got %d", result.Files)
	}
	if result.Skipped == 0 {
		t.Error("expected excluded entries to be counted")
	}

	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("archive unreadable: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"my-skill/SKILL.md", "my-skill/scripts/run.py"} {
		if !names[want] {
			t.Errorf("expected archive entry %s, got %v", want, names)
		}
	}
	for name := range names {
		if filepath.Base(filepath.Dir(name)) == ".git" || filepath.Ext(name) == ".pyc" {
			t.Errorf("excluded entry leaked into archive: %s", name)
		}
	}
}

func TestBundle_MissingSource(t *testing.T) {
	uc := NewBundleUseCase(config.DefaultConfig())
	if _, err := uc.Bundle(filepath.Join(t.TempDir(), "nope"), "out.skill", nil); err == nil {
		t.Fatal("expected error for missing source directory")
	}
}

func TestBundle_ProgressReported(t *testing.T) {
	root := t.TempDir()
	skillDir := filepath.Join(root, "s")
	if err := os.Mkdir(skillDir, 0755); err != nil {
		t.Fatal(err)
	}
	mustWriteFile(t, filepath.Join(skillDir, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(skillDir, "b.txt"), "b")

	var calls int
	var lastTotal int
	uc := NewBundleUseCase(config.DefaultConfig())
	_, err := uc.Bundle(skillDir, filepath.Join(root, "s.skill"), func(processed, total int, current string) {
		calls++
		lastTotal = total
	})
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	if calls != 2 || lastTotal != 2 {
		t.Errorf("expected 2 progress calls with total 2, got %d calls, total %d", calls, lastTotal)
	}
}
