package usecase

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"testpilot/config"
)

// BundleUseCase packages a tool/skill directory into a .skill zip
// archive. Entries are stored under the directory's base name; paths
// matching the configured exclude globs are skipped.
type BundleUseCase struct {
	cfg *config.Config
}

func NewBundleUseCase(cfg *config.Config) *BundleUseCase {
	return &BundleUseCase{cfg: cfg}
}

// BundleResult summarizes a completed packaging run.
type BundleResult struct {
	Output  string
	Files   int
	Skipped int
}

// ProgressFunc reports packaging progress: processed and total file
// counts plus the file currently being added.
type ProgressFunc func(processed, total int, current string)

// Bundle zips srcDir into outPath. progress may be nil.
func (u *BundleUseCase) Bundle(srcDir, outPath string, progress ProgressFunc) (*BundleResult, error) {
	srcDir, err := filepath.Abs(srcDir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", srcDir)
	}

	files, skipped, err := u.collect(srcDir, outPath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	prefix := filepath.Base(srcDir)

	for i, rel := range files {
		if progress != nil {
			progress(i+1, len(files), rel)
		}
		if err := addEntry(zw, srcDir, prefix, rel); err != nil {
			zw.Close()
			os.Remove(outPath)
			return nil, fmt.Errorf("adding %s: %w", rel, err)
		}
	}

	if err := zw.Close(); err != nil {
		os.Remove(outPath)
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return &BundleResult{Output: outPath, Files: len(files), Skipped: skipped}, nil
}

// collect walks srcDir and returns the relative paths to archive, in
// walk order, plus the count of excluded files. The output archive
// itself is always skipped in case it lands inside srcDir.
func (u *BundleUseCase) collect(srcDir, outPath string) ([]string, int, error) {
	var files []string
	skipped := 0

	absOut, _ := filepath.Abs(outPath)

	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if u.excluded(rel + "/") {
				skipped++
				return filepath.SkipDir
			}
			return nil
		}

		if abs, err := filepath.Abs(path); err == nil && abs == absOut {
			return nil
		}
		if u.excluded(rel) {
			skipped++
			return nil
		}

		files = append(files, rel)
		return nil
	})
	return files, skipped, err
}

func (u *BundleUseCase) excluded(rel string) bool {
	for _, pattern := range u.cfg.Package.Excludes {
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func addEntry(zw *zip.Writer, srcDir, prefix, rel string) error {
	f, err := os.Open(filepath.Join(srcDir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(prefix + "/" + rel)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
