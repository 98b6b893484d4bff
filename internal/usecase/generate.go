package usecase

import (
	"fmt"
	"path/filepath"

	"testpilot/config"
	"testpilot/internal/adapter/analyzer"
	"testpilot/internal/adapter/generator"
	"testpilot/internal/adapter/report"
	"testpilot/internal/domain"
	"testpilot/internal/port"
)

// GenerateUseCase drives the full pipeline for one source file:
// detect language, read, analyze, render the test skeleton and the
// markdown report, then commit both files atomically.
type GenerateUseCase struct {
	cfg    *config.Config
	reader port.FileReader
	writer port.PairWriter
	report port.ReportRenderer
}

func NewGenerateUseCase(cfg *config.Config, reader port.FileReader, writer port.PairWriter) *GenerateUseCase {
	return &GenerateUseCase{
		cfg:    cfg,
		reader: reader,
		writer: writer,
		report: report.NewRenderer(cfg.Generate.DocExcerpt),
	}
}

// Result summarizes a completed run.
type Result struct {
	Language   domain.Language
	TestFile   string // written test file path
	ReportFile string // written report path
	Functions  int
	Classes    int
	Methods    int
}

// Generate runs the pipeline. outDir overrides the configured output
// directory when non-empty; when both are empty the artifacts land in
// the current working directory.
func (u *GenerateUseCase) Generate(srcPath, outDir string) (*Result, error) {
	lang, err := analyzer.Detect(srcPath)
	if err != nil {
		return nil, err
	}

	content, err := u.reader.ReadSource(srcPath)
	if err != nil {
		return nil, err
	}

	an, err := analyzer.ForLanguage(lang)
	if err != nil {
		return nil, err
	}
	analysis, err := an.Analyze(content)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", srcPath, err)
	}
	analysis.Path = srcPath

	gen, err := generator.ForLanguage(lang)
	if err != nil {
		return nil, err
	}
	testName := generator.TestFileName(srcPath, lang)
	testBody, err := gen.Render(analysis)
	if err != nil {
		return nil, fmt.Errorf("rendering tests for %s: %w", srcPath, err)
	}

	reportName := u.cfg.Generate.ReportFile
	reportBody := u.report.RenderReport(analysis, testName)

	dir := outDir
	if dir == "" {
		dir = u.cfg.Generate.OutputDir
	}
	if dir == "" {
		dir = "."
	}

	if err := u.writer.WritePair(dir, testName, testBody, reportName, reportBody); err != nil {
		return nil, err
	}

	return &Result{
		Language:   lang,
		TestFile:   filepath.Join(dir, testName),
		ReportFile: filepath.Join(dir, reportName),
		Functions:  len(analysis.Functions),
		Classes:    len(analysis.Classes),
		Methods:    analysis.MethodCount(),
	}, nil
}
