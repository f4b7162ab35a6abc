// Package analyzer provides the high-level orchestration for a CV analysis
// run: acquire text, then walk an ordered chain of extraction strategies
// until one succeeds. The fallback order is explicit data, not control flow,
// so it can be inspected and tested as policy.
package analyzer

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/cv-analyzer/internal/acquisition"
	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/heuristic"
	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/storage"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Options holds the inputs for one analysis run.
type Options struct {
	// FileURL is the storage-relative path of the CV document.
	FileURL string
	// JobTitle is the position the candidate is applying for.
	JobTitle string
	// CustomFields are the application form fields to suggest answers for.
	CustomFields []types.CustomField
	// Storage is the injected download capability.
	Storage storage.Client
	// LLM is the model client; nil means no credential is configured and the
	// run uses the mock/heuristic path only.
	LLM llm.Client
	// Verbose enables step logging and a formatted result summary on stdout.
	Verbose bool
}

// Strategy is one extraction approach in the fallback chain.
type Strategy struct {
	Name string
	Run  func(ctx context.Context, cvText string) (*types.CVAnalysisResult, error)
}

// Strategies returns the ordered fallback chain for the given options:
// the AI path first, then the rule-based analyzer, then a diagnostic result.
// The first strategy to succeed wins; later ones are never consulted.
func Strategies(opts Options) []Strategy {
	return []Strategy{
		{
			Name: "gemini",
			Run: func(ctx context.Context, cvText string) (*types.CVAnalysisResult, error) {
				return extraction.Analyze(ctx, opts.LLM, cvText, opts.JobTitle, opts.CustomFields)
			},
		},
		{
			Name: "heuristic",
			Run: func(_ context.Context, cvText string) (*types.CVAnalysisResult, error) {
				return heuristic.Analyze(cvText, opts.JobTitle, opts.CustomFields), nil
			},
		},
		{
			Name: "diagnostic",
			Run: func(_ context.Context, _ string) (*types.CVAnalysisResult, error) {
				return diagnosticResult(opts.CustomFields, fmt.Errorf("all extraction strategies failed")), nil
			},
		},
	}
}

// AnalyzeCV runs one analysis. It never returns an error and never panics:
// the worst case is a structurally complete result whose summary explains
// what went wrong.
func AnalyzeCV(ctx context.Context, opts Options) (result *types.CVAnalysisResult) {
	runID := uuid.New()

	defer func() {
		if r := recover(); r != nil {
			result = diagnosticResult(opts.CustomFields, fmt.Errorf("analysis panicked: %v", r))
		}
	}()

	if err := types.ValidateFields(opts.CustomFields); err != nil {
		return diagnosticResult(opts.CustomFields, err)
	}

	if opts.Verbose {
		fmt.Printf("[%s] Acquiring text for %s...\n", runID, opts.FileURL)
	}
	cvText := acquisition.ExtractText(ctx, opts.Storage, opts.FileURL, opts.LLM)

	for _, strategy := range Strategies(opts) {
		if opts.Verbose {
			fmt.Printf("[%s] Trying %s extraction...\n", runID, strategy.Name)
		}
		res, err := strategy.Run(ctx, cvText)
		if err != nil {
			if opts.Verbose {
				fmt.Printf("[%s] %s extraction failed: %v\n", runID, strategy.Name, err)
			}
			continue
		}
		if opts.Verbose {
			observability.NewPrinter(os.Stdout).PrintAnalysisResult(res)
		}
		return res
	}

	// Unreachable: the diagnostic strategy always succeeds. Guarded anyway.
	return diagnosticResult(opts.CustomFields, fmt.Errorf("no strategy produced a result"))
}

// diagnosticResult is a structurally complete result whose summary carries a
// human-readable explanation of the failure.
func diagnosticResult(fields []types.CustomField, err error) *types.CVAnalysisResult {
	result := types.EmptyResult(fields)
	result.Summary = fmt.Sprintf("CV analysis failed: %v. The document could not be processed automatically; please fill in the form manually.", err)
	return result
}
