package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/analyzer"
	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/storage"
	"github.com/jonathan/cv-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single CV document",
	Long: `Extracts structured data from one stored CV and prints the result as JSON.

The AI extraction path is used when an API key is configured; without one the
run falls back to the rule-based analyzer. Configuration can be loaded from a
JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeJobTitle   string
	analyzeFields     string
	analyzeStorage    string
	analyzeAPIKey     string
	analyzeModel      string
	analyzeOut        string
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeFile, "file", "f", "", "Storage-relative path of the CV document")
	analyzeCommand.Flags().StringVarP(&analyzeJobTitle, "job-title", "j", "", "Position the candidate is applying for")
	analyzeCommand.Flags().StringVar(&analyzeFields, "fields", "", "Path to a JSON file describing custom form fields")
	analyzeCommand.Flags().StringVarP(&analyzeStorage, "storage-dir", "s", "", "Root directory of the CV file store (defaults to CV_STORAGE_DIR env var)")
	analyzeCommand.Flags().StringVar(&analyzeModel, "model", "", "Override for the standard-tier model")
	analyzeCommand.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the result JSON to this file instead of stdout")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("file") {
			c.File = analyzeFile
		}
		if cmd.Flags().Changed("job-title") {
			c.JobTitle = analyzeJobTitle
		}
		if cmd.Flags().Changed("fields") {
			c.Fields = analyzeFields
		}
		if cmd.Flags().Changed("storage-dir") {
			c.StorageDir = analyzeStorage
		}
		if cmd.Flags().Changed("api-key") {
			c.APIKey = analyzeAPIKey
		}
		if cmd.Flags().Changed("model") {
			c.Model = analyzeModel
		}
		if cmd.Flags().Changed("verbose") {
			c.Verbose = analyzeVerbose
		}
	})
	if err != nil {
		return err
	}

	if cfg.File == "" {
		return fmt.Errorf("--file is required (via flag or config)")
	}

	fields, err := config.LoadFields(cfg.Fields)
	if err != nil {
		return err
	}

	client, cleanup, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzer.AnalyzeCV(ctx, analyzer.Options{
		FileURL:      cfg.File,
		JobTitle:     cfg.JobTitle,
		CustomFields: fields,
		Storage:      storage.NewLocalClient(cfg.ResolveStorageDir()),
		LLM:          client,
		Verbose:      cfg.Verbose,
	})

	return writeResult(analyzeOut, result)
}

// loadMergedConfig loads the optional config file, applies the CLI overrides
// via apply, and validates the merged result.
func loadMergedConfig(cmd *cobra.Command, path string, apply func(*config.Config)) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLLMClient builds the model client for the merged configuration. A missing
// or unusable credential is not an error: the analyzer degrades to its
// rule-based path when the client is nil.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, func(), error) {
	key := cfg.ResolveAPIKey()
	if key == "" {
		return nil, func() {}, nil
	}

	modelCfg := llm.DefaultGeminiConfig()
	if cfg.Model != "" {
		modelCfg = modelCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	client, err := llm.NewClient(ctx, modelCfg, key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, func() { _ = client.Close() }, nil
}

func writeResult(outPath string, result *types.CVAnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", outPath, err)
	}
	return nil
}
