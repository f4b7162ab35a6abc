package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-analyzer/internal/analyzer"
	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/storage"
	"github.com/jonathan/cv-analyzer/internal/types"
)

const defaultBatchConcurrency = 4

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every CV in a storage directory",
	Long: `Runs the analyzer over each document in a storage directory with bounded
concurrency and prints a JSON object keyed by file name. Individual documents
never fail the batch: a broken file yields a diagnostic result under its key.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath string
	batchDir        string
	batchJobTitle   string
	batchFields     string
	batchStorage    string
	batchAPIKey     string
	batchModel      string
	batchOut        string
	batchWorkers    int
	batchVerbose    bool
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCommand.Flags().StringVarP(&batchDir, "dir", "d", ".", "Storage-relative directory containing the CVs")
	batchCommand.Flags().StringVarP(&batchJobTitle, "job-title", "j", "", "Position the candidates are applying for")
	batchCommand.Flags().StringVar(&batchFields, "fields", "", "Path to a JSON file describing custom form fields")
	batchCommand.Flags().StringVarP(&batchStorage, "storage-dir", "s", "", "Root directory of the CV file store (defaults to CV_STORAGE_DIR env var)")
	batchCommand.Flags().StringVar(&batchModel, "model", "", "Override for the standard-tier model")
	batchCommand.Flags().StringVarP(&batchOut, "out", "o", "", "Write the batch result JSON to this file instead of stdout")
	batchCommand.Flags().IntVar(&batchWorkers, "max-concurrent", 0, "Concurrency bound for the batch (default 4)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")

	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, batchConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("job-title") {
			c.JobTitle = batchJobTitle
		}
		if cmd.Flags().Changed("fields") {
			c.Fields = batchFields
		}
		if cmd.Flags().Changed("storage-dir") {
			c.StorageDir = batchStorage
		}
		if cmd.Flags().Changed("api-key") {
			c.APIKey = batchAPIKey
		}
		if cmd.Flags().Changed("model") {
			c.Model = batchModel
		}
		if cmd.Flags().Changed("max-concurrent") {
			c.MaxConcurrent = batchWorkers
		}
		if cmd.Flags().Changed("verbose") {
			c.Verbose = batchVerbose
		}
	})
	if err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{MaxConcurrent: defaultBatchConcurrency})

	fields, err := config.LoadFields(cfg.Fields)
	if err != nil {
		return err
	}

	store := storage.NewLocalClient(cfg.ResolveStorageDir())
	files, err := store.List(batchDir)
	if err != nil {
		return fmt.Errorf("failed to list CV directory: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found in %s", batchDir)
	}

	client, cleanup, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		mu      sync.Mutex
		results = make(map[string]*types.CVAnalysisResult, len(files))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrent)
	for _, f := range files {
		f := f
		g.Go(func() error {
			result := analyzer.AnalyzeCV(gctx, analyzer.Options{
				FileURL:      path.Join(batchDir, f.Name),
				JobTitle:     cfg.JobTitle,
				CustomFields: fields,
				Storage:      store,
				LLM:          client,
				Verbose:      cfg.Verbose,
			})
			mu.Lock()
			results[f.Name] = result
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only observes context cancellation.
	if err := g.Wait(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch result: %w", err)
	}
	data = append(data, '\n')

	if batchOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(batchOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write batch result to %s: %w", batchOut, err)
	}
	return nil
}
