package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsamoilov/buyerscope/internal/logger"
	"github.com/rsamoilov/buyerscope/internal/pipeline"
	"github.com/rsamoilov/buyerscope/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple companies from a file in parallel",
	Long: `Batch processes multiple companies concurrently:
- Read company IDs from input file (one per line, # for comments)
- Analyze companies in parallel with configurable worker count
- Generate individual JSON and Markdown reports per company

Example:
  buyerscope batch accounts.txt
  buyerscope batch accounts.txt --concurrency 8 --output-dir ./reports
  buyerscope batch accounts.txt --profile seller.yaml --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&profilePath, "profile", "", "seller profile YAML (default: built-in starter profile)")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: from config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for reports (default: from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable roster cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM playbook generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = !noFooter
	if concurrency > 0 {
		cfg.Concurrency.Companies = concurrency
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if err := applyLLMFlags(cfg); err != nil {
		return err
	}

	profile, err := loadProfileOrDefault(profilePath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Output.JSONLogs, verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	prov, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, profile, prov, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch: %s, %d workers, output %s\n", file, cfg.Concurrency.Companies, cfg.Output.Dir)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Companies)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.CompanyID, result.Error)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.CompanyID)
		jsonPath := filepath.Join(cfg.Output.Dir, slug+".json")
		mdPath := filepath.Join(cfg.Output.Dir, slug+".md")

		if err := p.RenderGroup(result.Group, jsonPath, mdPath, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.CompanyID, err)
			continue
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d companies, %d ok, %d failed, reports in %s\n",
		len(results), successCount, failureCount, cfg.Output.Dir)

	return nil
}

// sanitizeFilename makes a company ID safe to use as a file name.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
