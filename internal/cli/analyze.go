package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsamoilov/buyerscope/internal/logger"
	"github.com/rsamoilov/buyerscope/internal/pipeline"
	"github.com/rsamoilov/buyerscope/internal/provider"
)

var (
	analyzeCompany string
	analyzeTimeout time.Duration
	analyzeJSON    string
	analyzeMD      string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <snapshot.jsonl>",
	Short: "Build buyer groups from a roster snapshot, no provider calls",
	Long: `Analyze runs the engine against a local JSONL roster snapshot instead
of the live provider API. Each line is one candidate tagged with its
company_id, so a single snapshot can hold many companies.

Useful for offline runs, reproducing a past analysis, or evaluating
profile changes against a frozen roster.

Example:
  buyerscope analyze roster.jsonl
  buyerscope analyze roster.jsonl --company acme-corp --md acme.md
  buyerscope analyze roster.jsonl --profile seller.yaml --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&profilePath, "profile", "", "seller profile YAML (default: built-in starter profile)")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "analyze only this company (default: all in snapshot)")
	analyzeCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for reports (default: from config)")
	analyzeCmd.Flags().StringVar(&analyzeMD, "md", "", "output Markdown path (single company only)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (single company only)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "total analysis timeout")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	snapshot := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.IncludeFooter = !noFooter
	if outputDir != "" {
		cfg.Output.Dir = outputDir
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

	prov, err := provider.NewFileProvider(snapshot)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, profile, prov, log)
	if err != nil {
		return err
	}

	companies := prov.CompanyIDs()
	if analyzeCompany != "" {
		companies = []string{analyzeCompany}
	}
	if len(companies) == 0 {
		return fmt.Errorf("snapshot %s contains no companies", snapshot)
	}

	// Single company with explicit output paths renders directly.
	if len(companies) == 1 && (analyzeJSON != "" || analyzeMD != "") {
		group, err := p.AnalyzeCompany(ctx, companies[0])
		if err != nil {
			return fmt.Errorf("analyze %s: %w", companies[0], err)
		}
		return p.RenderGroup(group, analyzeJSON, analyzeMD, verbose)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	failureCount := 0
	for _, companyID := range companies {
		group, err := p.AnalyzeCompany(ctx, companyID)
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", companyID, err)
			continue
		}

		slug := sanitizeFilename(companyID)
		jsonPath := filepath.Join(cfg.Output.Dir, slug+".json")
		mdPath := filepath.Join(cfg.Output.Dir, slug+".md")
		if err := p.RenderGroup(group, jsonPath, mdPath, verbose); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", companyID, err)
		}
	}

	if failureCount > 0 {
		return fmt.Errorf("%d of %d companies failed", failureCount, len(companies))
	}

	return nil
}
