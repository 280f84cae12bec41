package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsamoilov/buyerscope/internal/cache"
	"github.com/rsamoilov/buyerscope/internal/logger"
	"github.com/rsamoilov/buyerscope/internal/model"
	"github.com/rsamoilov/buyerscope/internal/pipeline"
	"github.com/rsamoilov/buyerscope/internal/provider"
)

var (
	profilePath string
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <company-id>",
	Short: "Analyze a single company and build its buyer group",
	Long: `Scan fetches the company's people roster from the configured
provider and builds the buyer group:
- Filter candidates to the departments and titles your profile targets
- Assign exactly one role per person with confidence and rationale
- Size the group for your deal band
- Score group quality on transparent sub-scores

Example:
  buyerscope scan acme-corp
  buyerscope scan acme-corp --profile seller.yaml --json acme.json --md acme.md
  buyerscope scan acme-corp --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&profilePath, "profile", "", "seller profile YAML (default: built-in starter profile)")

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "group.json", "output JSON path")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Provider flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable roster cache (force fresh fetch)")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM playbook generation")
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	companyID := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = !noFooter
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

	group, err := p.AnalyzeCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := p.RenderGroup(group, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// applyLLMFlags maps the shared LLM flags onto the config.
func applyLLMFlags(cfg *model.Config) error {
	if !llmEnabled {
		return nil
	}

	cfg.LLM.Enabled = true
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", llmProvider)
	}

	return nil
}

// buildProvider constructs the HTTP roster provider from config.
func buildProvider(cfg *model.Config) (provider.Provider, error) {
	var rosterCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			rosterCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			rosterCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		}
	}

	client, err := provider.NewClient(cfg.Provider, rosterCache, cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("create provider client: %w", err)
	}
	return client, nil
}
