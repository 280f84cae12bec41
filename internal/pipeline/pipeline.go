package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rsamoilov/buyerscope/internal/engine"
	"github.com/rsamoilov/buyerscope/internal/llm"
	"github.com/rsamoilov/buyerscope/internal/logger"
	"github.com/rsamoilov/buyerscope/internal/model"
	"github.com/rsamoilov/buyerscope/internal/provider"
)

// Pipeline orchestrates the complete analysis: fetch roster, build the buyer
// group, optionally attach an LLM playbook.
type Pipeline struct {
	provider  provider.Provider
	engine    *engine.Engine
	renderer  *Renderer
	generator *llm.Generator // nil when playbooks are disabled
	log       *zap.Logger
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration.
func NewPipeline(cfg *model.Config, profile *model.SellerProfile, prov provider.Provider, log *zap.Logger) (*Pipeline, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var generator *llm.Generator
	if cfg.LLM.Enabled {
		g, err := llm.NewGenerator(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			log.Warn("failed to initialize LLM provider, playbooks disabled", zap.Error(err))
		} else {
			generator = g
		}
	}

	return &Pipeline{
		provider:  prov,
		engine:    engine.New(profile),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		generator: generator,
		log:       log,
		config:    cfg,
	}, nil
}

// AnalyzeCompany fetches the roster for a company and produces a scored
// buyer group. Satisfies worker.Analyzer.
func (p *Pipeline) AnalyzeCompany(ctx context.Context, companyID string) (*model.BuyerGroup, error) {
	log := logger.WithCompany(p.log, companyID)

	candidates, err := p.provider.FetchRoster(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	log.Info("roster fetched", zap.Int("candidates", len(candidates)))

	group := p.engine.Run(companyID, candidates)
	log.Info("buyer group built",
		zap.Int("members", len(group.Members)),
		zap.Int("overall_score", group.Quality.OverallScore),
		zap.Bool("underfilled", group.Underfilled))

	// Playbook generation happens after scoring and never affects it.
	if p.generator != nil && p.generator.IsEnabled() {
		playbook, err := p.generator.Generate(ctx, *group)
		if err != nil {
			log.Warn("playbook generation failed", zap.Error(err))
		} else if playbook != nil {
			group.Playbook = playbook
		}
	}

	return group, nil
}

// RenderGroup renders the group to the requested outputs and prints a
// summary to stdout.
func (p *Pipeline) RenderGroup(group *model.BuyerGroup, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(group, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(group, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(group)

	return nil
}
