package llm

import (
	"context"
	"fmt"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Generator produces engagement playbooks for scored buyer groups. A nil
// provider means the feature is disabled and Generate returns nil without
// error, so callers never need to branch on configuration.
type Generator struct {
	provider Provider
	config   Config
}

// NewGenerator creates a playbook generator from configuration. An empty
// provider name yields a disabled generator, not an error.
func NewGenerator(config Config) (*Generator, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &Generator{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured.
func (g *Generator) IsEnabled() bool {
	return g.provider != nil
}

// ProviderName returns the configured provider's name, or "" when disabled.
func (g *Generator) ProviderName() string {
	if g.provider == nil {
		return ""
	}
	return g.provider.Name()
}

// Generate produces a playbook for the group. The group itself is never
// modified; the caller decides whether to attach the result.
func (g *Generator) Generate(ctx context.Context, group model.BuyerGroup) (*model.Playbook, error) {
	if g.provider == nil {
		return nil, nil
	}

	if !g.provider.IsAvailable(ctx) {
		return &model.Playbook{
			Enabled:  false,
			Provider: g.provider.Name(),
			Warnings: []string{fmt.Sprintf("LLM provider %s is not available; playbook skipped", g.provider.Name())},
		}, nil
	}

	resp, err := g.provider.GeneratePlaybook(ctx, PlaybookRequest{
		Group:     group,
		Model:     g.config.Model,
		MaxTokens: g.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate playbook: %w", err)
	}

	playbook := &model.Playbook{
		Enabled:    true,
		Provider:   g.provider.Name(),
		Model:      resp.Model,
		PlaybookMD: resp.Playbook,
	}
	if resp.TokensUsed > 0 {
		playbook.Warnings = append(playbook.Warnings, fmt.Sprintf("Tokens used: %d", resp.TokensUsed))
	}

	return playbook, nil
}
