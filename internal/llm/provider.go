package llm

import (
	"context"
	"fmt"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// GeneratePlaybook produces an engagement playbook for a scored buyer
	// group. The group is already final: the playbook is presentation only
	// and never feeds back into role assignment or scoring.
	GeneratePlaybook(ctx context.Context, req PlaybookRequest) (*PlaybookResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// PlaybookRequest contains the input for playbook generation.
type PlaybookRequest struct {
	// Group is the scored buyer group to build a playbook for
	Group model.BuyerGroup

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// PlaybookResponse contains the LLM's playbook output.
type PlaybookResponse struct {
	// Playbook is the generated engagement playbook text
	Playbook string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(c model.LLMConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = c.Provider
	cfg.Model = c.Model
	cfg.APIKey = c.APIKey
	cfg.BaseURL = c.BaseURL
	if c.MaxTokens > 0 {
		cfg.MaxTokens = c.MaxTokens
	}
	if c.TimeoutS > 0 {
		cfg.Timeout = c.TimeoutS
	}
	return cfg
}

// BuildPrompt constructs the default playbook prompt. Only facts already in
// the group go in; the model is told not to invent people or scores.
func BuildPrompt(group model.BuyerGroup) string {
	prompt := fmt.Sprintf(`You are writing a sales engagement playbook for an account team.

RULES:
1. Mention ONLY the people listed below. Do not invent names, titles or roles.
2. Do not restate or adjust any score; scores are final.
3. Be concrete: who to contact first, in what order, and with what message angle.

Account: %s
Product: %s
Group quality: %d/100 (pain %d, innovation %d, experience %d, structure %d)
Company type: %s

Buyer group:
`, group.CompanyID, group.ProductName,
		group.Quality.OverallScore, group.Quality.PainSignalScore, group.Quality.InnovationScore,
		group.Quality.BuyerExperienceScore, group.Quality.StructureScore,
		group.Context.CompanyType)

	for _, m := range group.Members {
		prompt += fmt.Sprintf("- %s, %s (%s, confidence %d)\n",
			m.Person.FullName, m.Person.Title, m.Role.Display(), m.Confidence)
	}

	if len(group.Recommendations) > 0 {
		prompt += "\nAnalyst notes:\n"
		for _, rec := range group.Recommendations {
			prompt += fmt.Sprintf("- %s\n", rec)
		}
	}

	prompt += "\nProvide a playbook of at most 6 short paragraphs: entry point, multi-threading order, and one message angle per key person."

	return prompt
}
