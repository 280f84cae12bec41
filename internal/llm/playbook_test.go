package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// MockProvider implements the Provider interface for testing.
type MockProvider struct {
	name      string
	available bool
	response  *PlaybookResponse
	err       error
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) GeneratePlaybook(ctx context.Context, req PlaybookRequest) (*PlaybookResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func sampleGroup() model.BuyerGroup {
	return model.BuyerGroup{
		CompanyID:   "acme",
		ProductName: "Buyer Group Intelligence Platform",
		Members: []model.RoleAssignment{
			{
				Person:     model.PersonCandidate{FullName: "Alice", Title: "Chief Revenue Officer", ProviderID: "p1"},
				Role:       model.RoleDecisionMaker,
				Confidence: 90,
			},
			{
				Person:     model.PersonCandidate{FullName: "Bob", Title: "Director of Sales Operations", ProviderID: "p2"},
				Role:       model.RoleChampion,
				Confidence: 75,
			},
		},
		Quality: model.Quality{
			PainSignalScore:      60,
			InnovationScore:      35,
			BuyerExperienceScore: 80,
			StructureScore:       55,
			OverallScore:         58,
		},
		Context:         model.CompanyContext{CompanyType: "sales-led"},
		Recommendations: []string{"Expand scope to adjacent departments"},
	}
}

func TestNewGenerator_Disabled(t *testing.T) {
	gen, err := NewGenerator(Config{Provider: ""})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gen.IsEnabled() {
		t.Error("expected generator to be disabled")
	}
	if gen.ProviderName() != "" {
		t.Error("expected empty provider name when disabled")
	}

	playbook, err := gen.Generate(context.Background(), sampleGroup())
	if err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
	if playbook != nil {
		t.Error("expected nil playbook when disabled")
	}
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	if _, err := NewGenerator(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestGenerator_ProviderUnavailable(t *testing.T) {
	gen := &Generator{
		provider: &MockProvider{name: "test-provider", available: false},
	}

	playbook, err := gen.Generate(context.Background(), sampleGroup())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if playbook == nil {
		t.Fatal("expected playbook object with warnings")
	}
	if playbook.Enabled {
		t.Error("expected playbook marked as disabled")
	}

	found := false
	for _, w := range playbook.Warnings {
		if strings.Contains(w, "not available") {
			found = true
		}
	}
	if !found {
		t.Error("expected warning about provider unavailability")
	}
}

func TestGenerator_Success(t *testing.T) {
	gen := &Generator{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			response: &PlaybookResponse{
				Playbook:   "Start with Alice.",
				Model:      "test-model",
				TokensUsed: 150,
			},
		},
		config: Config{Model: "test-model"},
	}

	playbook, err := gen.Generate(context.Background(), sampleGroup())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if playbook == nil {
		t.Fatal("expected playbook to be generated")
	}
	if !playbook.Enabled {
		t.Error("expected playbook to be enabled")
	}
	if playbook.Provider != "test-provider" {
		t.Errorf("expected provider test-provider, got %s", playbook.Provider)
	}
	if playbook.PlaybookMD != "Start with Alice." {
		t.Errorf("unexpected playbook text: %s", playbook.PlaybookMD)
	}
}

func TestGenerator_ProviderError(t *testing.T) {
	gen := &Generator{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			err:       errors.New("model overloaded"),
		},
	}

	if _, err := gen.Generate(context.Background(), sampleGroup()); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleGroup())

	for _, want := range []string{
		"acme",
		"Alice",
		"Chief Revenue Officer",
		"Decision Maker",
		"58/100",
		"sales-led",
		"Expand scope to adjacent departments",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "invent") == false {
		t.Error("prompt should forbid inventing people")
	}
}
