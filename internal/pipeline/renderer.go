package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Renderer renders buyer groups to JSON and Markdown reports.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the group as indented JSON.
func (r *Renderer) RenderJSON(group *model.BuyerGroup, path string) error {
	data, err := json.MarshalIndent(group, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal group: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(group *model.BuyerGroup, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Buyer Group: %s\n\n", group.CompanyID)
	if group.ProductName != "" {
		fmt.Fprintf(&b, "**Product:** %s  \n", group.ProductName)
	}
	fmt.Fprintf(&b, "**Generated:** %s  \n", group.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Members:** %d", len(group.Members))
	if group.Underfilled {
		b.WriteString(" (underfilled)")
	}
	b.WriteString("\n\n")

	b.WriteString("## Quality\n\n")
	b.WriteString("| Signal | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Pain signals | %d |\n", group.Quality.PainSignalScore)
	fmt.Fprintf(&b, "| Innovation | %d |\n", group.Quality.InnovationScore)
	fmt.Fprintf(&b, "| Buyer experience | %d |\n", group.Quality.BuyerExperienceScore)
	fmt.Fprintf(&b, "| Structure | %d |\n", group.Quality.StructureScore)
	fmt.Fprintf(&b, "| **Overall** | **%d** |\n\n", group.Quality.OverallScore)

	b.WriteString("## Members\n\n")
	if len(group.Members) == 0 {
		b.WriteString("No qualifying candidates were found.\n\n")
	}
	for _, role := range model.Roles {
		members := group.MembersByRole(role)
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %ss\n\n", role.Display())
		for _, m := range members {
			fmt.Fprintf(&b, "- **%s** — %s (confidence %d)\n", m.Person.FullName, m.Person.Title, m.Confidence)
			if m.Rationale != "" {
				fmt.Fprintf(&b, "  - %s\n", m.Rationale)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Company Context\n\n")
	fmt.Fprintf(&b, "- Candidates reviewed: %d (%d in scope)\n", group.Context.TotalCandidates, group.Context.InScopeCandidates)
	if group.Context.CompanyType != "" {
		fmt.Fprintf(&b, "- Company type: %s\n", group.Context.CompanyType)
	}
	fmt.Fprintf(&b, "- Sales %.0f%% / Marketing %.0f%% / Engineering %.0f%%\n\n",
		group.Context.SalesPercentage, group.Context.MarketingPercentage, group.Context.EngineeringPercentage)

	if len(group.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range group.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if group.Playbook != nil && group.Playbook.Enabled && group.Playbook.PlaybookMD != "" {
		b.WriteString("## Engagement Playbook\n\n")
		fmt.Fprintf(&b, "_Generated by %s (%s); advisory only, does not affect scores._\n\n",
			group.Playbook.Provider, group.Playbook.Model)
		b.WriteString(group.Playbook.PlaybookMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by buyerscope. Role assignments and scores are heuristics, not ground truth.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// RenderSummary prints a compact summary to stdout.
func (r *Renderer) RenderSummary(group *model.BuyerGroup) {
	fmt.Printf("\n%s: %d members, overall %d/100", group.CompanyID, len(group.Members), group.Quality.OverallScore)
	if group.Underfilled {
		fmt.Printf(" [underfilled]")
	}
	fmt.Println()

	counts := group.RoleCounts()
	for _, role := range model.Roles {
		if counts[role] > 0 {
			fmt.Printf("  %-15s %d\n", role.Display()+":", counts[role])
		}
	}
}
