package model

import "time"

// Quality is the transparent scoring breakdown for a buyer group. All five
// values are integers in [0,100]; the overall score is the rounded mean of
// the four sub-scores and is deterministic given identical sub-scores.
type Quality struct {
	PainSignalScore      int `json:"pain_signal_score"`
	InnovationScore      int `json:"innovation_score"`
	BuyerExperienceScore int `json:"buyer_experience_score"`
	StructureScore       int `json:"structure_score"`
	OverallScore         int `json:"overall_score"`
}

// CompanyContext summarizes the roster the group was drawn from: department
// and seniority distributions plus a coarse go-to-market shape heuristic.
type CompanyContext struct {
	TotalCandidates       int                `json:"total_candidates"`
	InScopeCandidates     int                `json:"in_scope_candidates"`
	DepartmentCounts      map[string]int     `json:"department_counts"`
	SeniorityCounts       map[string]int     `json:"seniority_counts"`
	SalesPercentage       float64            `json:"sales_percentage"`
	MarketingPercentage   float64            `json:"marketing_percentage"`
	EngineeringPercentage float64            `json:"engineering_percentage"`
	CompanyType           string             `json:"company_type"` // sales-led, marketing-led, product-led
	ExclusionReasons      map[string]int     `json:"exclusion_reasons,omitempty"`
}

// BuyerGroup is the engine's result artifact. A pipeline run produces a new
// BuyerGroup rather than mutating a prior one, so re-runs can be compared
// and role corrections audited.
type BuyerGroup struct {
	CompanyID       string           `json:"company_id"`
	ProductName     string           `json:"product_name,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Members         []RoleAssignment `json:"members"`
	Quality         Quality          `json:"quality"`
	Underfilled     bool             `json:"underfilled"`
	Context         CompanyContext   `json:"context"`
	Recommendations []string         `json:"recommendations,omitempty"`
	Playbook        *Playbook        `json:"playbook,omitempty"`
}

// Playbook is the optional LLM-generated engagement playbook. It is produced
// after scoring and never affects members, roles or quality.
type Playbook struct {
	Enabled    bool     `json:"enabled"`
	Provider   string   `json:"provider,omitempty"`
	Model      string   `json:"model,omitempty"`
	PlaybookMD string   `json:"playbook_md,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// RoleCounts tallies members per role.
func (g *BuyerGroup) RoleCounts() map[Role]int {
	counts := make(map[Role]int, len(Roles))
	for _, m := range g.Members {
		counts[m.Role]++
	}
	return counts
}

// MembersByRole returns the members holding the given role, in group order.
func (g *BuyerGroup) MembersByRole(role Role) []RoleAssignment {
	var out []RoleAssignment
	for _, m := range g.Members {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}
