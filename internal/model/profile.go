package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SolutionCategory describes the broad class of product being sold.
type SolutionCategory string

const (
	SolutionRevenueTechnology SolutionCategory = "revenue_technology"
	SolutionPlatform          SolutionCategory = "platform"
	SolutionOperations        SolutionCategory = "operations"
	SolutionOther             SolutionCategory = "other"
)

// DealSizeBand is the categorical deal-size segment.
type DealSizeBand string

const (
	DealBandSMB        DealSizeBand = "smb"
	DealBandMidMarket  DealSizeBand = "mid-market"
	DealBandEnterprise DealSizeBand = "enterprise"
)

// KeywordSet holds the configurable allow/deny keyword lists used by the
// scope filter. Matching is case-insensitive substring; callers needing
// stricter matching supply longer, more specific phrases.
type KeywordSet struct {
	Primary   []string `json:"primary" yaml:"primary"`
	Secondary []string `json:"secondary" yaml:"secondary"`
	Exclude   []string `json:"exclude" yaml:"exclude"`
}

// MatchesAny reports whether text contains any of the keywords
// (case-insensitive substring) and returns the first matching keyword.
func MatchesAny(text string, keywords []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// SizingPolicy is the desired member-count envelope for a buyer group.
// Invariant: 0 <= Min <= Optimal <= Max.
type SizingPolicy struct {
	Min     int `json:"min" yaml:"min"`
	Max     int `json:"max" yaml:"max"`
	Optimal int `json:"optimal" yaml:"optimal"`
}

// Validate checks the policy invariant.
func (p SizingPolicy) Validate() error {
	if p.Min < 0 || p.Max < 0 || p.Optimal < 0 {
		return fmt.Errorf("sizing policy values must be non-negative: %+v", p)
	}
	if p.Min > p.Optimal || p.Optimal > p.Max {
		return fmt.Errorf("sizing policy must satisfy min <= optimal <= max: %+v", p)
	}
	return nil
}

// SellerProfile describes what is being sold and which departments and
// titles are in scope for buyer-group consideration. Profiles are immutable
// configuration passed into every engine call; no module-level state.
type SellerProfile struct {
	ProductName        string           `json:"product_name" yaml:"product_name"`
	SolutionCategory   SolutionCategory `json:"solution_category" yaml:"solution_category"`
	DealSizeBand       DealSizeBand     `json:"deal_size_band" yaml:"deal_size_band"`
	DepartmentKeywords KeywordSet       `json:"department_keywords" yaml:"department_keywords"`
	TitleKeywords      KeywordSet       `json:"title_keywords" yaml:"title_keywords"`
	RolePriorities     map[Role]int     `json:"role_priorities,omitempty" yaml:"role_priorities,omitempty"`
	SizingPolicy       *SizingPolicy    `json:"sizing_policy,omitempty" yaml:"sizing_policy,omitempty"`
}

// Validate checks the profile for obviously broken configuration.
func (p *SellerProfile) Validate() error {
	if p.ProductName == "" {
		return fmt.Errorf("seller profile: product_name is required")
	}
	if p.SizingPolicy != nil {
		if err := p.SizingPolicy.Validate(); err != nil {
			return fmt.Errorf("seller profile: %w", err)
		}
	}
	for role, count := range p.RolePriorities {
		if count < 0 {
			return fmt.Errorf("seller profile: role priority for %s must be non-negative", role)
		}
	}
	return nil
}

// LoadProfile reads a SellerProfile from a YAML file.
func LoadProfile(path string) (*SellerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var profile SellerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DefaultProfile returns a starter profile for a revenue-technology seller.
// Used by `buyerscope profile init` as a template to edit.
func DefaultProfile() *SellerProfile {
	return &SellerProfile{
		ProductName:      "Buyer Group Intelligence Platform",
		SolutionCategory: SolutionRevenueTechnology,
		DealSizeBand:     DealBandMidMarket,
		DepartmentKeywords: KeywordSet{
			Primary:   []string{"sales", "revenue", "revops", "revenue operations"},
			Secondary: []string{"marketing", "operations", "customer success"},
			Exclude:   []string{"human resources", "recruiting"},
		},
		TitleKeywords: KeywordSet{
			Primary:   []string{"sales", "revenue", "revops", "gtm", "go-to-market"},
			Secondary: []string{"operations", "enablement", "growth", "strategy"},
			Exclude:   []string{"intern", "student", "assistant"},
		},
		RolePriorities: map[Role]int{
			RoleDecisionMaker: 2,
			RoleChampion:      3,
		},
	}
}
