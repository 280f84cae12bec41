// Package classify maps free-text job titles to seniority tiers and
// department categories using keyword rules. Pure functions, no I/O.
package classify

import (
	"strings"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Result is the outcome of classifying a single title.
type Result struct {
	Tier       model.SeniorityTier
	Department model.Department
}

// tierRule is one entry in the ordered seniority rule chain. First match
// wins, evaluated top to bottom on the normalized title.
type tierRule struct {
	tier  model.SeniorityTier
	match func(title string) bool
}

var tierRules = []tierRule{
	{model.TierCLevel, isCLevel},
	{model.TierVP, containsAny("vp", "vice president", "svp", "senior vice president", "head of")},
	{model.TierDirector, containsAny("director")},
	{model.TierManager, containsAny("manager", "lead", "senior")},
}

// Classify maps a free-text title (and an optional provider-supplied
// management-level hint) to a seniority tier and a department guess.
// Titles are the ground truth; the hint is a fallback for missing titles
// only. Handles empty and arbitrarily long strings without error.
func Classify(title, managementLevelHint string) Result {
	normalized := strings.ToLower(strings.TrimSpace(title))

	if normalized == "" {
		return Result{
			Tier:       tierFromHint(managementLevelHint),
			Department: model.DeptOther,
		}
	}

	tier := model.TierIC
	for _, rule := range tierRules {
		if rule.match(normalized) {
			tier = rule.tier
			break
		}
	}

	return Result{
		Tier:       tier,
		Department: DepartmentOf(normalized),
	}
}

func isCLevel(title string) bool {
	for _, kw := range []string{"ceo", "cfo", "cto", "cio", "owner"} {
		if strings.Contains(title, kw) {
			return true
		}
	}
	// "president" alone is C-level; "vice president" is not.
	if strings.Contains(title, "president") && !strings.Contains(title, "vice president") {
		return true
	}
	// "chief <anything> officer" and bare "chief" titles.
	if strings.Contains(title, "chief") && strings.Contains(title, "officer") {
		return true
	}
	return false
}

func containsAny(keywords ...string) func(string) bool {
	return func(title string) bool {
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}

// tierFromHint maps provider management-level strings such as "VP-Level" or
// "Director-Level" onto a tier. Unknown hints degrade to IC.
func tierFromHint(hint string) model.SeniorityTier {
	h := strings.ToLower(strings.TrimSpace(hint))
	switch {
	case h == "":
		return model.TierIC
	case strings.Contains(h, "c-level"), strings.Contains(h, "cxo"), strings.Contains(h, "executive"):
		return model.TierCLevel
	case strings.Contains(h, "vp"), strings.Contains(h, "vice president"):
		return model.TierVP
	case strings.Contains(h, "director"):
		return model.TierDirector
	case strings.Contains(h, "manager"):
		return model.TierManager
	default:
		return model.TierIC
	}
}

// deptRule is one entry in the ordered department taxonomy chain.
type deptRule struct {
	dept     model.Department
	keywords []string
}

var deptRules = []deptRule{
	{model.DeptSales, []string{
		"sales", "revops", "revenue operations", "account executive",
		"business development", "customer success", "account management", "gtm", "go-to-market",
	}},
	{model.DeptFinance, []string{
		"revenue", "finance", "financial", "accounting", "controller", "treasury",
	}},
	{model.DeptMarketing, []string{
		"marketing", "brand", "communications", "demand generation", "content", "growth",
	}},
	{model.DeptEngineering, []string{
		"engineer", "software", "developer", "product", "technical", "architect",
		"data", "machine learning", "devops", "infrastructure", "platform",
	}},
	{model.DeptOperations, []string{
		"operations", "ops", "strategy", "chief of staff", "program", "process",
	}},
	{model.DeptLegal, []string{
		"legal", "compliance", "security", "risk", "audit", "privacy", "counsel", "attorney",
	}},
}

// DepartmentOf maps free text (a title or a provider department string) onto
// the fixed department taxonomy. Used when no explicit department category
// is available for the candidate.
func DepartmentOf(text string) model.Department {
	lower := strings.ToLower(text)
	for _, rule := range deptRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.dept
			}
		}
	}
	return model.DeptOther
}

// CandidateDepartment resolves the department for a candidate: the explicit
// provider department field wins when present, the title guess otherwise.
func CandidateDepartment(c model.PersonCandidate) model.Department {
	if c.Department != "" {
		return DepartmentOf(c.Department)
	}
	return DepartmentOf(c.Title)
}
