// Package engine runs the full buyer-group computation over an
// already-fetched roster: scope filter, classification, role assignment,
// sizing, and quality scoring. Pure and deterministic, no I/O and no shared
// mutable state, so independent companies can be processed in parallel.
package engine

import (
	"time"

	"github.com/rsamoilov/buyerscope/internal/assign"
	"github.com/rsamoilov/buyerscope/internal/classify"
	"github.com/rsamoilov/buyerscope/internal/model"
	"github.com/rsamoilov/buyerscope/internal/scope"
	"github.com/rsamoilov/buyerscope/internal/score"
	"github.com/rsamoilov/buyerscope/internal/sizing"
)

// Engine computes buyer groups for one immutable seller profile. Safe for
// concurrent use across companies.
type Engine struct {
	profile *model.SellerProfile
	scorer  *score.Scorer
}

// New creates an engine for the given seller profile.
func New(profile *model.SellerProfile) *Engine {
	return &Engine{
		profile: profile,
		scorer:  score.NewScorer(),
	}
}

// Run produces a BuyerGroup for the company's candidate roster. Malformed
// candidates degrade confidence instead of erroring; an empty roster yields
// an empty, underfilled group rather than a failure.
func (e *Engine) Run(companyID string, candidates []model.PersonCandidate) *model.BuyerGroup {
	normalized := make([]model.PersonCandidate, len(candidates))
	for i, c := range candidates {
		c.Normalize()
		normalized[i] = c
	}

	inScope, exclusionReasons := scope.Filter(normalized, e.profile)

	assignments := make([]model.RoleAssignment, 0, len(inScope))
	for _, c := range inScope {
		res := classify.Classify(c.Title, c.ManagementLevelHint)
		dept := res.Department
		if c.Department != "" {
			dept = classify.CandidateDepartment(c)
		}
		assignments = append(assignments, assign.AssignRole(c, res.Tier, dept, e.profile))
	}

	policy := e.sizingPolicy(len(normalized))
	sized := sizing.Size(assignments, policy, e.profile.RolePriorities)

	deptCounts := departmentCounts(sized.Members)
	quality := e.scorer.Calculate(sized.Members, deptCounts, len(normalized))

	context := buildContext(normalized, inScope, exclusionReasons)
	group := &model.BuyerGroup{
		CompanyID:       companyID,
		ProductName:     e.profile.ProductName,
		GeneratedAt:     time.Now().UTC(),
		Members:         sized.Members,
		Quality:         quality,
		Underfilled:     sized.Underfilled || len(sized.Members) == 0,
		Context:         context,
		Recommendations: recommendations(context, sized),
	}
	return group
}

// sizingPolicy prefers an explicit policy on the profile, falling back to
// the deal-band default for the roster's company size.
func (e *Engine) sizingPolicy(headcount int) model.SizingPolicy {
	if e.profile.SizingPolicy != nil {
		return *e.profile.SizingPolicy
	}
	return sizing.PolicyForDeal(e.profile.DealSizeBand, headcount)
}

func departmentCounts(members []model.RoleAssignment) map[string]int {
	counts := make(map[string]int)
	for _, m := range members {
		counts[classify.CandidateDepartment(m.Person).String()]++
	}
	return counts
}

func buildContext(all, inScope []model.PersonCandidate, exclusionReasons map[string]int) model.CompanyContext {
	deptCounts := make(map[string]int)
	seniorityCounts := make(map[string]int)
	for _, c := range all {
		deptCounts[classify.CandidateDepartment(c).String()]++
		seniorityCounts[classify.Classify(c.Title, c.ManagementLevelHint).Tier.String()]++
	}

	total := len(all)
	pct := func(dept model.Department) float64 {
		if total == 0 {
			return 0
		}
		return float64(deptCounts[dept.String()]) / float64(total) * 100
	}

	ctx := model.CompanyContext{
		TotalCandidates:       total,
		InScopeCandidates:     len(inScope),
		DepartmentCounts:      deptCounts,
		SeniorityCounts:       seniorityCounts,
		SalesPercentage:       pct(model.DeptSales),
		MarketingPercentage:   pct(model.DeptMarketing),
		EngineeringPercentage: pct(model.DeptEngineering),
		ExclusionReasons:      exclusionReasons,
	}
	ctx.CompanyType = companyType(ctx)
	return ctx
}

// companyType is a coarse go-to-market shape heuristic from the department
// mix of the full roster.
func companyType(ctx model.CompanyContext) string {
	switch {
	case ctx.SalesPercentage >= ctx.MarketingPercentage && ctx.SalesPercentage >= ctx.EngineeringPercentage:
		return "sales-led"
	case ctx.MarketingPercentage >= ctx.EngineeringPercentage:
		return "marketing-led"
	default:
		return "product-led"
	}
}

func recommendations(ctx model.CompanyContext, sized sizing.Result) []string {
	var recs []string
	if ctx.SalesPercentage < 20 {
		recs = append(recs,
			"Low sales team presence - consider a product-led growth approach",
			"Focus on Revenue Operations and Sales Enablement roles")
	} else {
		recs = append(recs, "Strong sales presence - a traditional sales-led approach is viable")
	}
	if len(sized.Members) < 5 {
		recs = append(recs, "Small buyer group - consider expanding scope to Marketing and Operations")
	}
	if sized.Underfilled || len(sized.Members) == 0 {
		recs = append(recs, "Group is underfilled - re-query the provider for more candidates or accept the partial group")
	}
	return recs
}
