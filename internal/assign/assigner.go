// Package assign partitions in-scope candidates into buyer-group roles.
//
// Rules are an explicit ordered list of (predicate, outcome) pairs evaluated
// in sequence, so the first-match-wins contract stays auditable rule by
// rule. The gatekeeping rule (Blocker) sits at the top of the chain: a
// compliance VP gates purchases rather than making them, so seniority alone
// must never override that function.
package assign

import (
	"strings"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Input bundles everything a rule may look at for one candidate.
type Input struct {
	Candidate  model.PersonCandidate
	Tier       model.SeniorityTier
	Department model.Department
	Profile    *model.SellerProfile
}

// Rule is one entry in the ordered assignment chain.
type Rule struct {
	Name  string
	Apply func(in Input) (model.RoleAssignment, bool)
}

// Chain returns the assignment rules in evaluation order.
func Chain() []Rule {
	return []Rule{
		{"blocker", blockerRule},
		{"decision-maker", decisionMakerRule},
		{"champion", championRule},
		{"influencer", influencerRule},
		{"introducer", introducerRule},
		{"stakeholder", stakeholderRule},
	}
}

// AssignRole assigns exactly one role to the candidate. It never fails:
// malformed or missing fields degrade to a low-confidence Stakeholder
// instead of an error, since sales data is inherently incomplete.
func AssignRole(c model.PersonCandidate, tier model.SeniorityTier, dept model.Department, profile *model.SellerProfile) model.RoleAssignment {
	in := Input{Candidate: c, Tier: tier, Department: dept, Profile: profile}
	for _, rule := range Chain() {
		if a, ok := rule.Apply(in); ok {
			return a
		}
	}
	// Unreachable: the stakeholder rule always matches.
	return stakeholderFallback(in)
}

var blockerKeywords = []string{
	"legal", "compliance", "security", "risk", "audit", "privacy", "counsel", "attorney",
}

// blockerRule matches gatekeeping functions on title or department text,
// regardless of seniority tier.
func blockerRule(in Input) (model.RoleAssignment, bool) {
	kw, ok := model.MatchesAny(in.Candidate.Title, blockerKeywords)
	if !ok {
		kw, ok = model.MatchesAny(in.Candidate.Department, blockerKeywords)
	}
	if !ok {
		return model.RoleAssignment{}, false
	}
	return model.RoleAssignment{
		Person:     in.Candidate,
		Role:       model.RoleBlocker,
		Confidence: 80,
		Rationale:  "gatekeeping function (" + kw + ") can veto or delay regardless of seniority",
	}, true
}

func decisionMakerRule(in Input) (model.RoleAssignment, bool) {
	if in.Tier == model.TierCLevel {
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleDecisionMaker,
			Confidence: 90,
			Rationale:  "C-level title indicates final budget authority",
		}, true
	}

	if in.Tier == model.TierVP && inPrimaryDepartments(in) {
		title := strings.ToLower(in.Candidate.Title)
		budgetTitle := strings.Contains(title, "chief") ||
			strings.Contains(title, "president") ||
			strings.Contains(title, "owner")
		revenueFunction := in.Department == model.DeptSales || in.Department == model.DeptFinance
		if budgetTitle || revenueFunction {
			return model.RoleAssignment{
				Person:     in.Candidate,
				Role:       model.RoleDecisionMaker,
				Confidence: 80,
				Rationale:  "VP-level in a primary revenue function with budget authority",
			}, true
		}
	}
	return model.RoleAssignment{}, false
}

func championRule(in Input) (model.RoleAssignment, bool) {
	switch in.Tier {
	case model.TierDirector:
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleChampion,
			Confidence: 75,
			Rationale:  "director-level seniority drives deals without final authority",
		}, true
	case model.TierVP:
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleChampion,
			Confidence: 70,
			Rationale:  "VP-level outside final budget authority advocates internally",
		}, true
	}

	title := strings.ToLower(in.Candidate.Title)
	if strings.Contains(title, "sales") {
		for _, kw := range []string{"manager", "lead", "head"} {
			if strings.Contains(title, kw) {
				return model.RoleAssignment{
					Person:     in.Candidate,
					Role:       model.RoleChampion,
					Confidence: 70,
					Rationale:  "sales leadership title signals internal advocacy",
				}, true
			}
		}
	}
	return model.RoleAssignment{}, false
}

func influencerRule(in Input) (model.RoleAssignment, bool) {
	technical := in.Department == model.DeptEngineering || in.Department == model.DeptOperations
	if in.Tier == model.TierManager && technical &&
		in.Candidate.EngagementTier() == model.EngagementHigh {
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleInfluencer,
			Confidence: 65,
			Rationale:  "technical manager with high network engagement shapes opinion",
		}, true
	}

	title := strings.ToLower(in.Candidate.Title)
	senior := strings.Contains(title, "architect") ||
		strings.Contains(title, "principal") ||
		strings.Contains(title, "senior")
	if senior && !hasPeopleManagementSignal(title) {
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleInfluencer,
			Confidence: 60,
			Rationale:  "senior individual contributor without people-management signal",
		}, true
	}
	return model.RoleAssignment{}, false
}

var introducerKeywords = []string{
	"sales development", "sdr", "bdr", "business development",
	"customer success", "account management", "account manager",
}

func introducerRule(in Input) (model.RoleAssignment, bool) {
	kw, ok := model.MatchesAny(in.Candidate.Title, introducerKeywords)
	if !ok {
		kw, ok = model.MatchesAny(in.Candidate.Department, introducerKeywords)
	}
	if !ok {
		return model.RoleAssignment{}, false
	}
	return model.RoleAssignment{
		Person:     in.Candidate,
		Role:       model.RoleIntroducer,
		Confidence: 60,
		Rationale:  "access-building function (" + kw + ") useful for initial contact",
	}, true
}

func stakeholderRule(in Input) (model.RoleAssignment, bool) {
	return stakeholderFallback(in), true
}

func stakeholderFallback(in Input) model.RoleAssignment {
	if in.Candidate.Title == "" && in.Candidate.Department == "" {
		return model.RoleAssignment{
			Person:     in.Candidate,
			Role:       model.RoleStakeholder,
			Confidence: 40,
			Rationale:  "insufficient data",
		}
	}
	return model.RoleAssignment{
		Person:     in.Candidate,
		Role:       model.RoleStakeholder,
		Confidence: 55,
		Rationale:  "in scope without a stronger role signal",
	}
}

func hasPeopleManagementSignal(lowerTitle string) bool {
	for _, kw := range []string{"manager", "head", "director", "vp", "vice president", "chief", "president"} {
		if strings.Contains(lowerTitle, kw) {
			return true
		}
	}
	return false
}

// deptAliases maps taxonomy categories onto the vocabulary seller profiles
// use in their keyword lists. The finance category covers revenue functions.
var deptAliases = map[model.Department][]string{
	model.DeptSales:       {"sales", "revops"},
	model.DeptFinance:     {"finance", "revenue"},
	model.DeptMarketing:   {"marketing"},
	model.DeptEngineering: {"engineering", "product"},
	model.DeptOperations:  {"operations"},
	model.DeptLegal:       {"legal", "compliance", "security"},
}

// inPrimaryDepartments reports whether the candidate's department (explicit
// text or taxonomy category) matches any primary department keyword.
func inPrimaryDepartments(in Input) bool {
	primary := in.Profile.DepartmentKeywords.Primary
	if _, ok := model.MatchesAny(in.Candidate.Department, primary); ok {
		return true
	}
	for _, alias := range deptAliases[in.Department] {
		if _, ok := model.MatchesAny(alias, primary); ok {
			return true
		}
		for _, kw := range primary {
			if _, ok := model.MatchesAny(kw, []string{alias}); ok {
				return true
			}
		}
	}
	return false
}
