// Package scope decides whether a candidate is in scope for buyer-group
// consideration at all, using the seller profile's keyword lists.
package scope

import (
	"github.com/rsamoilov/buyerscope/internal/model"
)

// Reason explains a scope decision, for diagnostics and reporting.
type Reason string

const (
	ReasonExcludedKeyword Reason = "excluded-keyword"
	ReasonPrimaryMatch    Reason = "primary-match"
	ReasonSecondaryMatch  Reason = "secondary-match"
	ReasonNoMatch         Reason = "no-match"
)

// Decision is the outcome of a scope check for one candidate.
type Decision struct {
	InScope bool
	Reason  Reason
	Keyword string // the keyword that decided, if any
}

// rule is one entry in the ordered decision chain. Exclusion rules sit
// before inclusion rules so an explicit exclude always wins over an
// accidental primary/secondary keyword collision.
type rule struct {
	inScope bool
	reason  Reason
	lists   func(p *model.SellerProfile) (departments, titles []string)
}

var rules = []rule{
	{false, ReasonExcludedKeyword, func(p *model.SellerProfile) ([]string, []string) {
		return p.DepartmentKeywords.Exclude, p.TitleKeywords.Exclude
	}},
	{true, ReasonPrimaryMatch, func(p *model.SellerProfile) ([]string, []string) {
		return p.DepartmentKeywords.Primary, p.TitleKeywords.Primary
	}},
	{true, ReasonSecondaryMatch, func(p *model.SellerProfile) ([]string, []string) {
		return p.DepartmentKeywords.Secondary, p.TitleKeywords.Secondary
	}},
}

// IsInScope checks the candidate's department and title against the
// profile's keyword lists. Matching is case-insensitive substring, a
// deliberate precision/recall tradeoff: provider titles vary wildly, and
// callers needing stricter matching can supply longer phrases.
func IsInScope(c model.PersonCandidate, profile *model.SellerProfile) Decision {
	for _, r := range rules {
		departments, titles := r.lists(profile)
		if kw, ok := model.MatchesAny(c.Department, departments); ok {
			return Decision{InScope: r.inScope, Reason: r.reason, Keyword: kw}
		}
		if kw, ok := model.MatchesAny(c.Title, titles); ok {
			return Decision{InScope: r.inScope, Reason: r.reason, Keyword: kw}
		}
	}
	return Decision{InScope: false, Reason: ReasonNoMatch}
}

// Filter partitions candidates into in-scope and excluded sets, tallying
// exclusion reasons for the company-context report.
func Filter(candidates []model.PersonCandidate, profile *model.SellerProfile) (inScope []model.PersonCandidate, reasons map[string]int) {
	reasons = make(map[string]int)
	for _, c := range candidates {
		d := IsInScope(c, profile)
		if d.InScope {
			inScope = append(inScope, c)
			continue
		}
		reasons[string(d.Reason)]++
	}
	return inScope, reasons
}
