// Package sizing trims an assigned roster to fit a member-count policy.
// It never fabricates members: a shortfall is reported, not padded.
package sizing

import (
	"sort"

	"github.com/rsamoilov/buyerscope/internal/model"
)

// Result is the sized roster plus the shortfall flag.
type Result struct {
	Members     []model.RoleAssignment
	Underfilled bool
}

// Size fits the assignments to the policy.
//
// Within [min, max] the roster is returned as-is. Below min it is returned
// as-is with Underfilled set. Above max it is trimmed down toward optimal,
// dropping lowest-confidence assignments first. The sole occupant of the
// Decision Maker or Champion role is never dropped purely for size. When
// rolePriorities quotas are configured, excess beyond a role's quota is
// dropped before touching roles still under quota.
func Size(assignments []model.RoleAssignment, policy model.SizingPolicy, rolePriorities map[model.Role]int) Result {
	count := len(assignments)

	if count < policy.Min {
		return Result{Members: orderMembers(assignments), Underfilled: true}
	}
	if count <= policy.Max {
		return Result{Members: orderMembers(assignments)}
	}

	target := policy.Optimal
	if target <= 0 || target > policy.Max {
		target = policy.Max
	}

	kept := make([]model.RoleAssignment, len(assignments))
	copy(kept, assignments)

	for len(kept) > target {
		idx := pickDrop(kept, rolePriorities)
		if idx < 0 {
			// Everything left is protected; stop at max rather than
			// dropping a sole Decision Maker or Champion.
			if len(kept) <= policy.Max {
				break
			}
			idx = pickDropIgnoringProtection(kept, rolePriorities)
		}
		kept = append(kept[:idx], kept[idx+1:]...)
	}

	return Result{Members: orderMembers(kept)}
}

// pickDrop returns the index of the next assignment to drop, or -1 when
// every remaining assignment is protected. Over-quota roles are drained
// first; within a bucket the lowest confidence goes first.
func pickDrop(kept []model.RoleAssignment, quotas map[model.Role]int) int {
	counts := make(map[model.Role]int, len(kept))
	for _, a := range kept {
		counts[a.Role]++
	}

	best := -1
	bestOverQuota := false
	for i, a := range kept {
		if protected(a.Role, counts) {
			continue
		}
		overQuota := false
		if quotas != nil {
			if q, ok := quotas[a.Role]; ok && counts[a.Role] > q {
				overQuota = true
			}
		}
		if best < 0 {
			best, bestOverQuota = i, overQuota
			continue
		}
		if overQuota != bestOverQuota {
			if overQuota {
				best, bestOverQuota = i, overQuota
			}
			continue
		}
		if lessConfident(kept[i], kept[best]) {
			best = i
		}
	}
	return best
}

func pickDropIgnoringProtection(kept []model.RoleAssignment, quotas map[model.Role]int) int {
	best := 0
	for i := range kept {
		if lessConfident(kept[i], kept[best]) {
			best = i
		}
	}
	return best
}

// protected reports whether the assignment is the sole occupant of a role
// with a floor (Decision Maker, Champion).
func protected(role model.Role, counts map[model.Role]int) bool {
	if role != model.RoleDecisionMaker && role != model.RoleChampion {
		return false
	}
	return counts[role] == 1
}

// lessConfident orders drop candidates: lower confidence first, ties broken
// by provider ID then name so trimming is deterministic.
func lessConfident(a, b model.RoleAssignment) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence < b.Confidence
	}
	if a.Person.ProviderID != b.Person.ProviderID {
		return a.Person.ProviderID > b.Person.ProviderID
	}
	return a.Person.FullName > b.Person.FullName
}

// orderMembers sorts the final roster for stable output: role priority
// first, then confidence descending, then provider ID.
func orderMembers(members []model.RoleAssignment) []model.RoleAssignment {
	rank := make(map[model.Role]int, len(model.Roles))
	for i, r := range model.Roles {
		rank[r] = i
	}
	out := make([]model.RoleAssignment, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		if rank[out[i].Role] != rank[out[j].Role] {
			return rank[out[i].Role] < rank[out[j].Role]
		}
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		if out[i].Person.ProviderID != out[j].Person.ProviderID {
			return out[i].Person.ProviderID < out[j].Person.ProviderID
		}
		return out[i].Person.FullName < out[j].Person.FullName
	})
	return out
}

// PolicyForDeal derives a default sizing policy from the deal-size band and
// the company headcount. Smaller companies get a tighter cap: an eight-person
// group already covers most functions below ~200 employees.
func PolicyForDeal(band model.DealSizeBand, headcount int) model.SizingPolicy {
	var policy model.SizingPolicy
	switch band {
	case model.DealBandSMB:
		policy = model.SizingPolicy{Min: 2, Max: 5, Optimal: 3}
	case model.DealBandEnterprise:
		policy = model.SizingPolicy{Min: 6, Max: 12, Optimal: 8}
	default: // mid-market
		policy = model.SizingPolicy{Min: 4, Max: 8, Optimal: 6}
	}

	if headcount > 0 && headcount < 200 && policy.Max > 8 {
		policy.Max = 8
		if policy.Optimal > policy.Max {
			policy.Optimal = policy.Max
		}
		if policy.Min > policy.Optimal {
			policy.Min = policy.Optimal
		}
	}
	return policy
}
