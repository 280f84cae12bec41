package sizing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsamoilov/buyerscope/internal/model"
)

func assignment(name string, role model.Role, confidence int) model.RoleAssignment {
	return model.RoleAssignment{
		Person:     model.PersonCandidate{FullName: name, ProviderID: strings.ToLower(name)},
		Role:       role,
		Confidence: confidence,
	}
}

func names(members []model.RoleAssignment) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Person.FullName
	}
	return out
}

func TestSize_WithinRange(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Carol", model.RoleStakeholder, 55),
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 75),
	}
	res := Size(assignments, model.SizingPolicy{Min: 2, Max: 5, Optimal: 3}, nil)

	assert.False(t, res.Underfilled)
	// Nobody dropped, but output order is role rank then confidence.
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names(res.Members))
}

func TestSize_UnderfilledStrictlyBelowMin(t *testing.T) {
	policy := model.SizingPolicy{Min: 3, Max: 5, Optimal: 3}

	two := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 75),
	}
	res := Size(two, policy, nil)
	assert.True(t, res.Underfilled)
	assert.Len(t, res.Members, 2, "shortfall is reported, never padded or trimmed")

	// Exactly min meets the policy.
	three := append(two, assignment("Carol", model.RoleStakeholder, 55))
	res = Size(three, policy, nil)
	assert.False(t, res.Underfilled)
	assert.Len(t, res.Members, 3)
}

func TestSize_TrimsLowestConfidenceToOptimal(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 75),
		assignment("Carol", model.RoleStakeholder, 55),
		assignment("Dave", model.RoleStakeholder, 40),
		assignment("Erin", model.RoleIntroducer, 60),
	}
	res := Size(assignments, model.SizingPolicy{Min: 2, Max: 4, Optimal: 3}, nil)

	assert.False(t, res.Underfilled)
	assert.Equal(t, []string{"Alice", "Bob", "Erin"}, names(res.Members),
		"Dave (40) then Carol (55) go first")
}

// With a quota configured, a role's excess is drained before anyone from a
// role still under quota, even when the under-quota member is less confident.
func TestSize_QuotaExcessDropsFirst(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 85),
		assignment("Carol", model.RoleChampion, 80),
		assignment("Dave", model.RoleStakeholder, 40),
	}
	quotas := map[model.Role]int{model.RoleChampion: 1}
	res := Size(assignments, model.SizingPolicy{Min: 1, Max: 3, Optimal: 2}, quotas)

	// Carol (champion 80, over quota) drops before Dave (stakeholder 40),
	// then Bob becomes the sole champion and Dave goes next.
	assert.Equal(t, []string{"Alice", "Bob"}, names(res.Members))
}

// The sole Decision Maker survives trimming even as the least confident
// member of the roster.
func TestSize_SoleDecisionMakerProtected(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 10),
		assignment("Bob", model.RoleStakeholder, 95),
		assignment("Carol", model.RoleStakeholder, 90),
		assignment("Dave", model.RoleStakeholder, 85),
	}
	res := Size(assignments, model.SizingPolicy{Min: 1, Max: 3, Optimal: 2}, nil)

	assert.Equal(t, []string{"Alice", "Bob"}, names(res.Members))
}

// When everyone left is protected, trimming stops at max instead of
// reaching optimal.
func TestSize_ProtectionStopsAtMax(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 75),
		assignment("Carol", model.RoleStakeholder, 55),
	}
	res := Size(assignments, model.SizingPolicy{Min: 1, Max: 2, Optimal: 1}, nil)

	assert.Equal(t, []string{"Alice", "Bob"}, names(res.Members))
}

// Above max, protection yields: someone has to go to honor the hard cap.
func TestSize_ForcedDropAboveMax(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleChampion, 75),
	}
	res := Size(assignments, model.SizingPolicy{Min: 1, Max: 1, Optimal: 1}, nil)

	assert.Equal(t, []string{"Alice"}, names(res.Members))
}

func TestSize_DeterministicTieBreaks(t *testing.T) {
	assignments := []model.RoleAssignment{
		assignment("Alice", model.RoleDecisionMaker, 90),
		assignment("Bob", model.RoleStakeholder, 50),
		assignment("Carol", model.RoleStakeholder, 50),
	}
	policy := model.SizingPolicy{Min: 1, Max: 2, Optimal: 2}

	first := Size(assignments, policy, nil)
	second := Size(assignments, policy, nil)
	assert.Equal(t, names(first.Members), names(second.Members))
	// Equal confidence: the higher provider ID drops.
	assert.Equal(t, []string{"Alice", "Bob"}, names(first.Members))
}

func TestPolicyForDeal(t *testing.T) {
	tests := []struct {
		name      string
		band      model.DealSizeBand
		headcount int
		want      model.SizingPolicy
	}{
		{"smb", model.DealBandSMB, 5000, model.SizingPolicy{Min: 2, Max: 5, Optimal: 3}},
		{"mid-market", model.DealBandMidMarket, 5000, model.SizingPolicy{Min: 4, Max: 8, Optimal: 6}},
		{"enterprise", model.DealBandEnterprise, 5000, model.SizingPolicy{Min: 6, Max: 12, Optimal: 8}},
		{"unknown band defaults to mid-market", "", 5000, model.SizingPolicy{Min: 4, Max: 8, Optimal: 6}},
		{"small company caps enterprise at 8", model.DealBandEnterprise, 150, model.SizingPolicy{Min: 6, Max: 8, Optimal: 8}},
		{"small company leaves smb alone", model.DealBandSMB, 150, model.SizingPolicy{Min: 2, Max: 5, Optimal: 3}},
		{"unknown headcount never caps", model.DealBandEnterprise, 0, model.SizingPolicy{Min: 6, Max: 12, Optimal: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PolicyForDeal(tt.band, tt.headcount))
		})
	}
}
