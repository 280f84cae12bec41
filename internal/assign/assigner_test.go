package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsamoilov/buyerscope/internal/classify"
	"github.com/rsamoilov/buyerscope/internal/model"
)

func testProfile() *model.SellerProfile {
	return &model.SellerProfile{
		ProductName: "test",
		DepartmentKeywords: model.KeywordSet{
			Primary: []string{"sales", "revenue"},
		},
		TitleKeywords: model.KeywordSet{
			Primary: []string{"sales", "revenue"},
		},
	}
}

func assignTitle(t *testing.T, title string, c model.PersonCandidate) model.RoleAssignment {
	t.Helper()
	c.Title = title
	res := classify.Classify(c.Title, c.ManagementLevelHint)
	dept := res.Department
	if c.Department != "" {
		dept = classify.CandidateDepartment(c)
	}
	return AssignRole(c, res.Tier, dept, testProfile())
}

func TestAssignRole_DecisionMaker(t *testing.T) {
	a := assignTitle(t, "Chief Revenue Officer", model.PersonCandidate{FullName: "A"})
	assert.Equal(t, model.RoleDecisionMaker, a.Role)
	assert.GreaterOrEqual(t, a.Confidence, 80)

	a = assignTitle(t, "CEO", model.PersonCandidate{})
	assert.Equal(t, model.RoleDecisionMaker, a.Role)

	// VP in a primary revenue function.
	a = assignTitle(t, "VP of Sales", model.PersonCandidate{})
	assert.Equal(t, model.RoleDecisionMaker, a.Role)
}

func TestAssignRole_Champion(t *testing.T) {
	a := assignTitle(t, "Director of Sales Operations", model.PersonCandidate{})
	assert.Equal(t, model.RoleChampion, a.Role)

	// VP outside the primary department list is a Champion, not a
	// Decision Maker.
	a = assignTitle(t, "VP of Marketing", model.PersonCandidate{})
	assert.Equal(t, model.RoleChampion, a.Role)

	a = assignTitle(t, "Sales Team Lead", model.PersonCandidate{})
	assert.Equal(t, model.RoleChampion, a.Role)
}

// A candidate with title "VP, Legal & Compliance" is a Blocker, not a
// Decision Maker: gatekeeping function wins over seniority.
func TestAssignRole_BlockerPrecedence(t *testing.T) {
	a := assignTitle(t, "VP, Legal & Compliance", model.PersonCandidate{})
	assert.Equal(t, model.RoleBlocker, a.Role)

	a = assignTitle(t, "Chief Information Security Officer", model.PersonCandidate{})
	assert.Equal(t, model.RoleBlocker, a.Role)

	a = assignTitle(t, "Internal Audit Manager", model.PersonCandidate{})
	assert.Equal(t, model.RoleBlocker, a.Role)

	// Department text alone triggers the rule too.
	a = assignTitle(t, "Specialist", model.PersonCandidate{Department: "Risk & Compliance"})
	assert.Equal(t, model.RoleBlocker, a.Role)
}

func TestAssignRole_Influencer(t *testing.T) {
	// Technical manager with high engagement.
	a := assignTitle(t, "Engineering Manager", model.PersonCandidate{
		ConnectionsCount: 2500,
		FollowersCount:   1000,
	})
	assert.Equal(t, model.RoleInfluencer, a.Role)

	// Same title with low engagement is not an influencer.
	a = assignTitle(t, "Engineering Manager", model.PersonCandidate{ConnectionsCount: 200})
	assert.NotEqual(t, model.RoleInfluencer, a.Role)

	// Senior IC without a people-management signal.
	a = assignTitle(t, "Principal Software Architect", model.PersonCandidate{})
	assert.Equal(t, model.RoleInfluencer, a.Role)
}

func TestAssignRole_Introducer(t *testing.T) {
	a := assignTitle(t, "Sales Development Representative", model.PersonCandidate{})
	// "sales" + no leadership keyword, SDR function wins.
	assert.Equal(t, model.RoleIntroducer, a.Role)

	a = assignTitle(t, "Customer Success Specialist", model.PersonCandidate{})
	assert.Equal(t, model.RoleIntroducer, a.Role)
}

func TestAssignRole_StakeholderDefault(t *testing.T) {
	a := assignTitle(t, "Data Analyst", model.PersonCandidate{})
	assert.Equal(t, model.RoleStakeholder, a.Role)
	assert.Equal(t, 55, a.Confidence)
}

// Empty title and department degrade gracefully: Stakeholder with a low
// confidence score, never an error.
func TestAssignRole_InsufficientData(t *testing.T) {
	res := classify.Classify("", "")
	a := AssignRole(model.PersonCandidate{FullName: "Unknown"}, res.Tier, res.Department, testProfile())
	assert.Equal(t, model.RoleStakeholder, a.Role)
	assert.LessOrEqual(t, a.Confidence, 50)
	assert.Equal(t, "insufficient data", a.Rationale)
}

func TestAssignRole_ExactlyOneRole(t *testing.T) {
	titles := []string{
		"CEO", "VP of Sales", "Director of Marketing", "Engineering Manager",
		"General Counsel", "SDR", "Analyst", "",
	}
	for _, title := range titles {
		res := classify.Classify(title, "")
		a := AssignRole(model.PersonCandidate{Title: title}, res.Tier, res.Department, testProfile())
		assert.NotEmpty(t, a.Role, "title %q must receive a role", title)
	}
}

func TestSupersede_PreservesPriorAssignment(t *testing.T) {
	res := classify.Classify("VP of Marketing", "")
	orig := AssignRole(model.PersonCandidate{FullName: "B", Title: "VP of Marketing"}, res.Tier, res.Department, testProfile())
	corrected := orig.Supersede(model.RoleStakeholder, 50, "manual correction")

	assert.Equal(t, model.RoleStakeholder, corrected.Role)
	assert.NotNil(t, corrected.Supersedes)
	assert.Equal(t, orig.Role, corrected.Supersedes.Role)
	// The original value is untouched.
	assert.Nil(t, orig.Supersedes)
}
