package model

// Role is a purchase-decision role inside a buyer group. The set is closed;
// a person not selected for the group simply has no role.
type Role string

const (
	RoleDecisionMaker Role = "decision_maker" // final budget/purchase authority
	RoleChampion      Role = "champion"       // internal advocate driving the deal
	RoleStakeholder   Role = "stakeholder"    // affected by the purchase, no direct authority
	RoleInfluencer    Role = "influencer"     // shapes opinion without owning budget
	RoleBlocker       Role = "blocker"        // can veto or delay regardless of seniority
	RoleIntroducer    Role = "introducer"     // low-authority contact for initial access
)

// Roles lists all roles in display/priority order.
var Roles = []Role{
	RoleDecisionMaker,
	RoleChampion,
	RoleInfluencer,
	RoleBlocker,
	RoleIntroducer,
	RoleStakeholder,
}

func (r Role) String() string { return string(r) }

// Display returns a human-readable role name for reports.
func (r Role) Display() string {
	switch r {
	case RoleDecisionMaker:
		return "Decision Maker"
	case RoleChampion:
		return "Champion"
	case RoleStakeholder:
		return "Stakeholder"
	case RoleInfluencer:
		return "Influencer"
	case RoleBlocker:
		return "Blocker"
	case RoleIntroducer:
		return "Introducer"
	default:
		return string(r)
	}
}

// RoleAssignment pairs a candidate with exactly one buyer-group role.
// Assignments are never mutated after creation; a correction produces a new
// assignment that supersedes the old one, preserving the prior value for
// audit.
type RoleAssignment struct {
	Person     PersonCandidate `json:"person"`
	Role       Role            `json:"role"`
	Confidence int             `json:"confidence"` // 0-100
	Rationale  string          `json:"rationale"`

	// Supersedes carries the prior assignment when this one is a correction.
	Supersedes *RoleAssignment `json:"supersedes,omitempty"`
}

// Supersede returns a new assignment replacing the receiver's role, keeping
// the original attached for audit.
func (a RoleAssignment) Supersede(role Role, confidence int, rationale string) RoleAssignment {
	prior := a
	prior.Supersedes = nil
	return RoleAssignment{
		Person:     a.Person,
		Role:       role,
		Confidence: confidence,
		Rationale:  rationale,
		Supersedes: &prior,
	}
}
