package model

// SeniorityTier is the coarse rank derived from a job title.
// Higher values outrank lower ones.
type SeniorityTier int

const (
	TierIC SeniorityTier = iota
	TierManager
	TierDirector
	TierVP
	TierCLevel
)

func (t SeniorityTier) String() string {
	switch t {
	case TierCLevel:
		return "c-level"
	case TierVP:
		return "vp"
	case TierDirector:
		return "director"
	case TierManager:
		return "manager"
	default:
		return "ic"
	}
}

// AtLeast reports whether the tier is at or above the given tier.
func (t SeniorityTier) AtLeast(other SeniorityTier) bool { return t >= other }

// Department is the fixed department taxonomy used for classification and
// structural scoring. Free-text provider departments are mapped onto it.
type Department string

const (
	DeptSales       Department = "sales"
	DeptFinance     Department = "finance" // revenue/finance
	DeptMarketing   Department = "marketing"
	DeptEngineering Department = "engineering" // engineering/product
	DeptOperations  Department = "operations"
	DeptLegal       Department = "legal" // legal/compliance/security
	DeptOther       Department = "other"
)

func (d Department) String() string { return string(d) }
