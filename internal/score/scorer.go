// Package score computes the buyer-group quality breakdown: four sub-scores
// and their overall mean, every value clamped to [0,100].
package score

import (
	"math"
	"regexp"
	"strings"

	"github.com/rsamoilov/buyerscope/internal/classify"
	"github.com/rsamoilov/buyerscope/internal/model"
)

// Scorer calculates buyer-group quality sub-scores.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

const (
	painBase       = 50
	painSignalStep = 10

	structureBase  = 50
	experienceBase = 30

	// A roster this large with no VP-level-or-above titles reads as a
	// leadership gap, which is itself a sellable pain signal.
	managementGapRosterFloor = 10
)

// standaloneNew matches "new" as a standalone qualifier ("New VP of Sales"),
// not as part of a longer word.
var standaloneNew = regexp.MustCompile(`\bnew\b`)

// Calculate computes the quality breakdown for a finalized group.
// departmentCounts is keyed by canonical department name; totalCandidates is
// the full roster size before filtering and sizing, used for the
// management-gap signal.
func (s *Scorer) Calculate(group []model.RoleAssignment, departmentCounts map[string]int, totalCandidates int) model.Quality {
	pain := s.painSignalScore(group, totalCandidates)
	innovation := s.innovationScore(group)
	experience := s.buyerExperienceScore(group)
	structure := s.structureScore(departmentCounts)

	q := model.Quality{
		PainSignalScore:      pain,
		InnovationScore:      innovation,
		BuyerExperienceScore: experience,
		StructureScore:       structure,
	}
	mean := float64(pain+innovation+experience+structure) / 4.0
	q.OverallScore = clamp(int(math.Round(mean)))
	return q
}

// painSignalScore starts at 50 and adds 10 per detected pain-signal phrase:
// "interim" or "acting" titles, a standalone "new" qualifier, and a
// management gap (zero VP-or-above among a roster of more than ten).
func (s *Scorer) painSignalScore(group []model.RoleAssignment, totalCandidates int) int {
	score := painBase
	for _, m := range group {
		title := strings.ToLower(m.Person.Title)
		if title == "" {
			continue
		}
		if strings.Contains(title, "interim") || strings.Contains(title, "acting") {
			score += painSignalStep
		}
		if standaloneNew.MatchString(title) {
			score += painSignalStep
		}
	}

	if totalCandidates > managementGapRosterFloor && countVPOrAbove(group) == 0 {
		score += painSignalStep
	}
	return clamp(score)
}

var innovationTerms = []struct {
	points   int
	keywords []string
}{
	{20, []string{"revenue ops", "growth"}},
	{15, []string{"data science", "machine learning", "ml engineer", "artificial intelligence", " ai "}},
	{10, []string{"digital", "transformation"}},
}

// innovationScore is additive over members: modern-function titles, network
// engagement, and geographic spread all contribute.
func (s *Scorer) innovationScore(group []model.RoleAssignment) int {
	score := 0
	countries := make(map[string]bool)

	for _, m := range group {
		title := " " + strings.ToLower(m.Person.Title) + " "
		for _, term := range innovationTerms {
			for _, kw := range term.keywords {
				if strings.Contains(title, kw) {
					score += term.points
					break
				}
			}
		}

		switch m.Person.EngagementTier() {
		case model.EngagementHigh:
			score += 15
		case model.EngagementMedium:
			score += 10
		}

		if c := strings.ToLower(m.Person.LocationCountry); c != "" {
			countries[c] = true
		}
	}

	if len(countries) > 1 {
		score += 10
	}
	return clamp(score)
}

// buyerExperienceScore weights senior members: min(100, vp*20 + dir*10 + 30).
// C-level counts as VP-or-above; the floor of 30 applies even with zero
// senior members.
func (s *Scorer) buyerExperienceScore(group []model.RoleAssignment) int {
	vps := 0
	directors := 0
	for _, m := range group {
		switch tierOf(m) {
		case model.TierCLevel, model.TierVP:
			vps++
		case model.TierDirector:
			directors++
		}
	}
	return clamp(vps*20 + directors*10 + experienceBase)
}

// structureScore rewards department-distribution breadth:
// min(100, sales*5 + ops*5 + 50).
func (s *Scorer) structureScore(departmentCounts map[string]int) int {
	sales := departmentCounts[model.DeptSales.String()]
	ops := departmentCounts[model.DeptOperations.String()]
	return clamp(sales*5 + ops*5 + structureBase)
}

func countVPOrAbove(group []model.RoleAssignment) int {
	n := 0
	for _, m := range group {
		if tierOf(m).AtLeast(model.TierVP) {
			n++
		}
	}
	return n
}

func tierOf(m model.RoleAssignment) model.SeniorityTier {
	return classify.Classify(m.Person.Title, m.Person.ManagementLevelHint).Tier
}

// clamp bounds a score to [0,100]. An unbounded additive bug elsewhere must
// never surface as a nonsensical value downstream.
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
