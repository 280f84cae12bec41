package model

import "strings"

// PersonCandidate is one person at the target company under consideration.
// Candidates come from the people provider and are treated as immutable
// inputs; the engine produces derived annotations, never mutates the source.
type PersonCandidate struct {
	FullName            string `json:"full_name"`
	Title               string `json:"title,omitempty"`
	Department          string `json:"department,omitempty"`
	ManagementLevelHint string `json:"management_level_hint,omitempty"`
	ConnectionsCount    int    `json:"connections_count,omitempty"`
	FollowersCount      int    `json:"followers_count,omitempty"`
	LocationCountry     string `json:"location_country,omitempty"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	LinkedinURL         string `json:"linkedin_url,omitempty"`
	ProviderID          string `json:"provider_id"`
}

// Normalize cleans up a candidate record once at the ingestion boundary so
// downstream classification and scoring never have to re-check raw fields.
func (c *PersonCandidate) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Title = strings.TrimSpace(c.Title)
	c.Department = strings.TrimSpace(c.Department)
	c.ManagementLevelHint = strings.TrimSpace(c.ManagementLevelHint)
	c.LocationCountry = strings.TrimSpace(c.LocationCountry)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.ConnectionsCount < 0 {
		c.ConnectionsCount = 0
	}
	if c.FollowersCount < 0 {
		c.FollowersCount = 0
	}
}

// Engagement is the professional-network engagement signal: the sum of
// connection and follower counts. A proxy for market visibility, not an
// authority signal by itself.
func (c *PersonCandidate) Engagement() int {
	return c.ConnectionsCount + c.FollowersCount
}

// EngagementLevel buckets the engagement signal.
type EngagementLevel int

const (
	EngagementLow    EngagementLevel = iota // < 1000
	EngagementMedium                        // 1000-3000
	EngagementHigh                          // > 3000
)

const (
	engagementMediumFloor = 1000
	engagementHighFloor   = 3000
)

// EngagementTier classifies the candidate's network engagement.
func (c *PersonCandidate) EngagementTier() EngagementLevel {
	e := c.Engagement()
	switch {
	case e > engagementHighFloor:
		return EngagementHigh
	case e >= engagementMediumFloor:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

func (l EngagementLevel) String() string {
	switch l {
	case EngagementHigh:
		return "high"
	case EngagementMedium:
		return "medium"
	default:
		return "low"
	}
}
