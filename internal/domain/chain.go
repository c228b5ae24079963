package domain

import "time"

// AffectedItem is one downstream work item reached by a propagated delay.
type AffectedItem struct {
	ItemID        string    `json:"item_id"`
	Title         string    `json:"title"`
	DelayDays     float64   `json:"delay_days"`
	ProjectedDate time.Time `json:"projected_date"`
	Confidence    float64   `json:"confidence"`
}

// DependencyChain is a persisted delay-impact analysis, kept for historical
// audit of how a slip was expected to cascade.
type DependencyChain struct {
	ID              string
	ProjectID       string
	RootItemID      string
	DelayDays       float64
	TotalDelayDays  float64
	RiskScore       int
	OnCriticalPath  bool
	CriticalPath    []string
	Affected        []AffectedItem
	Recommendations []string
	CreatedAt       time.Time
}
