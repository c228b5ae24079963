package app

import "github.com/mkorsten/foresight/internal/domain"

type ImpactRequest struct {
	ProjectID string
	ItemID    string
	DelayDays float64
	// Persist stores the analysis as a dependency chain record for audit.
	Persist bool
}

func NewImpactRequest(projectID, itemID string, delayDays float64) ImpactRequest {
	return ImpactRequest{
		ProjectID: projectID,
		ItemID:    itemID,
		DelayDays: delayDays,
		Persist:   true,
	}
}

type ImpactResponse struct {
	Chain *domain.DependencyChain
}

type CriticalPathView struct {
	RootItemID  string
	Path        []string
	LengthWeeks float64
}

type CriticalPathResponse struct {
	ProjectID string
	Paths     []CriticalPathView
}
