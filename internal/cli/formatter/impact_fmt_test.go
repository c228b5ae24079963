package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

func TestFormatImpact_ListsAffectedItems(t *testing.T) {
	chain := &domain.DependencyChain{
		RootItemID:     "root-1",
		DelayDays:      5,
		TotalDelayDays: 9,
		RiskScore:      55,
		OnCriticalPath: true,
		Affected: []domain.AffectedItem{
			{ItemID: "a-1", Title: "Implement API", DelayDays: 5, ProjectedDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), Confidence: 0.85},
			{ItemID: "a-2", Title: "Verify API", DelayDays: 4, ProjectedDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Confidence: 0.7},
		},
		Recommendations: []string{"Consider adding staff to the delayed item"},
	}

	out := FormatImpact(chain, map[string]string{"root-1": "Design API"})
	assert.Contains(t, out, "Design API")
	assert.Contains(t, out, "Implement API")
	assert.Contains(t, out, "+5.0d")
	assert.Contains(t, out, "critical path")
	assert.Contains(t, out, "9 days across 2 items")
	assert.Contains(t, out, "Consider adding staff")
}

func TestFormatImpact_NoDownstream(t *testing.T) {
	chain := &domain.DependencyChain{RootItemID: "leaf", DelayDays: 3, RiskScore: 10}
	out := FormatImpact(chain, nil)
	assert.Contains(t, out, "No downstream items")
}

func TestFormatCriticalPaths(t *testing.T) {
	resp := &contract.CriticalPathResponse{
		ProjectID: "p-1",
		Paths: []contract.CriticalPathView{
			{RootItemID: "w-1", Path: []string{"w-1", "w-2"}, LengthWeeks: 1.43},
		},
	}
	titles := map[string]string{"w-1": "Design", "w-2": "Build"}

	out := FormatCriticalPaths(resp, titles)
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "1.4 weeks")

	empty := FormatCriticalPaths(&contract.CriticalPathResponse{ProjectID: "p-1"}, nil)
	assert.Contains(t, empty, "nothing on the critical path")
}
