package predict

import (
	"testing"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analysisNow = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

// TestCriticalPath_LinearChain: A(8h) -> B(16h) -> C(8h) at 8h/day gives a
// critical path of 1+2+1 = 4 days through [A, B, C].
func TestCriticalPath_LinearChain(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("a", nil, 8),
		item("b", ptr("a"), 16),
		item("c", ptr("b"), 8),
	})
	require.NoError(t, err)

	path, length := CriticalPath(g)

	assert.Equal(t, 4.0, length)
	require.Len(t, path, 3)
	assert.Equal(t, "a", path[0].ID)
	assert.Equal(t, "b", path[1].ID)
	assert.Equal(t, "c", path[2].ID)
}

func TestCriticalPath_PicksLongestBranch(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("a", nil, 8),
		item("short", ptr("a"), 4),
		item("long", ptr("a"), 24),
		item("leaf", ptr("long"), 8),
	})
	require.NoError(t, err)

	path, length := CriticalPath(g)

	assert.Equal(t, 5.0, length) // 1 + 3 + 1
	require.Len(t, path, 3)
	assert.Equal(t, []string{"a", "long", "leaf"}, []string{path[0].ID, path[1].ID, path[2].ID})
}

func TestFindCriticalPaths_OnePerRoot_LongestFirst(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("r1", nil, 8),
		item("r1c", ptr("r1"), 8),
		item("r2", nil, 40),
	})
	require.NoError(t, err)

	paths := FindCriticalPaths(g)

	require.Len(t, paths, 2)
	assert.Equal(t, "r2", paths[0][0].ID) // 5 days beats 2
	assert.Equal(t, "r1", paths[1][0].ID)
}

func TestCriticalPath_EmptyGraph(t *testing.T) {
	g, err := BuildGraph(nil)
	require.NoError(t, err)

	path, length := CriticalPath(g)

	assert.Nil(t, path)
	assert.Equal(t, 0.0, length)
}

// TestAnalyzeImpact_DelayDecay: a 10-day delay reaches depth-1 children in
// full and decays 20% per additional level, so grandchildren see 8 days.
func TestAnalyzeImpact_DelayDecay(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("root", nil, 8),
		item("child1", ptr("root"), 8),
		item("child2", ptr("root"), 8),
		item("grandchild", ptr("child1"), 8),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "root", 10, analysisNow)
	require.NoError(t, err)

	byID := make(map[string]domain.AffectedItem)
	for _, a := range impact.Affected {
		byID[a.ItemID] = a
	}
	require.Len(t, byID, 3)
	assert.Equal(t, 10.0, byID["child1"].DelayDays)
	assert.Equal(t, 10.0, byID["child2"].DelayDays)
	assert.Equal(t, 8.0, byID["grandchild"].DelayDays)
	assert.Equal(t, 28.0, impact.TotalDelayDays)
}

func TestAnalyzeImpact_ConfidenceDecreasesWithDepth(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("root", nil, 8),
		item("d1", ptr("root"), 8),
		item("d2", ptr("d1"), 8),
		item("d3", ptr("d2"), 8),
		item("d4", ptr("d3"), 8),
		item("d5", ptr("d4"), 8),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "root", 4, analysisNow)
	require.NoError(t, err)

	byID := make(map[string]domain.AffectedItem)
	for _, a := range impact.Affected {
		byID[a.ItemID] = a
	}
	assert.InDelta(t, 0.85, byID["d1"].Confidence, 1e-9)
	assert.InDelta(t, 0.70, byID["d2"].Confidence, 1e-9)
	assert.InDelta(t, 0.55, byID["d3"].Confidence, 1e-9)
	assert.InDelta(t, 0.40, byID["d4"].Confidence, 1e-9)
	// Floor holds at depth 5 even though 1-5*0.15 would be 0.25.
	assert.InDelta(t, 0.40, byID["d5"].Confidence, 1e-9)
}

func TestAnalyzeImpact_RootMissing_NotFound(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{item("a", nil, 8)})
	require.NoError(t, err)

	_, err = AnalyzeImpact(g, "ghost", 5, analysisNow)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ghost", nf.ID)
}

func TestAnalyzeImpact_NegativeDelay_FailsFast(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{item("a", nil, 8)})
	require.NoError(t, err)

	_, err = AnalyzeImpact(g, "a", -1, analysisNow)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAnalyzeImpact_LeafRoot_NoAffectedItems(t *testing.T) {
	g, err := BuildGraph([]domain.WorkItem{
		item("a", nil, 8),
		item("b", ptr("a"), 8),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "b", 3, analysisNow)
	require.NoError(t, err)

	assert.Empty(t, impact.Affected)
	assert.Equal(t, 0.0, impact.TotalDelayDays)
}

func TestAnalyzeImpact_CriticalPathBonusRaisesRisk(t *testing.T) {
	// Root "a" heads the only (hence critical) path; a 10-day delay with one
	// child scores 30 (delay cap) + 6 (impact 10/50*30) + 1 (breadth) + 20
	// (critical path) = 57.
	g, err := BuildGraph([]domain.WorkItem{
		item("a", nil, 16),
		item("b", ptr("a"), 8),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "a", 10, analysisNow)
	require.NoError(t, err)

	assert.True(t, impact.OnCriticalPath)
	assert.Equal(t, 57, impact.RiskScore)
	assert.Equal(t, []string{"a", "b"}, impact.CriticalPath)
}

func TestAnalyzeImpact_RecommendationRules(t *testing.T) {
	// Wide two-level tree: 12 children under the root pushes the breadth rule
	// over its threshold.
	items := []domain.WorkItem{item("root", nil, 40)}
	for i := 0; i < 12; i++ {
		items = append(items, item(string(rune('a'+i)), ptr("root"), 8))
	}
	g, err := BuildGraph(items)
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "root", 20, analysisNow)
	require.NoError(t, err)

	joined := ""
	for _, r := range impact.Recommendations {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "Escalate")
	assert.Contains(t, joined, "re-plan the dependent subtree")
	assert.Contains(t, joined, "critical path")
	assert.Contains(t, joined, "splitting the delayed item")
}

func TestAnalyzeImpact_AbsorbableDelay_DefaultRecommendation(t *testing.T) {
	// "a" is the short branch under "b"; the critical path runs [b, c].
	g, err := BuildGraph([]domain.WorkItem{
		item("b", nil, 80),
		item("a", ptr("b"), 4),
		item("c", ptr("b"), 8),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "a", 1, analysisNow)
	require.NoError(t, err)

	assert.False(t, impact.OnCriticalPath)
	require.Len(t, impact.Recommendations, 1)
	assert.Contains(t, impact.Recommendations[0], "absorbable")
}

func TestAnalyzeImpact_SecondaryRootCriticalPath_GetsBonus(t *testing.T) {
	// "side" heads the shorter of two trees. Its own critical path is
	// [side, s1], so delaying it earns the critical-path bonus even though the
	// forest-wide longest path runs through "big".
	g, err := BuildGraph([]domain.WorkItem{
		item("big", nil, 160),
		item("bigleaf", ptr("big"), 8),
		item("side", nil, 16),
		item("s1", ptr("side"), 8),
		item("s2", ptr("side"), 4),
	})
	require.NoError(t, err)

	impact, err := AnalyzeImpact(g, "side", 10, analysisNow)
	require.NoError(t, err)

	assert.True(t, impact.OnCriticalPath)
	// 30 (delay cap) + 12 (cascade 20/50*30) + 2 (breadth) + 20 (bonus).
	assert.Equal(t, 64, impact.RiskScore)
	// The reported path stays the longest one in the forest.
	assert.Equal(t, []string{"big", "bigleaf"}, impact.CriticalPath)
}
