package predict

import (
	"math"
	"sort"
	"time"

	"github.com/mkorsten/foresight/internal/domain"
)

// DependencyImpact describes how a delay at one item cascades through its
// descendants. Computed fresh each call.
type DependencyImpact struct {
	RootID          string
	RootTitle       string
	DelayDays       float64
	TotalDelayDays  float64
	Affected        []domain.AffectedItem
	CriticalPath    []string
	OnCriticalPath  bool
	RiskScore       int
	Recommendations []string
	AnalyzedAt      time.Time
}

type pathInfo struct {
	length float64
	path   []*GraphNode
}

// FindCriticalPaths returns the longest weighted root-to-leaf path from each
// root, longest first. Weight is estimated effort converted to days.
func FindCriticalPaths(g *Graph) [][]domain.WorkItem {
	memo := make(map[string]pathInfo, g.Len())

	infos := make([]pathInfo, 0, len(g.Roots()))
	for _, root := range g.Roots() {
		infos = append(infos, longestFrom(root, memo))
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].length > infos[j].length
	})

	paths := make([][]domain.WorkItem, 0, len(infos))
	for _, info := range infos {
		items := make([]domain.WorkItem, 0, len(info.path))
		for _, n := range info.path {
			items = append(items, n.Item)
		}
		paths = append(paths, items)
	}
	return paths
}

// CriticalPath returns the single longest path and its length in days.
// Returns nil and zero for an empty graph.
func CriticalPath(g *Graph) ([]domain.WorkItem, float64) {
	memo := make(map[string]pathInfo, g.Len())

	var best pathInfo
	for _, root := range g.Roots() {
		if info := longestFrom(root, memo); info.length > best.length {
			best = info
		}
	}
	if len(best.path) == 0 {
		return nil, 0
	}
	items := make([]domain.WorkItem, 0, len(best.path))
	for _, n := range best.path {
		items = append(items, n.Item)
	}
	return items, best.length
}

// longestFrom computes the longest downstream path from n. The memo is scoped
// to a single call chain; work items mutate between calls, so cached lengths
// must not outlive the graph they were computed on.
func longestFrom(n *GraphNode, memo map[string]pathInfo) pathInfo {
	if cached, ok := memo[n.Item.ID]; ok {
		return cached
	}

	own := n.Item.EstimatedEffortHours / HoursPerDay
	info := pathInfo{length: own, path: []*GraphNode{n}}

	var best pathInfo
	for _, child := range n.Children {
		if sub := longestFrom(child, memo); sub.length > best.length {
			best = sub
		}
	}
	if len(best.path) > 0 {
		info.length = own + best.length
		info.path = append([]*GraphNode{n}, best.path...)
	}

	memo[n.Item.ID] = info
	return info
}

// AnalyzeImpact simulates a delay of delayDays at the given root and
// propagates it breadth-first through descendants. Delay decays per level of
// depth; each node is recorded once at its first-reached depth.
func AnalyzeImpact(g *Graph, rootID string, delayDays float64, now time.Time) (*DependencyImpact, error) {
	if delayDays < 0 {
		return nil, &ValidationError{Field: "delay_days", Reason: "must not be negative"}
	}
	root, ok := g.Node(rootID)
	if !ok {
		return nil, &NotFoundError{Kind: "work item", ID: rootID}
	}

	type visit struct {
		node  *GraphNode
		depth int
	}

	var affected []domain.AffectedItem
	total := 0.0
	seen := map[string]bool{rootID: true}

	queue := make([]visit, 0, len(root.Children))
	for _, child := range root.Children {
		queue = append(queue, visit{node: child, depth: 1})
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if seen[v.node.Item.ID] {
			continue
		}
		seen[v.node.Item.ID] = true

		actual := delayDays * math.Pow(DelayDecayPerLevel, float64(v.depth-1))
		confidence := math.Max(ImpactConfidenceFloor, 1-float64(v.depth)*ImpactConfidencePerStep)

		affected = append(affected, domain.AffectedItem{
			ItemID:        v.node.Item.ID,
			Title:         v.node.Item.Title,
			DelayDays:     actual,
			ProjectedDate: now.AddDate(0, 0, int(math.Round(actual))),
			Confidence:    confidence,
		})
		total += actual

		for _, child := range v.node.Children {
			queue = append(queue, visit{node: child, depth: v.depth + 1})
		}
	}

	// The root earns the critical-path bonus when it sits on the critical
	// path of any tree in the forest, not just the longest one overall.
	paths := FindCriticalPaths(g)
	onCritical := false
	for _, path := range paths {
		for _, item := range path {
			if item.ID == rootID {
				onCritical = true
			}
		}
	}

	var criticalIDs []string
	if len(paths) > 0 {
		criticalIDs = make([]string, 0, len(paths[0]))
		for _, item := range paths[0] {
			criticalIDs = append(criticalIDs, item.ID)
		}
	}

	impact := &DependencyImpact{
		RootID:         rootID,
		RootTitle:      root.Item.Title,
		DelayDays:      delayDays,
		TotalDelayDays: total,
		Affected:       affected,
		CriticalPath:   criticalIDs,
		OnCriticalPath: onCritical,
		AnalyzedAt:     now,
	}
	impact.RiskScore = scoreImpactRisk(impact)
	impact.Recommendations = recommendForImpact(impact)
	return impact, nil
}

// scoreImpactRisk combines four capped sub-scores into a 0-100 score: root
// delay size, total cascaded impact, breadth of affected items, and a flat
// bonus when the root sits on the critical path.
func scoreImpactRisk(impact *DependencyImpact) int {
	score := math.Min(30, impact.DelayDays/10*30)
	score += math.Min(30, impact.TotalDelayDays/50*30)
	score += math.Min(20, float64(len(impact.Affected))/20*20)
	if impact.OnCriticalPath {
		score += 20
	}
	return int(math.Round(math.Min(100, score)))
}

// impactRules is the fixed rule table behind generated recommendations.
var impactRules = []struct {
	applies func(*DependencyImpact) bool
	message string
}{
	{
		applies: func(i *DependencyImpact) bool { return i.RiskScore > 70 },
		message: "Escalate: combined delay risk is high; review the affected chain with stakeholders",
	},
	{
		applies: func(i *DependencyImpact) bool { return len(i.Affected) > 10 },
		message: "More than 10 downstream items are affected; re-plan the dependent subtree",
	},
	{
		applies: func(i *DependencyImpact) bool { return i.OnCriticalPath },
		message: "Delayed item is on the critical path; the delivery date slips with it",
	},
	{
		applies: func(i *DependencyImpact) bool { return i.DelayDays > 5 },
		message: "Consider splitting the delayed item or fast-tracking its successors",
	},
}

func recommendForImpact(impact *DependencyImpact) []string {
	var recs []string
	for _, rule := range impactRules {
		if rule.applies(impact) {
			recs = append(recs, rule.message)
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Delay is absorbable downstream; keep monitoring the affected items")
	}
	return recs
}
