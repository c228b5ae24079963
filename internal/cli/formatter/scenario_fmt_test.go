package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
)

func TestFormatScenarioComparison(t *testing.T) {
	base := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	resp := &contract.ScenarioResponse{
		Scenario: &domain.ScenarioRecord{
			Name:        "add two engineers",
			Changes:     []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 2}},
			BaselineP70: base,
			ScenarioP70: base.AddDate(0, 0, -9),
			DaysSaved:   9,
			CostImpact:  72000,
			IsFeasible:  true,
		},
		Baseline: &domain.Forecast{P50: base.AddDate(0, 0, -5), P90: base.AddDate(0, 0, 10)},
		Adjusted: &domain.Forecast{P50: base.AddDate(0, 0, -12), P90: base.AddDate(0, 0, 2)},
	}

	out := FormatScenarioComparison(resp)
	// Box titles render uppercased.
	assert.Contains(t, out, "SCENARIO: ADD TWO ENGINEERS")
	assert.Contains(t, out, "add 2 engineer(s)")
	assert.Contains(t, out, "Saves 9.0 days")
	assert.Contains(t, out, "$72000")
	assert.Contains(t, out, "Feasible")
}

func TestFormatScenarioComparison_Infeasible(t *testing.T) {
	base := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	resp := &contract.ScenarioResponse{
		Scenario: &domain.ScenarioRecord{
			Name:             "hire an army",
			Changes:          []domain.ScenarioChange{{Type: domain.ChangeAddStaff, Value: 6}},
			BaselineP70:      base,
			ScenarioP70:      base,
			IsFeasible:       false,
			FeasibilityNotes: []string{"adding 6 people mid-project is rarely absorbable"},
		},
		Baseline: &domain.Forecast{P50: base, P90: base},
		Adjusted: &domain.Forecast{P50: base, P90: base},
	}

	out := FormatScenarioComparison(resp)
	assert.Contains(t, out, "NOT FEASIBLE")
	assert.Contains(t, out, "rarely absorbable")
}

func TestFormatScenarioList_MarksActive(t *testing.T) {
	out := FormatScenarioList([]*domain.ScenarioRecord{
		{ID: "aaaaaaaa-1111", Name: "first", DaysSaved: 4, IsFeasible: true},
		{ID: "bbbbbbbb-2222", Name: "second", IsFeasible: false, IsActive: true},
	})

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "4.0d")
	assert.Contains(t, out, "aaaaaaaa")
}
