package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/app"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/predict"
	"github.com/mkorsten/foresight/internal/repository"
)

type impactService struct {
	projects  repository.ProjectRepo
	workItems repository.WorkItemRepo
	chains    repository.ChainRepo
	observer  UseCaseObserver

	now func() time.Time
}

func NewImpactService(
	projects repository.ProjectRepo,
	workItems repository.WorkItemRepo,
	chains repository.ChainRepo,
	observers ...UseCaseObserver,
) ImpactService {
	return &impactService{
		projects:  projects,
		workItems: workItems,
		chains:    chains,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *impactService) AnalyzeDelay(ctx context.Context, req app.ImpactRequest) (resp *app.ImpactResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project_id": req.ProjectID,
		"item_id":    req.ItemID,
		"delay_days": req.DelayDays,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze-delay",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	g, err := s.projectGraph(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	impact, err := predict.AnalyzeImpact(g, req.ItemID, req.DelayDays, s.now())
	if err != nil {
		return nil, err
	}
	fields["risk_score"] = impact.RiskScore
	fields["affected_count"] = len(impact.Affected)

	chain := &domain.DependencyChain{
		ID:              uuid.New().String(),
		ProjectID:       req.ProjectID,
		RootItemID:      impact.RootID,
		DelayDays:       impact.DelayDays,
		TotalDelayDays:  impact.TotalDelayDays,
		RiskScore:       impact.RiskScore,
		OnCriticalPath:  impact.OnCriticalPath,
		CriticalPath:    impact.CriticalPath,
		Affected:        impact.Affected,
		Recommendations: impact.Recommendations,
		CreatedAt:       impact.AnalyzedAt,
	}
	if req.Persist {
		if err := s.chains.Save(ctx, chain); err != nil {
			return nil, fmt.Errorf("saving dependency chain: %w", err)
		}
	}

	return &app.ImpactResponse{Chain: chain}, nil
}

func (s *impactService) CriticalPaths(ctx context.Context, projectID string) (*app.CriticalPathResponse, error) {
	g, err := s.projectGraph(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]app.CriticalPathView, 0, len(g.Roots()))
	for _, path := range predict.FindCriticalPaths(g) {
		if len(path) == 0 {
			continue
		}
		ids := make([]string, 0, len(path))
		var days float64
		for _, item := range path {
			ids = append(ids, item.ID)
			days += item.EstimatedEffortHours / predict.HoursPerDay
		}
		views = append(views, app.CriticalPathView{
			RootItemID:  path[0].ID,
			Path:        ids,
			LengthWeeks: days / predict.DaysPerWeek,
		})
	}

	return &app.CriticalPathResponse{ProjectID: projectID, Paths: views}, nil
}

func (s *impactService) projectGraph(ctx context.Context, projectID string) (*predict.Graph, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	items, err := s.workItems.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading work items: %w", err)
	}
	g, err := predict.BuildGraph(items)
	if err != nil {
		return nil, fmt.Errorf("building dependency graph: %w", err)
	}
	return g, nil
}
