package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/app"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/predict"
	"github.com/mkorsten/foresight/internal/repository"
)

type forecastService struct {
	projects  repository.ProjectRepo
	workItems repository.WorkItemRepo
	velocity  repository.VelocityRepo
	capacity  repository.CapacityRepo
	forecasts repository.ForecastRepo
	observer  UseCaseObserver

	// now and rng are swappable for deterministic tests.
	now func() time.Time
	rng *rand.Rand
}

func NewForecastService(
	projects repository.ProjectRepo,
	workItems repository.WorkItemRepo,
	velocity repository.VelocityRepo,
	capacity repository.CapacityRepo,
	forecasts repository.ForecastRepo,
	observers ...UseCaseObserver,
) ForecastService {
	return &forecastService{
		projects:  projects,
		workItems: workItems,
		velocity:  velocity,
		capacity:  capacity,
		forecasts: forecasts,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *forecastService) Forecast(ctx context.Context, req app.ForecastRequest) (resp *app.ForecastResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"target_id":   req.TargetID,
		"target_type": string(req.TargetType),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "forecast",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if !domain.ValidTargetTypes[string(req.TargetType)] {
		return nil, &app.ForecastError{
			Code:    app.ForecastErrInvalidTarget,
			Message: fmt.Sprintf("unknown target type %q", req.TargetType),
		}
	}

	now := s.now()
	if !req.Force {
		cached, cacheErr := s.forecasts.FindCached(ctx, req.TargetID, req.TargetType)
		switch {
		case cacheErr == nil:
			if now.Sub(cached.GeneratedAt) < predict.CacheValidity {
				fields["cached"] = true
				return &app.ForecastResponse{Forecast: cached, Cached: true}, nil
			}
		case !errors.Is(cacheErr, repository.ErrNotFound):
			return nil, fmt.Errorf("loading cached forecast: %w", cacheErr)
		}
	}

	projectID, scope, err := s.resolveScope(ctx, req)
	if err != nil {
		return nil, err
	}
	fields["item_count"] = scope.ItemCount

	lookback := req.LookbackPeriods
	if lookback <= 0 {
		lookback = 12
	}
	history, err := s.velocity.ListRecent(ctx, projectID, lookback)
	if err != nil {
		return nil, fmt.Errorf("loading velocity history: %w", err)
	}
	allocations, err := s.capacity.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading capacity snapshot: %w", err)
	}

	input := predict.ForecastInput{
		TargetID:                req.TargetID,
		TargetType:              req.TargetType,
		RemainingEffort:         scope.RemainingPoints,
		DependencyCount:         scope.DependencyCount,
		ExternalDependencyCount: scope.ExternalCount,
		StartDate:               now,
		Velocity:                predict.EstimateVelocity(history),
		Capacity:                predict.EstimateCapacity(allocations),
	}
	result, err := predict.Simulate(ctx, input, predict.SimOptions{Runs: req.Runs, Rand: s.rng})
	if err != nil {
		return nil, fmt.Errorf("simulating forecast: %w", err)
	}

	forecast := forecastFromResult(result, now)
	if err := s.forecasts.Save(ctx, forecast); err != nil {
		return nil, fmt.Errorf("saving forecast: %w", err)
	}
	fields["used_fallback"] = forecast.UsedFallback

	return &app.ForecastResponse{Forecast: forecast}, nil
}

// resolveScope maps the request target onto the work items it covers. A
// project target covers every item; any other target covers the item and its
// dependent subtree.
func (s *forecastService) resolveScope(ctx context.Context, req app.ForecastRequest) (string, workScope, error) {
	if req.TargetType == domain.TargetProject {
		if _, err := s.projects.GetByID(ctx, req.TargetID); err != nil {
			return "", workScope{}, err
		}
		items, err := s.workItems.ListByProject(ctx, req.TargetID)
		if err != nil {
			return "", workScope{}, fmt.Errorf("loading work items: %w", err)
		}
		return req.TargetID, scopeFromItems(items), nil
	}

	item, err := s.workItems.GetByID(ctx, req.TargetID)
	if err != nil {
		return "", workScope{}, err
	}
	items, err := s.workItems.ListByProject(ctx, item.ProjectID)
	if err != nil {
		return "", workScope{}, fmt.Errorf("loading work items: %w", err)
	}
	g, err := predict.BuildGraph(items)
	if err != nil {
		return "", workScope{}, fmt.Errorf("building dependency graph: %w", err)
	}
	return item.ProjectID, scopeFromItems(subtreeItems(g, req.TargetID)), nil
}

func (s *forecastService) SprintCapacity(ctx context.Context, projectID string, plannedPoints float64) (*app.SprintCapacityView, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	history, err := s.velocity.ListRecent(ctx, projectID, 6)
	if err != nil {
		return nil, fmt.Errorf("loading velocity history: %w", err)
	}
	allocations, err := s.capacity.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading capacity snapshot: %w", err)
	}

	vel := predict.EstimateVelocity(history)
	capEst := predict.EstimateCapacity(allocations)
	expected := vel.Mean * (1 - capEst.BurnoutRisk*predict.BurnoutVelocityPenalty) * capEst.UtilizationRate

	return &app.SprintCapacityView{
		ProjectID:        projectID,
		PlannedPoints:    plannedPoints,
		ExpectedVelocity: expected,
		UtilizationRate:  capEst.UtilizationRate,
		Overcommitted:    plannedPoints > expected,
		GeneratedAt:      s.now(),
	}, nil
}

func forecastFromResult(r *predict.ForecastResult, generatedAt time.Time) *domain.Forecast {
	return &domain.Forecast{
		ID:              uuid.New().String(),
		TargetID:        r.TargetID,
		TargetType:      r.TargetType,
		BestCase:        r.BestCase,
		P50:             r.P50,
		P70:             r.P70,
		P85:             r.P85,
		P90:             r.P90,
		WorstCase:       r.WorstCase,
		MostLikely:      r.MostLikely,
		Confidence:      r.Confidence,
		Runs:            r.Runs,
		VelocityMean:    r.Velocity.Mean,
		VelocityStdDev:  r.Velocity.StdDev,
		HoursPerWeek:    r.Capacity.HoursPerWeek,
		UtilizationRate: r.Capacity.UtilizationRate,
		BurnoutRisk:     r.Capacity.BurnoutRisk,
		TeamSize:        r.Capacity.TeamSize,
		UsedFallback:    r.UsedFallback,
		GeneratedAt:     generatedAt,
	}
}
