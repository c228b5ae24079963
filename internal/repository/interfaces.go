package repository

import (
	"context"

	"github.com/mkorsten/foresight/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type VelocityRepo interface {
	Create(ctx context.Context, rec *domain.VelocityRecord) error
	// ListRecent returns up to lookbackPeriods most recent closed time-boxes,
	// oldest first.
	ListRecent(ctx context.Context, projectID string, lookbackPeriods int) ([]domain.VelocityRecord, error)
}

type CapacityRepo interface {
	Create(ctx context.Context, rec *domain.CapacityRecord) error
	// Replace swaps the project's allocation snapshot for the given records.
	Replace(ctx context.Context, projectID string, recs []domain.CapacityRecord) error
	ListByProject(ctx context.Context, projectID string) ([]domain.CapacityRecord, error)
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
}

type ForecastRepo interface {
	Save(ctx context.Context, f *domain.Forecast) error
	// FindCached returns the most recently generated forecast for the target.
	// Validity-window filtering is the caller's responsibility.
	FindCached(ctx context.Context, targetID string, targetType domain.TargetType) (*domain.Forecast, error)
}

type ChainRepo interface {
	Save(ctx context.Context, c *domain.DependencyChain) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.DependencyChain, error)
}

type ScenarioRepo interface {
	Save(ctx context.Context, s *domain.ScenarioRecord) error
	GetByID(ctx context.Context, id string) (*domain.ScenarioRecord, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ScenarioRecord, error)
	// SetActive marks one scenario active and deactivates every other
	// scenario of the same project in a single atomic update.
	SetActive(ctx context.Context, projectID, scenarioID string) error
}
