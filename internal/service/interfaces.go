package service

import (
	"context"

	"github.com/mkorsten/foresight/internal/contract"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	MarkDone(ctx context.Context, id string) error
}

// TrackingService records the history the estimators feed on.
type TrackingService interface {
	RecordVelocity(ctx context.Context, rec *domain.VelocityRecord) error
	VelocityHistory(ctx context.Context, projectID string, lookbackPeriods int) ([]domain.VelocityRecord, error)
	ReplaceCapacity(ctx context.Context, projectID string, recs []domain.CapacityRecord) error
	CapacitySnapshot(ctx context.Context, projectID string) ([]domain.CapacityRecord, error)
}

type ForecastService interface {
	Forecast(ctx context.Context, req contract.ForecastRequest) (*contract.ForecastResponse, error)
	SprintCapacity(ctx context.Context, projectID string, plannedPoints float64) (*contract.SprintCapacityView, error)
}

type ImpactService interface {
	AnalyzeDelay(ctx context.Context, req contract.ImpactRequest) (*contract.ImpactResponse, error)
	CriticalPaths(ctx context.Context, projectID string) (*contract.CriticalPathResponse, error)
}

type ScenarioService interface {
	Evaluate(ctx context.Context, req contract.ScenarioRequest) (*contract.ScenarioResponse, error)
	Activate(ctx context.Context, projectID, scenarioID string) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.ScenarioRecord, error)
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project       *domain.Project
	WorkItemCount int
	VelocityCount int
	CapacityCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
