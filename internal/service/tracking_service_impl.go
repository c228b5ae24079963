package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkorsten/foresight/internal/domain"
	"github.com/mkorsten/foresight/internal/repository"
)

type trackingService struct {
	projects repository.ProjectRepo
	velocity repository.VelocityRepo
	capacity repository.CapacityRepo
}

func NewTrackingService(
	projects repository.ProjectRepo,
	velocity repository.VelocityRepo,
	capacity repository.CapacityRepo,
) TrackingService {
	return &trackingService{projects: projects, velocity: velocity, capacity: capacity}
}

func (s *trackingService) RecordVelocity(ctx context.Context, rec *domain.VelocityRecord) error {
	if _, err := s.projects.GetByID(ctx, rec.ProjectID); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.TeamSize <= 0 {
		rec.TeamSize = 1
	}
	rec.CreatedAt = time.Now().UTC()
	return s.velocity.Create(ctx, rec)
}

func (s *trackingService) VelocityHistory(ctx context.Context, projectID string, lookbackPeriods int) ([]domain.VelocityRecord, error) {
	if lookbackPeriods <= 0 {
		lookbackPeriods = 12
	}
	return s.velocity.ListRecent(ctx, projectID, lookbackPeriods)
}

func (s *trackingService) ReplaceCapacity(ctx context.Context, projectID string, recs []domain.CapacityRecord) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	now := time.Now().UTC()
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = uuid.New().String()
		}
		recs[i].ProjectID = projectID
		recs[i].CreatedAt = now
	}
	return s.capacity.Replace(ctx, projectID, recs)
}

func (s *trackingService) CapacitySnapshot(ctx context.Context, projectID string) ([]domain.CapacityRecord, error) {
	return s.capacity.ListByProject(ctx, projectID)
}
