package domain

import "time"

// VelocityRecord is one completed time-box (sprint or week) of throughput.
// Records are immutable once written; the project tracker produces one on
// time-box close.
type VelocityRecord struct {
	ID              string
	ProjectID       string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	PointsCompleted float64
	TeamSize        int
	CreatedAt       time.Time
}

// CapacityRecord is one active team member allocation, snapshotted at
// forecast time by the resourcing subsystem.
type CapacityRecord struct {
	ID                 string
	ProjectID          string
	AssigneeID         string
	AllocatedHours     float64
	TotalCapacityHours float64
	// BurnoutRiskScore is 0-100; 100 means sustained overwork.
	BurnoutRiskScore float64
	CreatedAt        time.Time
}
