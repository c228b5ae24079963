package contract

import "github.com/mkorsten/foresight/internal/domain"

type TargetType = domain.TargetType

const (
	TargetTask         TargetType = domain.TargetTask
	TargetSprint       TargetType = domain.TargetSprint
	TargetMilestone    TargetType = domain.TargetMilestone
	TargetFeatureGroup TargetType = domain.TargetFeatureGroup
	TargetProject      TargetType = domain.TargetProject
)

type ChangeType = domain.ChangeType

const (
	ChangeAddStaff         ChangeType = domain.ChangeAddStaff
	ChangeReduceScope      ChangeType = domain.ChangeReduceScope
	ChangeIncreaseVelocity ChangeType = domain.ChangeIncreaseVelocity
	ChangeRemoveBlockers   ChangeType = domain.ChangeRemoveBlockers
	ChangeExtendHours      ChangeType = domain.ChangeExtendHours
	ChangeRemoveDependency ChangeType = domain.ChangeRemoveDependency
)

type ScenarioChange = domain.ScenarioChange
