package entity

import (
	"time"

	"github.com/google/uuid"
)

type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

type User struct {
	ID            uuid.UUID
	Name          string
	PasswordHash  string
	PreferredUnit WeightUnit
}

type WeightMeasurement struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"uid"`
	Weight     float64    `json:"weight"`
	Unit       WeightUnit `json:"unit"`
	MeasuredAt time.Time  `json:"measured_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type Goal struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"uid"`
	TargetWeight float64    `json:"target_weight"`
	Unit         WeightUnit `json:"unit"`
	SetAt        time.Time  `json:"set_at"`
}

type MilestoneType string

const (
	MilestoneApproaching  MilestoneType = "approaching"
	MilestoneQuarter      MilestoneType = "quarter"
	MilestoneHalf         MilestoneType = "half"
	MilestoneThreeQuarter MilestoneType = "three_quarter"
	MilestoneComplete     MilestoneType = "complete"
)

// PercentageMilestones are ordered by ascending threshold.
var PercentageMilestones = []MilestoneType{
	MilestoneQuarter,
	MilestoneHalf,
	MilestoneThreeQuarter,
	MilestoneComplete,
}

// Rank orders milestones for "highest wins". Unknown types rank below approaching.
func (m MilestoneType) Rank() int {
	switch m {
	case MilestoneApproaching:
		return 1
	case MilestoneQuarter:
		return 2
	case MilestoneHalf:
		return 3
	case MilestoneThreeQuarter:
		return 4
	case MilestoneComplete:
		return 5
	}
	return 0
}

// Threshold returns the progress percentage needed to reach the milestone.
// Approaching is distance based and has no percentage threshold.
func (m MilestoneType) Threshold() (float64, bool) {
	switch m {
	case MilestoneQuarter:
		return 25, true
	case MilestoneHalf:
		return 50, true
	case MilestoneThreeQuarter:
		return 75, true
	case MilestoneComplete:
		return 100, true
	}
	return 0, false
}

func (m MilestoneType) Valid() bool {
	return m.Rank() > 0
}

type MilestoneAchievement struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"uid"`
	Type                MilestoneType `json:"type"`
	WeightAtAchievement float64       `json:"weight"`
	GoalWeight          float64       `json:"goal_weight"`
	StartWeight         float64       `json:"start_weight"`
	ProgressPercentage  float64       `json:"progress"`
	Unit                WeightUnit    `json:"unit"`
	AchievedAt          time.Time     `json:"achieved_at"`
	Notified            bool          `json:"notified"`
}
