package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/pkg/entity"
)

type RegisterRequest struct {
	Name          string            `validate:"required,alphanum_underscore,min=3,max=100"`
	Password      string            `validate:"required,min=8,max=72"`
	PreferredUnit entity.WeightUnit `validate:"omitempty,weight_unit"`
}

type AddMeasurementRequest struct {
	Weight float64           `validate:"gt=0,lte=1500"`
	Unit   entity.WeightUnit `validate:"required,weight_unit"`

	// zero means now
	MeasuredAt time.Time
}

type SetGoalRequest struct {
	TargetWeight float64           `validate:"gt=0,lte=1500"`
	Unit         entity.WeightUnit `validate:"required,weight_unit"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type EvaluationStatus string

const (
	StatusEvaluated         EvaluationStatus = "evaluated"
	StatusNoGoal            EvaluationStatus = "no_goal"
	StatusEmptyHistory      EvaluationStatus = "empty_history"
	StatusUndefinedProgress EvaluationStatus = "undefined_progress"
)

// Evaluation is the outcome of one milestone cycle. Anything but StatusEvaluated means nothing was recorded.
type Evaluation struct {
	Status   EvaluationStatus              `json:"status"`
	Progress *progress.Snapshot            `json:"progress,omitempty"`
	Crossed  []entity.MilestoneType        `json:"crossed"`
	New      []entity.MilestoneType        `json:"new"`
	Recorded []entity.MilestoneAchievement `json:"recorded"`

	// approaching check could not run because of threshold conversion
	ApproachingSkipped bool `json:"approaching_skipped,omitempty"`
}

type MeasurementResult struct {
	Measurement *entity.WeightMeasurement `json:"measurement"`
	Evaluation  *Evaluation               `json:"evaluation"`
}

type GoalChange struct {
	Goal        *entity.Goal `json:"goal"`
	Previous    *entity.Goal `json:"previous,omitempty"`
	Significant bool         `json:"significant"`
	Evaluation  *Evaluation  `json:"evaluation"`
}

type ProgressReport struct {
	Progress          *progress.Snapshot           `json:"progress"`
	LatestAchievement *entity.MilestoneAchievement `json:"latest_achievement,omitempty"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	SetPreferredUnit(ctx context.Context, id uuid.UUID, unit entity.WeightUnit) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type MeasurementServiceI interface {
	// Saves measurement and runs milestone evaluation on the updated history
	AddMeasurement(ctx context.Context, uid uuid.UUID, req AddMeasurementRequest) (*MeasurementResult, error)
	ListMeasurements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.WeightMeasurement, error)
	DeleteMeasurement(ctx context.Context, id, uid uuid.UUID) error
}

type GoalServiceI interface {
	SetGoal(ctx context.Context, uid uuid.UUID, req SetGoalRequest) (*GoalChange, error)
	GetGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
}

type MilestoneServiceI interface {
	Evaluate(ctx context.Context, uid uuid.UUID) (*Evaluation, error)
}

type ProgressServiceI interface {
	// Empty unit means user's preferred unit
	GetProgress(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit) (*ProgressReport, error)
	// Zero alpha means configured default
	GetTrend(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit, alpha float64) ([]progress.TrendPoint, error)
	ListAchievements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.MilestoneAchievement, error)
	LatestAchievement(ctx context.Context, uid uuid.UUID) (*entity.MilestoneAchievement, error)
}

// Notifier schedules user-facing delivery of an achievement. Returning nil confirms scheduling.
type Notifier interface {
	Notify(ctx context.Context, a entity.MilestoneAchievement) error
}
