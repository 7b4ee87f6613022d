package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/logger"
)

type GoalService struct {
	repo       repository.GoalsRepositoryI
	milestones MilestoneServiceI
	evaluator  *progress.Evaluator
}

func NewGoalService(goalsRepo repository.GoalsRepositoryI, milestones MilestoneServiceI, evaluator *progress.Evaluator) *GoalService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	if milestones == nil {
		log.Fatal("provided nil milestone service")
	}
	if evaluator == nil {
		evaluator = progress.NewEvaluator(progress.DefaultPolicy(), nil)
	}
	InitValidator()
	return &GoalService{
		repo:       goalsRepo,
		milestones: milestones,
		evaluator:  evaluator,
	}
}

// SetGoal stores a new current goal, keeping the previous ones as history, and re-evaluates
// milestones against it. Achievements of older goals are never touched.
// When evaluation fails the change is still returned together with the error.
func (gs *GoalService) SetGoal(ctx context.Context, uid uuid.UUID, req SetGoalRequest) (*GoalChange, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	previous, err := gs.repo.GetCurrent(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, errors.New("goals repository error: " + err.Error())
		}
		previous = nil
	}
	goal := &entity.Goal{
		UserID:       uid,
		TargetWeight: req.TargetWeight,
		Unit:         req.Unit,
	}
	if err = gs.repo.Create(ctx, goal); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	change := &GoalChange{Goal: goal, Previous: previous}
	if previous != nil {
		previousWeight, err := gs.evaluator.Convert(previous.TargetWeight, previous.Unit, goal.Unit)
		if err != nil {
			return nil, errors.New("converting previous goal error: " + err.Error())
		}
		change.Significant = gs.evaluator.HasGoalChangedSignificantly(goal.TargetWeight, previousWeight)
	}
	logger.FromContext(ctx).Info("goal set",
		slog.Float64("target", goal.TargetWeight),
		slog.String("unit", string(goal.Unit)),
		slog.Bool("significant_change", change.Significant),
	)
	ev, err := gs.milestones.Evaluate(ctx, uid)
	if err != nil {
		return change, err
	}
	change.Evaluation = ev
	return change, nil
}

func (gs *GoalService) GetGoal(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := gs.repo.GetCurrent(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}
