package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/pkg/entity"
)

// ProgressService answers read-only progress queries, such as widgets or voice intents.
// It never writes to the ledger.
type ProgressService struct {
	users        repository.UsersRepositoryI
	measurements repository.MeasurementsRepositoryI
	goals        repository.GoalsRepositoryI
	ledger       repository.AchievementsRepositoryI
	evaluator    *progress.Evaluator
	trendAlpha   float64
}

type ProgressRepos struct {
	Users        repository.UsersRepositoryI
	Measurements repository.MeasurementsRepositoryI
	Goals        repository.GoalsRepositoryI
	Ledger       repository.AchievementsRepositoryI
}

func NewProgressService(repos ProgressRepos, evaluator *progress.Evaluator, trendAlpha float64) *ProgressService {
	if repos.Users == nil || repos.Measurements == nil || repos.Goals == nil || repos.Ledger == nil {
		log.Fatal("provided nil repository to progress service")
	}
	if evaluator == nil {
		evaluator = progress.NewEvaluator(progress.DefaultPolicy(), nil)
	}
	if trendAlpha <= 0 || trendAlpha > 1 {
		trendAlpha = progress.DefaultTrendAlpha
	}
	return &ProgressService{
		users:        repos.Users,
		measurements: repos.Measurements,
		goals:        repos.Goals,
		ledger:       repos.Ledger,
		evaluator:    evaluator,
		trendAlpha:   trendAlpha,
	}
}

// GetProgress returns ErrGoalNotFound or ErrEmptyHistory when there is nothing to report.
// Undefined progress is a valid report with Defined false.
func (ps *ProgressService) GetProgress(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit) (*ProgressReport, error) {
	unit, err := ps.displayUnit(ctx, uid, unit)
	if err != nil {
		return nil, err
	}
	goal, err := ps.goals.GetCurrent(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	entries, err := ps.measurements.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	snap, err := ps.evaluator.Snapshot(entries, *goal)
	if err != nil {
		return nil, err
	}
	snap, err = ps.evaluator.InUnit(snap, unit)
	if err != nil {
		return nil, err
	}
	latest, err := ps.ledger.GetMostRecent(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return &ProgressReport{
		Progress:          snap,
		LatestAchievement: latest,
	}, nil
}

func (ps *ProgressService) GetTrend(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit, alpha float64) ([]progress.TrendPoint, error) {
	unit, err := ps.displayUnit(ctx, uid, unit)
	if err != nil {
		return nil, err
	}
	if alpha == 0 {
		alpha = ps.trendAlpha
	}
	entries, err := ps.measurements.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	points, err := ps.evaluator.Trend(entries, unit, alpha)
	if err != nil {
		if errors.Is(err, progress.ErrInvalidAlpha) {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
		return nil, err
	}
	return points, nil
}

func (ps *ProgressService) ListAchievements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.MilestoneAchievement, error) {
	list, err := ps.ledger.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return list, nil
}

func (ps *ProgressService) LatestAchievement(ctx context.Context, uid uuid.UUID) (*entity.MilestoneAchievement, error) {
	latest, err := ps.ledger.GetMostRecent(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	if latest == nil {
		return nil, errorvalues.ErrAchievementNotFound
	}
	return latest, nil
}

// displayUnit validates an explicit unit or falls back to the user's preference.
func (ps *ProgressService) displayUnit(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit) (entity.WeightUnit, error) {
	switch unit {
	case entity.Kilograms, entity.Pounds:
		return unit, nil
	case "":
	default:
		return "", errors.Join(errorvalues.ErrValidation, errors.New("unknown unit "+string(unit)))
	}
	user, err := ps.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return "", err
		}
		return "", errors.New("users repository error: " + err.Error())
	}
	if user.PreferredUnit == "" {
		return entity.Kilograms, nil
	}
	return user.PreferredUnit, nil
}
