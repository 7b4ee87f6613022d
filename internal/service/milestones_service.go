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

// MilestoneService decides which milestones a user newly reached, records them in the ledger
// and hands them to the notifier. At most one percentage milestone and one approaching
// milestone are recorded per evaluation.
type MilestoneService struct {
	measurements repository.MeasurementsRepositoryI
	goals        repository.GoalsRepositoryI
	ledger       repository.AchievementsRepositoryI
	evaluator    *progress.Evaluator
	notifier     Notifier
}

func NewMilestoneService(
	measurementsRepo repository.MeasurementsRepositoryI,
	goalsRepo repository.GoalsRepositoryI,
	ledger repository.AchievementsRepositoryI,
	evaluator *progress.Evaluator,
	notifier Notifier,
) *MilestoneService {
	if measurementsRepo == nil || goalsRepo == nil || ledger == nil {
		log.Fatal("provided nil repository to milestone service")
	}
	if notifier == nil {
		log.Fatal("provided nil notifier")
	}
	if evaluator == nil {
		evaluator = progress.NewEvaluator(progress.DefaultPolicy(), nil)
	}
	return &MilestoneService{
		measurements: measurementsRepo,
		goals:        goalsRepo,
		ledger:       ledger,
		evaluator:    evaluator,
		notifier:     notifier,
	}
}

// Evaluate runs one milestone cycle for the user's current goal and full measurement history.
// Missing goal, empty history and undefined progress are reported through Evaluation.Status.
// A failed ledger write returns ErrLedgerWrite and nothing is notified.
func (ms *MilestoneService) Evaluate(ctx context.Context, uid uuid.UUID) (*Evaluation, error) {
	goal, err := ms.goals.GetCurrent(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return &Evaluation{Status: StatusNoGoal}, nil
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	entries, err := ms.measurements.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	return ms.evaluate(ctx, uid, entries, goal)
}

func (ms *MilestoneService) evaluate(ctx context.Context, uid uuid.UUID, entries []entity.WeightMeasurement, goal *entity.Goal) (*Evaluation, error) {
	lg := logger.FromContext(ctx)
	snap, err := ms.evaluator.Snapshot(entries, *goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyHistory) {
			return &Evaluation{Status: StatusEmptyHistory}, nil
		}
		return nil, err
	}
	ev := &Evaluation{
		Status:   StatusEvaluated,
		Progress: snap,
		Crossed:  []entity.MilestoneType{},
		New:      []entity.MilestoneType{},
		Recorded: []entity.MilestoneAchievement{},
	}
	if !snap.Defined {
		ev.Status = StatusUndefinedProgress
		lg.Debug("milestone evaluation skipped: undefined progress",
			slog.Float64("start", snap.StartWeight),
			slog.Float64("goal", snap.GoalWeight),
		)
		return ev, nil
	}
	ev.Crossed = progress.CrossedMilestones(snap.Percentage)

	// overshooting the goal is completion, not approaching
	approaching := false
	if snap.Percentage < 100 {
		approaching, err = ms.evaluator.IsApproachingGoal(snap.CurrentWeight, snap.GoalWeight, snap.Unit)
		if err != nil {
			ev.ApproachingSkipped = true
			lg.Warn("approaching check skipped", slog.String("unit", string(snap.Unit)), slog.String("error", err.Error()))
		}
	}

	tolerance := ms.evaluator.Policy().GoalWeightTolerance
	err = ms.ledger.WithUserLock(ctx, uid, func(ctx context.Context, ledger repository.AchievementsRepositoryI) error {
		existing, err := ledger.GetByGoalWeight(ctx, uid, snap.GoalWeight, snap.Unit, tolerance)
		if err != nil {
			return err
		}
		fresh := ms.evaluator.NewMilestones(ev.Crossed, existing, snap.GoalWeight)
		fresh = ms.evaluator.Outranking(fresh, existing, snap.GoalWeight)
		recorded := make([]entity.MilestoneAchievement, 0, 2)
		if highest, ok := progress.HighestMilestone(fresh); ok {
			a := newAchievement(uid, highest, snap)
			if err := ledger.Create(ctx, &a); err != nil {
				return err
			}
			recorded = append(recorded, a)
		}
		if approaching {
			prev, err := ledger.GetByTypeAndGoalWeight(ctx, uid, entity.MilestoneApproaching, snap.GoalWeight, snap.Unit, tolerance)
			if err != nil {
				return err
			}
			if prev == nil {
				a := newAchievement(uid, entity.MilestoneApproaching, snap)
				if err := ledger.Create(ctx, &a); err != nil {
					return err
				}
				recorded = append(recorded, a)
			}
		}
		ev.New = fresh
		ev.Recorded = recorded
		return nil
	})
	if err != nil {
		lg.Error("ledger write failed", slog.String("error", err.Error()))
		return nil, errors.Join(errorvalues.ErrLedgerWrite, err)
	}
	ms.dispatch(ctx, ev.Recorded)
	return ev, nil
}

// dispatch hands committed achievements to the notifier. A record is marked notified only after
// the notifier accepted it, so undelivered records stay visible in the ledger.
func (ms *MilestoneService) dispatch(ctx context.Context, recorded []entity.MilestoneAchievement) {
	lg := logger.FromContext(ctx)
	for i := range recorded {
		a := &recorded[i]
		if err := ms.notifier.Notify(ctx, *a); err != nil {
			lg.Warn("milestone notification failed",
				slog.String("milestone", string(a.Type)),
				slog.String("achievement_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := ms.ledger.MarkNotified(ctx, a.ID); err != nil {
			lg.Error("marking achievement notified failed",
				slog.String("achievement_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		a.Notified = true
	}
}

func newAchievement(uid uuid.UUID, t entity.MilestoneType, snap *progress.Snapshot) entity.MilestoneAchievement {
	return entity.MilestoneAchievement{
		UserID:              uid,
		Type:                t,
		WeightAtAchievement: snap.CurrentWeight,
		GoalWeight:          snap.GoalWeight,
		StartWeight:         snap.StartWeight,
		ProgressPercentage:  snap.Percentage,
		Unit:                snap.Unit,
	}
}
