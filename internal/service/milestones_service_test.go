package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/internal/repository/mocks"
	"github.com/limbo/weightgoal/internal/service"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu   sync.Mutex
	err  error
	sent []entity.MilestoneAchievement
}

func (n *fakeNotifier) Notify(_ context.Context, a entity.MilestoneAchievement) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, a)
	return nil
}

type milestoneFixture struct {
	measurements *mocks.MockMeasurementsRepositoryI
	goals        *mocks.MockGoalsRepositoryI
	ledger       *mocks.MockAchievementsRepositoryI
	notifier     *fakeNotifier
	service      *service.MilestoneService
}

func newMilestoneFixture(t *testing.T, evaluator *progress.Evaluator) *milestoneFixture {
	ctrl := gomock.NewController(t)
	f := &milestoneFixture{
		measurements: mocks.NewMockMeasurementsRepositoryI(ctrl),
		goals:        mocks.NewMockGoalsRepositoryI(ctrl),
		ledger:       mocks.NewMockAchievementsRepositoryI(ctrl),
		notifier:     &fakeNotifier{},
	}
	f.service = service.NewMilestoneService(f.measurements, f.goals, f.ledger, evaluator, f.notifier)
	return f
}

// expectLock runs the callback against the same mock ledger, like a tx-bound repository would.
func (f *milestoneFixture) expectLock(uid uuid.UUID, err error) {
	f.ledger.EXPECT().WithUserLock(gomock.Any(), uid, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, fn func(context.Context, repository.AchievementsRepositoryI) error) error {
			if err := fn(ctx, f.ledger); err != nil {
				return err
			}
			return err
		})
}

func (f *milestoneFixture) expectCreate(t entity.MilestoneType) {
	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *entity.MilestoneAchievement) error {
			if a.Type != t {
				return errors.New("unexpected milestone " + string(a.Type))
			}
			a.ID = uuid.New()
			a.AchievedAt = time.Now()
			return nil
		})
}

func history(uid uuid.UUID, unit entity.WeightUnit, weights ...float64) []entity.WeightMeasurement {
	start := time.Now().Add(-time.Duration(len(weights)) * 24 * time.Hour)
	entries := make([]entity.WeightMeasurement, 0, len(weights))
	for i, w := range weights {
		at := start.Add(time.Duration(i) * 24 * time.Hour)
		entries = append(entries, entity.WeightMeasurement{
			ID:         uuid.New(),
			UserID:     uid,
			Weight:     w,
			Unit:       unit,
			MeasuredAt: at,
			CreatedAt:  at,
		})
	}
	return entries
}

func goal(uid uuid.UUID, target float64, unit entity.WeightUnit) *entity.Goal {
	return &entity.Goal{
		ID:           uuid.New(),
		UserID:       uid,
		TargetWeight: target,
		Unit:         unit,
		SetAt:        time.Now().Add(-365 * 24 * time.Hour),
	}
}

func TestEvaluateNoOps(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	t.Run("no goal", func(t *testing.T) {
		f := newMilestoneFixture(t, nil)
		f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(nil, errorvalues.ErrGoalNotFound)
		ev, err := f.service.Evaluate(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, service.StatusNoGoal, ev.Status)
	})
	t.Run("empty history", func(t *testing.T) {
		f := newMilestoneFixture(t, nil)
		f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
		f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return([]entity.WeightMeasurement{}, nil)
		ev, err := f.service.Evaluate(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, service.StatusEmptyHistory, ev.Status)
		assert.Empty(t, ev.Recorded)
	})
	t.Run("undefined progress", func(t *testing.T) {
		f := newMilestoneFixture(t, nil)
		f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
		f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 160.05, 150), nil)
		ev, err := f.service.Evaluate(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, service.StatusUndefinedProgress, ev.Status)
		require.NotNil(t, ev.Progress)
		assert.False(t, ev.Progress.Defined)
		assert.Empty(t, f.notifier.sent)
	})
	t.Run("repository error", func(t *testing.T) {
		f := newMilestoneFixture(t, nil)
		f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := f.service.Evaluate(ctx, uid)
		assert.EqualError(t, err, "goals repository error: db error")
	})
}

func TestEvaluateRecordsHighestMilestone(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return([]entity.MilestoneAchievement{}, nil)
	f.expectCreate(entity.MilestoneHalf)
	f.ledger.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(nil)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, service.StatusEvaluated, ev.Status)
	assert.Equal(t, 50.0, ev.Progress.Percentage)
	assert.Equal(t, []entity.MilestoneType{entity.MilestoneQuarter, entity.MilestoneHalf}, ev.Crossed)
	assert.Equal(t, []entity.MilestoneType{entity.MilestoneQuarter, entity.MilestoneHalf}, ev.New)
	require.Len(t, ev.Recorded, 1)
	a := ev.Recorded[0]
	assert.Equal(t, entity.MilestoneHalf, a.Type)
	assert.Equal(t, 180.0, a.WeightAtAchievement)
	assert.Equal(t, 200.0, a.StartWeight)
	assert.Equal(t, 160.0, a.GoalWeight)
	assert.Equal(t, entity.Pounds, a.Unit)
	assert.True(t, a.Notified)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, a.ID, f.notifier.sent[0].ID)
}

func TestEvaluateSuppressesDuplicates(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180, 179), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return([]entity.MilestoneAchievement{
		{ID: uuid.New(), UserID: uid, Type: entity.MilestoneHalf, GoalWeight: 160, Unit: entity.Pounds, Notified: true},
	}, nil)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, ev.New)
	assert.Empty(t, ev.Recorded)
	assert.Empty(t, f.notifier.sent)
}

func TestEvaluatePercentageAndApproaching(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180, 164), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return([]entity.MilestoneAchievement{
		{ID: uuid.New(), UserID: uid, Type: entity.MilestoneHalf, GoalWeight: 160, Unit: entity.Pounds},
	}, nil)
	gomock.InOrder(
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.MilestoneAchievement) error {
			a.ID = uuid.New()
			return nil
		}),
		f.ledger.EXPECT().GetByTypeAndGoalWeight(gomock.Any(), uid, entity.MilestoneApproaching, 160.0, entity.Pounds, 0.1).Return(nil, nil),
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entity.MilestoneAchievement) error {
			a.ID = uuid.New()
			return nil
		}),
	)
	f.ledger.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	// quarter was skipped when half fired and stays silent
	assert.Equal(t, []entity.MilestoneType{entity.MilestoneThreeQuarter}, ev.New)
	require.Len(t, ev.Recorded, 2)
	assert.Equal(t, entity.MilestoneThreeQuarter, ev.Recorded[0].Type)
	assert.Equal(t, entity.MilestoneApproaching, ev.Recorded[1].Type)
	assert.Len(t, f.notifier.sent, 2)
}

func TestEvaluateApproachingAlreadyRecorded(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 163), nil)
	f.expectLock(uid, nil)
	existing := []entity.MilestoneAchievement{
		{ID: uuid.New(), Type: entity.MilestoneThreeQuarter, GoalWeight: 160, Unit: entity.Pounds},
		{ID: uuid.New(), Type: entity.MilestoneApproaching, GoalWeight: 160, Unit: entity.Pounds},
	}
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return(existing, nil)
	f.ledger.EXPECT().GetByTypeAndGoalWeight(gomock.Any(), uid, entity.MilestoneApproaching, 160.0, entity.Pounds, 0.1).Return(&existing[1], nil)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, ev.Recorded)
	assert.Empty(t, f.notifier.sent)
}

func TestEvaluateOvershootIsCompletion(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 158), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneComplete)
	f.ledger.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(nil)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	require.Len(t, ev.Recorded, 1)
	assert.Equal(t, entity.MilestoneComplete, ev.Recorded[0].Type)
}

func TestEvaluateLedgerWriteFailure(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return(nil, nil)
	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("creating achievement error: db error"))

	ev, err := f.service.Evaluate(ctx, uid)
	assert.Nil(t, ev)
	assert.ErrorIs(t, err, errorvalues.ErrLedgerWrite)
	assert.Empty(t, f.notifier.sent)
}

func TestEvaluateCommitFailure(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180), nil)
	f.expectLock(uid, errors.New("committing ledger transaction error: db error"))
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneHalf)

	_, err := f.service.Evaluate(ctx, uid)
	assert.ErrorIs(t, err, errorvalues.ErrLedgerWrite)
	assert.Empty(t, f.notifier.sent)
}

func TestEvaluateNotifierFailureLeavesRecordUndelivered(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.notifier.err = errors.New("push scheduling failed")
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 160, entity.Pounds), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Pounds, 200, 180), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 160.0, entity.Pounds, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneHalf)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	require.Len(t, ev.Recorded, 1)
	assert.False(t, ev.Recorded[0].Notified)
}

func TestEvaluateInvalidThresholdSkipsApproachingOnly(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	broken := units.NewConverterWithFactors(map[entity.WeightUnit]float64{
		entity.Kilograms: 1,
		entity.Pounds:    -1,
	})
	f := newMilestoneFixture(t, progress.NewEvaluator(progress.DefaultPolicy(), broken))
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 70, entity.Kilograms), nil)
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(history(uid, entity.Kilograms, 80, 72), nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 70.0, entity.Kilograms, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneThreeQuarter)
	f.ledger.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(nil)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	assert.True(t, ev.ApproachingSkipped)
	require.Len(t, ev.Recorded, 1)
	assert.Equal(t, entity.MilestoneThreeQuarter, ev.Recorded[0].Type)
}

func TestEvaluateConvertsToGoalUnit(t *testing.T) {
	t.Parallel()
	uid := uuid.New()
	ctx := context.Background()
	f := newMilestoneFixture(t, nil)
	f.goals.EXPECT().GetCurrent(gomock.Any(), uid).Return(goal(uid, 70, entity.Kilograms), nil)
	entries := history(uid, entity.Kilograms, 80)
	// 72 kg entered in pounds
	entries = append(entries, entity.WeightMeasurement{
		ID:         uuid.New(),
		UserID:     uid,
		Weight:     72 / 0.45359237,
		Unit:       entity.Pounds,
		MeasuredAt: time.Now(),
		CreatedAt:  time.Now(),
	})
	f.measurements.EXPECT().GetAllByUserID(gomock.Any(), uid).Return(entries, nil)
	f.expectLock(uid, nil)
	f.ledger.EXPECT().GetByGoalWeight(gomock.Any(), uid, 70.0, entity.Kilograms, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneThreeQuarter)
	// 2 kg away, inside the 2.5 kg threshold
	f.ledger.EXPECT().GetByTypeAndGoalWeight(gomock.Any(), uid, entity.MilestoneApproaching, 70.0, entity.Kilograms, 0.1).Return(nil, nil)
	f.expectCreate(entity.MilestoneApproaching)
	f.ledger.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ev, err := f.service.Evaluate(ctx, uid)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, ev.Progress.Percentage, 1e-9)
	assert.InDelta(t, 72.0, ev.Progress.CurrentWeight, 1e-9)
	assert.Len(t, ev.Recorded, 2)
}
