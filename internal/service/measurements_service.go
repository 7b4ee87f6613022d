package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/logger"
)

// allowed clock skew between client and server
const futureSkew = 5 * time.Minute

type MeasurementService struct {
	repo       repository.MeasurementsRepositoryI
	milestones MilestoneServiceI
	now        func() time.Time
}

func NewMeasurementService(measurementsRepo repository.MeasurementsRepositoryI, milestones MilestoneServiceI) *MeasurementService {
	if measurementsRepo == nil {
		log.Fatal("provided nil measurementsRepo")
	}
	if milestones == nil {
		log.Fatal("provided nil milestone service")
	}
	InitValidator()
	return &MeasurementService{
		repo:       measurementsRepo,
		milestones: milestones,
		now:        time.Now,
	}
}

// AddMeasurement saves the entry and evaluates milestones on the updated history.
// When evaluation fails the saved measurement is still returned together with the error.
func (ms *MeasurementService) AddMeasurement(ctx context.Context, uid uuid.UUID, req AddMeasurementRequest) (*MeasurementResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := ms.now()
	measuredAt := req.MeasuredAt
	if measuredAt.IsZero() {
		measuredAt = now
	}
	if measuredAt.After(now.Add(futureSkew)) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("measured_at is in the future"))
	}
	m := &entity.WeightMeasurement{
		UserID:     uid,
		Weight:     req.Weight,
		Unit:       req.Unit,
		MeasuredAt: measuredAt,
	}
	if err := ms.repo.Create(ctx, m); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	logger.FromContext(ctx).Info("measurement saved", slog.String("measurement_id", m.ID.String()))
	result := &MeasurementResult{Measurement: m}
	ev, err := ms.milestones.Evaluate(ctx, uid)
	if err != nil {
		return result, err
	}
	result.Evaluation = ev
	return result, nil
}

func (ms *MeasurementService) ListMeasurements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.WeightMeasurement, error) {
	list, err := ms.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("measurements repository error: " + err.Error())
	}
	return list, nil
}

// DeleteMeasurement removes an entry of the user. Recorded achievements are kept.
func (ms *MeasurementService) DeleteMeasurement(ctx context.Context, id, uid uuid.UUID) error {
	m, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMeasurementNotFound) {
			return err
		}
		return errors.New("measurements repository error: " + err.Error())
	}
	if m.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ms.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMeasurementNotFound) {
			return err
		}
		return errors.New("measurements repository error: " + err.Error())
	}
	return nil
}
