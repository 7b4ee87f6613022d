package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/pkg/entity"
)

type MeasurementsRepository struct {
	conn PgConnection
}

func NewMeasurementsRepoWithConn(conn PgConnection) *MeasurementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for measurementsRepo: " + err.Error())
	}
	return &MeasurementsRepository{
		conn: conn,
	}
}

func (mr *MeasurementsRepository) Create(ctx context.Context, m *entity.WeightMeasurement) error {
	row := mr.conn.QueryRow(ctx, `INSERT INTO weight_measurements (user_id, weight, unit, measured_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		m.UserID,
		m.Weight,
		m.Unit,
		m.MeasuredAt,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating measurement error: " + err.Error())
	}
	return nil
}

func (mr *MeasurementsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeightMeasurement, error) {
	m := entity.WeightMeasurement{ID: id}
	row := mr.conn.QueryRow(ctx, `SELECT user_id, weight, unit, measured_at, created_at FROM weight_measurements WHERE id = $1;`, id)
	if err := row.Scan(&m.UserID, &m.Weight, &m.Unit, &m.MeasuredAt, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMeasurementNotFound
		}
		return nil, errors.New("getting measurement by id error: " + err.Error())
	}
	return &m, nil
}

func (mr *MeasurementsRepository) GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]entity.WeightMeasurement, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, weight, unit, measured_at, created_at
		FROM weight_measurements WHERE user_id = $1 ORDER BY measured_at, created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting measurements by uid error: " + err.Error())
	}
	return scanMeasurements(rows)
}

func (mr *MeasurementsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.WeightMeasurement, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, weight, unit, measured_at, created_at
		FROM weight_measurements WHERE user_id = $1 ORDER BY measured_at DESC, created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing measurements error: " + err.Error())
	}
	return scanMeasurements(rows)
}

func (mr *MeasurementsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM weight_measurements WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting measurement error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMeasurementNotFound
	}
	return nil
}

func scanMeasurements(rows pgx.Rows) ([]entity.WeightMeasurement, error) {
	defer rows.Close()
	result := make([]entity.WeightMeasurement, 0)
	for rows.Next() {
		m := entity.WeightMeasurement{}
		err := rows.Scan(&m.ID, &m.UserID, &m.Weight, &m.Unit, &m.MeasuredAt, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("measurement row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected measurement rows error: " + err.Error())
	}
	return result, nil
}
