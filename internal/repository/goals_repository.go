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

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, target_weight, unit) VALUES ($1, $2, $3) RETURNING id, set_at;`,
		goal.UserID,
		goal.TargetWeight,
		goal.Unit,
	)
	if err := row.Scan(&goal.ID, &goal.SetAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating goal error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetCurrent(ctx context.Context, uid uuid.UUID) (*entity.Goal, error) {
	goal := entity.Goal{UserID: uid}
	row := gr.conn.QueryRow(ctx, `SELECT id, target_weight, unit, set_at FROM goals WHERE user_id = $1 ORDER BY set_at DESC LIMIT 1;`, uid)
	if err := row.Scan(&goal.ID, &goal.TargetWeight, &goal.Unit, &goal.SetAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting current goal error: " + err.Error())
	}
	return &goal, nil
}
