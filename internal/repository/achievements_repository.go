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

const achievementColumns = `id, user_id, milestone_type, weight, goal_weight, start_weight, progress, unit, achieved_at, notified`

// AchievementsRepository is the milestone ledger. There is intentionally no Delete.
type AchievementsRepository struct {
	// nil when repository is bound to a transaction
	conn PgConnection
	db   pgQuerier
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
		db:   conn,
	}
}

func (ar *AchievementsRepository) Create(ctx context.Context, a *entity.MilestoneAchievement) error {
	row := ar.db.QueryRow(ctx, `INSERT INTO milestone_achievements (user_id, milestone_type, weight, goal_weight, start_weight, progress, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, achieved_at, notified;`,
		a.UserID,
		a.Type,
		a.WeightAtAchievement,
		a.GoalWeight,
		a.StartWeight,
		a.ProgressPercentage,
		a.Unit,
	)
	if err := row.Scan(&a.ID, &a.AchievedAt, &a.Notified); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAchievementExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating achievement error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) GetByGoalWeight(ctx context.Context, uid uuid.UUID, goalWeight float64, unit entity.WeightUnit, tolerance float64) ([]entity.MilestoneAchievement, error) {
	rows, err := ar.db.Query(ctx, `SELECT `+achievementColumns+` FROM milestone_achievements
		WHERE user_id = $1 AND unit = $2 AND ABS(goal_weight - $3) < $4 ORDER BY achieved_at;`,
		uid, unit, goalWeight, tolerance,
	)
	if err != nil {
		return nil, errors.New("getting achievements by goal error: " + err.Error())
	}
	return scanAchievements(rows)
}

func (ar *AchievementsRepository) GetByTypeAndGoalWeight(ctx context.Context, uid uuid.UUID, t entity.MilestoneType, goalWeight float64, unit entity.WeightUnit, tolerance float64) (*entity.MilestoneAchievement, error) {
	row := ar.db.QueryRow(ctx, `SELECT `+achievementColumns+` FROM milestone_achievements
		WHERE user_id = $1 AND milestone_type = $2 AND unit = $3 AND ABS(goal_weight - $4) < $5 ORDER BY achieved_at LIMIT 1;`,
		uid, t, unit, goalWeight, tolerance,
	)
	var a entity.MilestoneAchievement
	if err := scanAchievement(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting achievement by type error: " + err.Error())
	}
	return &a, nil
}

func (ar *AchievementsRepository) GetMostRecent(ctx context.Context, uid uuid.UUID) (*entity.MilestoneAchievement, error) {
	row := ar.db.QueryRow(ctx, `SELECT `+achievementColumns+` FROM milestone_achievements
		WHERE user_id = $1 ORDER BY achieved_at DESC LIMIT 1;`, uid)
	var a entity.MilestoneAchievement
	if err := scanAchievement(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting most recent achievement error: " + err.Error())
	}
	return &a, nil
}

func (ar *AchievementsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.MilestoneAchievement, error) {
	rows, err := ar.db.Query(ctx, `SELECT `+achievementColumns+` FROM milestone_achievements
		WHERE user_id = $1 ORDER BY achieved_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	return scanAchievements(rows)
}

func (ar *AchievementsRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.db.Exec(ctx, `UPDATE milestone_achievements SET notified = TRUE WHERE id = $1;`, id)
	if err != nil {
		return errors.New("marking achievement notified error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAchievementNotFound
	}
	return nil
}

func (ar *AchievementsRepository) WithUserLock(ctx context.Context, uid uuid.UUID, fn func(ctx context.Context, ledger AchievementsRepositoryI) error) error {
	// already inside a locked transaction
	if ar.conn == nil {
		return fn(ctx, ar)
	}
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting ledger transaction error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, uid.String())
	if err != nil {
		_ = tx.Rollback(ctx)
		return errors.New("locking ledger error: " + err.Error())
	}
	err = fn(ctx, &AchievementsRepository{db: tx})
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing ledger transaction error: " + err.Error())
	}
	return nil
}

func scanAchievement(row pgx.Row, a *entity.MilestoneAchievement) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Type,
		&a.WeightAtAchievement,
		&a.GoalWeight,
		&a.StartWeight,
		&a.ProgressPercentage,
		&a.Unit,
		&a.AchievedAt,
		&a.Notified,
	)
}

func scanAchievements(rows pgx.Rows) ([]entity.MilestoneAchievement, error) {
	defer rows.Close()
	result := make([]entity.MilestoneAchievement, 0)
	for rows.Next() {
		var a entity.MilestoneAchievement
		if err := scanAchievement(rows, &a); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return result, nil
}
