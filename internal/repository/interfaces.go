package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/weightgoal/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. Returns generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Sets unit used to display weights to the user
	UpdatePreferredUnit(ctx context.Context, uid uuid.UUID, unit entity.WeightUnit) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type MeasurementsRepositoryI interface {
	// Saves measurement, fills ID and CreatedAt
	Create(ctx context.Context, m *entity.WeightMeasurement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WeightMeasurement, error)
	// All measurements of user ordered by measured_at, then created_at
	GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]entity.WeightMeasurement, error)
	// Newest first, paginated
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.WeightMeasurement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Inserts new goal row. Previous goals are kept as history
	Create(ctx context.Context, goal *entity.Goal) error
	// Returns most recently set goal or ErrGoalNotFound
	GetCurrent(ctx context.Context, uid uuid.UUID) (*entity.Goal, error)
}

// AchievementsRepositoryI is the append-only milestone ledger. Records are never deleted.
type AchievementsRepositoryI interface {
	Create(ctx context.Context, a *entity.MilestoneAchievement) error
	// Records for goal weight within tolerance, same unit
	GetByGoalWeight(ctx context.Context, uid uuid.UUID, goalWeight float64, unit entity.WeightUnit, tolerance float64) ([]entity.MilestoneAchievement, error)
	// Returns nil, nil when milestone wasn't achieved for goal
	GetByTypeAndGoalWeight(ctx context.Context, uid uuid.UUID, t entity.MilestoneType, goalWeight float64, unit entity.WeightUnit, tolerance float64) (*entity.MilestoneAchievement, error)
	// Returns nil, nil when ledger is empty
	GetMostRecent(ctx context.Context, uid uuid.UUID) (*entity.MilestoneAchievement, error)
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.MilestoneAchievement, error)
	// The only mutation allowed on a record
	MarkNotified(ctx context.Context, id uuid.UUID) error
	// Runs fn in a transaction holding a per-user lock, so reads and inserts of one evaluation are atomic
	WithUserLock(ctx context.Context, uid uuid.UUID, fn func(ctx context.Context, ledger AchievementsRepositoryI) error) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgQuerier is satisfied by both PgConnection and pgx.Tx
type pgQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
