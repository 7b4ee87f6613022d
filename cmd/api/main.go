package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/weightgoal/internal/api"
	"github.com/limbo/weightgoal/internal/notifier"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/internal/service"
	"github.com/limbo/weightgoal/pkg/cleanup"
	"github.com/limbo/weightgoal/pkg/config"
	jwtservice "github.com/limbo/weightgoal/pkg/jwt_service"
	"github.com/limbo/weightgoal/pkg/logger"
	"github.com/limbo/weightgoal/pkg/units"
)

func init() {
	service.InitValidator()
}

func policyFromConfig(cfg *config.Config) progress.Policy {
	policy := progress.DefaultPolicy()
	policy.StartGoalEpsilon = cfg.GetFloat("MILESTONE_START_EPSILON", policy.StartGoalEpsilon)
	policy.GoalWeightTolerance = cfg.GetFloat("MILESTONE_GOAL_TOLERANCE", policy.GoalWeightTolerance)
	policy.CompletionTolerance = cfg.GetFloat("MILESTONE_COMPLETION_TOLERANCE", policy.CompletionTolerance)
	policy.GoalChangeRatio = cfg.GetFloat("MILESTONE_GOAL_CHANGE_RATIO", policy.GoalChangeRatio)
	policy.ApproachingThreshold = cfg.GetFloat("MILESTONE_APPROACHING_LB", policy.ApproachingThreshold)
	return policy
}

func main() {
	cfg := config.New()
	lg := logger.Init(cfg.IsDevelopment(), cfg.GetString("SENTRY_DSN"))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	pool := repository.NewPool(&dbCfg)
	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err := repository.RunMigrations(migrateCtx, pool)
	cancel()
	if err != nil {
		cleanup.CleanUp()
		log.Fatal(err)
	}

	users := repository.NewUsersRepoWithConn(pool)
	measurements := repository.NewMeasurementsRepoWithConn(pool)
	goals := repository.NewGoalsRepoWithConn(pool)
	ledger := repository.NewAchievementsRepoWithConn(pool)

	evaluator := progress.NewEvaluator(policyFromConfig(cfg), units.NewConverter())
	milestones := service.NewMilestoneService(measurements, goals, ledger, evaluator, notifier.New(lg))

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(users),
		MeasurementService: service.NewMeasurementService(measurements, milestones),
		GoalService:        service.NewGoalService(goals, milestones, evaluator),
		ProgressService: service.NewProgressService(service.ProgressRepos{
			Users:        users,
			Measurements: measurements,
			Goals:        goals,
			Ledger:       ledger,
		}, evaluator, cfg.GetFloat("TREND_ALPHA", progress.DefaultTrendAlpha)),
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		lg.Error("server error", slog.String("error", err.Error()))
	}
}
