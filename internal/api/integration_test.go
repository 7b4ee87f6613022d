package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/limbo/weightgoal/internal/api"
	"github.com/limbo/weightgoal/internal/notifier"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/repository"
	"github.com/limbo/weightgoal/internal/service"
	"github.com/limbo/weightgoal/pkg/entity"
	jwtservice "github.com/limbo/weightgoal/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) repository.PgConnection {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("weightgoal"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	pool := repository.NewPool(&testPGConfig{connStr: connStr})
	t.Cleanup(pool.Close)
	if err = repository.RunMigrations(context.Background(), pool); err != nil {
		t.Fatal(err)
	}
	return pool
}

func newIntegrationServer(conn repository.PgConnection) *api.Server {
	users := repository.NewUsersRepoWithConn(conn)
	measurements := repository.NewMeasurementsRepoWithConn(conn)
	goals := repository.NewGoalsRepoWithConn(conn)
	ledger := repository.NewAchievementsRepoWithConn(conn)
	evaluator := progress.NewEvaluator(progress.DefaultPolicy(), nil)
	milestones := service.NewMilestoneService(measurements, goals, ledger, evaluator, notifier.New(nil))
	return api.New(&api.ServicesList{
		UserService:        service.NewUserService(users),
		MeasurementService: service.NewMeasurementService(measurements, milestones),
		GoalService:        service.NewGoalService(goals, milestones, evaluator),
		ProgressService: service.NewProgressService(service.ProgressRepos{
			Users:        users,
			Measurements: measurements,
			Goals:        goals,
			Ledger:       ledger,
		}, evaluator, progress.DefaultTrendAlpha),
		JwtService: jwtservice.New(secret, time.Hour),
	})
}

func TestHandlersIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	serv := newIntegrationServer(setupTestDB(t))
	send := func(method, path, tok string, body []byte) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		serv.ServeHTTP(rr, req)
		return rr
	}
	credentials := mustMarshal(t, api.RegisterRequest{Name: username, Password: password, PreferredUnit: entity.Pounds})

	rr := send(http.MethodPost, "/api/v1/auth/register", "", credentials)
	require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	rr = send(http.MethodPost, "/api/v1/auth/register", "", credentials)
	require.Equal(t, http.StatusConflict, rr.Result().StatusCode)

	rr = send(http.MethodPost, "/api/v1/auth/login", "", credentials)
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	tok, ok := decode(t, rr)["token"].(string)
	require.True(t, ok)

	t.Run("measurement without goal", func(t *testing.T) {
		rr := send(http.MethodPost, "/api/v1/measurements", tok, mustMarshal(t, api.AddMeasurementRequest{Weight: 205, Unit: entity.Pounds}))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		ev := decode(t, rr)["evaluation"].(map[string]any)
		assert.Equal(t, "no_goal", ev["status"])
	})
	t.Run("goal then progress", func(t *testing.T) {
		rr := send(http.MethodPut, "/api/v1/goal", tok, mustMarshal(t, api.SetGoalRequest{TargetWeight: 160, Unit: entity.Pounds}))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, false, decode(t, rr)["significant"])

		// entries after the goal anchor the start weight
		first := time.Now().Add(time.Minute)
		second := time.Now().Add(2 * time.Minute)
		rr = send(http.MethodPost, "/api/v1/measurements", tok, mustMarshal(t, api.AddMeasurementRequest{Weight: 200, Unit: entity.Pounds, MeasuredAt: &first}))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		rr = send(http.MethodPost, "/api/v1/measurements", tok, mustMarshal(t, api.AddMeasurementRequest{Weight: 180, Unit: entity.Pounds, MeasuredAt: &second}))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		ev := decode(t, rr)["evaluation"].(map[string]any)
		assert.Equal(t, "evaluated", ev["status"])
		recorded := ev["recorded"].([]any)
		require.Len(t, recorded, 1)
		assert.Equal(t, "half", recorded[0].(map[string]any)["type"])

		rr = send(http.MethodGet, "/api/v1/progress", tok, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		report := decode(t, rr)
		snap := report["progress"].(map[string]any)
		assert.Equal(t, "lb", snap["unit"])
		assert.Equal(t, float64(50), snap["percentage"])
		latest := report["latest_achievement"].(map[string]any)
		assert.Equal(t, "half", latest["type"])
		assert.Equal(t, true, latest["notified"])
	})
	t.Run("same weight again records nothing", func(t *testing.T) {
		at := time.Now().Add(3 * time.Minute)
		rr := send(http.MethodPost, "/api/v1/measurements", tok, mustMarshal(t, api.AddMeasurementRequest{Weight: 180, Unit: entity.Pounds, MeasuredAt: &at}))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		ev := decode(t, rr)["evaluation"].(map[string]any)
		assert.Empty(t, ev["recorded"])

		rr = send(http.MethodGet, "/api/v1/achievements", tok, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Len(t, decode(t, rr)["achievements"], 1)
	})
	t.Run("trend in kilograms", func(t *testing.T) {
		rr := send(http.MethodGet, "/api/v1/progress/trend?unit=kg&alpha=1", tok, nil)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		points := decode(t, rr)["points"].([]any)
		require.Len(t, points, 4)
		last := points[3].(map[string]any)
		assert.InDelta(t, 180*0.45359237, last["trend"].(float64), 1e-9)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := send(http.MethodGet, "/api/v1/progress", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}
