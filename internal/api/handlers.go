package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/weightgoal/internal/error_values"
	"github.com/limbo/weightgoal/internal/progress"
	"github.com/limbo/weightgoal/internal/service"
	"github.com/limbo/weightgoal/pkg/entity"
	"github.com/limbo/weightgoal/pkg/httputil"
)

const (
	handlerTimeout = 10 * time.Second
	defaultLimit   = 10
	maxLimit       = 50
)

type RegisterRequest struct {
	Name          string            `json:"name"`
	Password      string            `json:"password"`
	PreferredUnit entity.WeightUnit `json:"unit,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SetUnitRequest struct {
	Unit entity.WeightUnit `json:"unit"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type AddMeasurementRequest struct {
	Weight     float64           `json:"weight"`
	Unit       entity.WeightUnit `json:"unit"`
	MeasuredAt *time.Time        `json:"measured_at,omitempty"`
}

type SetGoalRequest struct {
	TargetWeight float64           `json:"target_weight"`
	Unit         entity.WeightUnit `json:"unit"`
}

// AddMeasurementResponse carries evaluation error when the measurement was saved but the ledger was not updated.
type AddMeasurementResponse struct {
	Measurement     *entity.WeightMeasurement `json:"measurement"`
	Evaluation      *service.Evaluation       `json:"evaluation,omitempty"`
	EvaluationError string                    `json:"evaluation_error,omitempty"`
}

type SetGoalResponse struct {
	Goal            *entity.Goal        `json:"goal"`
	Previous        *entity.Goal        `json:"previous,omitempty"`
	Significant     bool                `json:"significant"`
	Evaluation      *service.Evaluation `json:"evaluation,omitempty"`
	EvaluationError string              `json:"evaluation_error,omitempty"`
}

type GetMeasurementsResponse struct {
	UserID       string                     `json:"uid"`
	Page         int                        `json:"page"`
	Limit        int                        `json:"limit"`
	Measurements []entity.WeightMeasurement `json:"measurements"`
}

type GetAchievementsResponse struct {
	UserID       string                        `json:"uid"`
	Page         int                           `json:"page"`
	Limit        int                           `json:"limit"`
	Achievements []entity.MilestoneAchievement `json:"achievements"`
}

// Unit is empty when the user's preferred unit was used.
type GetTrendResponse struct {
	Unit   entity.WeightUnit     `json:"unit,omitempty"`
	Points []progress.TrendPoint `json:"points"`
}

// writeServiceError maps service sentinels to HTTP statuses. op prefixes log records.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrGoalNotFound):
		logger.Info(op + ": goal is not set")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal is not set", nil)
	case errors.Is(err, errorvalues.ErrEmptyHistory):
		logger.Info(op + ": no measurements")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no measurements recorded", nil)
	case errors.Is(err, errorvalues.ErrMeasurementNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: measurement not found or belongs to another user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "measurement doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrAchievementNotFound):
		logger.Info(op + ": no achievements")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no achievements yet", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:          req.Name,
		Password:      req.Password,
		PreferredUnit: req.PreferredUnit,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) SetPreferredUnit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set unit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetUnitRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set unit error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.userService.SetPreferredUnit(ctx, uid, req.Unit); err != nil {
		writeServiceError(w, logger, "setting unit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("preferred unit changed", slog.String("unit", string(req.Unit)))
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) AddMeasurement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add measurement error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddMeasurementRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("add measurement error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := service.AddMeasurementRequest{
		Weight: req.Weight,
		Unit:   req.Unit,
	}
	if req.MeasuredAt != nil {
		serviceReq.MeasuredAt = *req.MeasuredAt
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.measurementService.AddMeasurement(ctx, uid, serviceReq)
	if err != nil {
		if res != nil && res.Measurement != nil {
			logger.Error("measurement saved, evaluation failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusCreated, AddMeasurementResponse{
				Measurement:     res.Measurement,
				EvaluationError: "milestones were not updated, they will be evaluated on the next entry",
			})
			return
		}
		writeServiceError(w, logger, "adding measurement", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AddMeasurementResponse{
		Measurement: res.Measurement,
		Evaluation:  res.Evaluation,
	})
	logger.Info("measurement added", slog.String("measurement_id", res.Measurement.ID.String()))
}

func (s *Server) GetMeasurements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get measurements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit, offset := httputil.Pagination(r, defaultLimit, maxLimit)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	list, err := s.measurementService.ListMeasurements(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "getting measurements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMeasurementsResponse{
		UserID:       uid.String(),
		Page:         page,
		Limit:        limit,
		Measurements: list,
	})
	logger.Info("measurements provided")
}

func (s *Server) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("measurement deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("measurement deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid measurement id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.measurementService.DeleteMeasurement(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "measurement deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("measurement deleted", slog.String("measurement_id", id.String()))
}

func (s *Server) SetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetGoalRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	change, err := s.goalService.SetGoal(ctx, uid, service.SetGoalRequest{
		TargetWeight: req.TargetWeight,
		Unit:         req.Unit,
	})
	if err != nil {
		if change != nil && change.Goal != nil {
			logger.Error("goal saved, evaluation failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusOK, SetGoalResponse{
				Goal:            change.Goal,
				Previous:        change.Previous,
				Significant:     change.Significant,
				EvaluationError: "milestones were not updated, they will be evaluated on the next entry",
			})
			return
		}
		writeServiceError(w, logger, "setting goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SetGoalResponse{
		Goal:        change.Goal,
		Previous:    change.Previous,
		Significant: change.Significant,
		Evaluation:  change.Evaluation,
	})
	logger.Info("goal set", slog.Bool("significant", change.Significant))
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalService.GetGoal(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	report, err := s.progressService.GetProgress(ctx, uid, entity.WeightUnit(r.URL.Query().Get("unit")))
	if err != nil {
		writeServiceError(w, logger, "getting progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get trend error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var alpha float64
	if raw := r.URL.Query().Get("alpha"); raw != "" {
		alpha, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Error("get trend error: invalid alpha")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "alpha must be a number", nil)
			return
		}
	}
	unit := entity.WeightUnit(r.URL.Query().Get("unit"))
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	points, err := s.progressService.GetTrend(ctx, uid, unit, alpha)
	if err != nil {
		writeServiceError(w, logger, "getting trend", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTrendResponse{
		Unit:   unit,
		Points: points,
	})
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit, offset := httputil.Pagination(r, defaultLimit, maxLimit)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	list, err := s.progressService.ListAchievements(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "getting achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAchievementsResponse{
		UserID:       uid.String(),
		Page:         page,
		Limit:        limit,
		Achievements: list,
	})
}

func (s *Server) GetLatestAchievement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get latest achievement error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	latest, err := s.progressService.LatestAchievement(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting latest achievement", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, latest)
}
