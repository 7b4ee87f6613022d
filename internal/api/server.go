package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/weightgoal/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	measurementService service.MeasurementServiceI
	goalService        service.GoalServiceI
	progressService    service.ProgressServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	MeasurementService service.MeasurementServiceI
	GoalService        service.GoalServiceI
	ProgressService    service.ProgressServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		measurementService: servicesOptions.MeasurementService,
		goalService:        servicesOptions.GoalService,
		progressService:    servicesOptions.ProgressService,
		jwtService:         servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RequestLoggingMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Put("/users/me/unit", s.SetPreferredUnit)
			r.Delete("/users/me", s.DeleteAccount)

			r.Post("/measurements", s.AddMeasurement)
			r.Get("/measurements", s.GetMeasurements)
			r.Delete("/measurements/{id}", s.DeleteMeasurement)

			r.Put("/goal", s.SetGoal)
			r.Get("/goal", s.GetGoal)

			r.Get("/progress", s.GetProgress)
			r.Get("/progress/trend", s.GetTrend)

			r.Get("/achievements", s.GetAchievements)
			r.Get("/achievements/latest", s.GetLatestAchievement)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}
