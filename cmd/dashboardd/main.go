package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"course-dashboard/internal/clock"
	"course-dashboard/internal/config"
	"course-dashboard/internal/loader"
	"course-dashboard/internal/logging"
	"course-dashboard/internal/recordapi"
	"course-dashboard/internal/server"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("invalid timezone", zap.Error(err))
	}

	src := recordapi.New(cfg.RecordsBaseURL, cfg.RecordsAPIKey, recordapi.AppIDs{
		Instructors:   cfg.AppIDInstructors,
		Participants:  cfg.AppIDParticipants,
		Rooms:         cfg.AppIDRooms,
		Courses:       cfg.AppIDCourses,
		Registrations: cfg.AppIDRegistrations,
	}, cfg.RecordsTimeout).WithMaxAttempts(cfg.RecordsMaxAttempts)

	h := server.NewHandler(loader.New(src, log, cfg.RecordsTimeout), clock.NewRealClock(), loc, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Routes(h, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
