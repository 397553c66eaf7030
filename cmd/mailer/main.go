package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	contacthandler "github.com/ayubkhn/contact-mailer/internal/api/handlers/contact"
	mailhandler "github.com/ayubkhn/contact-mailer/internal/api/handlers/mail"
	"github.com/ayubkhn/contact-mailer/internal/api/router"
	"github.com/ayubkhn/contact-mailer/internal/api/server"
	"github.com/ayubkhn/contact-mailer/internal/config"
	contactrepo "github.com/ayubkhn/contact-mailer/internal/repository/contact"
	"github.com/ayubkhn/contact-mailer/internal/repository/emaillog"
	"github.com/ayubkhn/contact-mailer/internal/repository/schedule"
	"github.com/ayubkhn/contact-mailer/internal/scheduler"
	contactsvc "github.com/ayubkhn/contact-mailer/internal/service/contact"
	"github.com/ayubkhn/contact-mailer/internal/service/delivery"
	"github.com/ayubkhn/contact-mailer/pkg/database"
	"github.com/ayubkhn/contact-mailer/pkg/mailer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	if err := database.ApplyMigrations(cfg.Database.Master.DSN(), cfg.Database.MigrationsPath); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpClient := mailer.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	logRepo := emaillog.NewRepository(db)
	jobRepo := schedule.NewRepository(db)
	cRepo := contactrepo.NewRepository(db)

	pipeline := delivery.NewService(logRepo, jobRepo, smtpClient, rdb, cfg.Server.BaseURL, cfg.Mail.DailyLimit)
	contacts := contactsvc.NewService(cRepo)

	go scheduler.New(pipeline, cfg.Scheduler.PollInterval).Run(ctx, cfg.Retry)

	r := router.New(
		mailhandler.NewHandler(pipeline, val, cfg),
		contacthandler.NewHandler(contacts),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
