package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	adminhandler "github.com/courierloop/delivery-notifier/internal/api/handlers/admin"
	deliveryhandler "github.com/courierloop/delivery-notifier/internal/api/handlers/delivery"
	notifhandler "github.com/courierloop/delivery-notifier/internal/api/handlers/notifications"
	smshandler "github.com/courierloop/delivery-notifier/internal/api/handlers/sms"
	"github.com/courierloop/delivery-notifier/internal/api/router"
	"github.com/courierloop/delivery-notifier/internal/api/server"
	"github.com/courierloop/delivery-notifier/internal/config"
	"github.com/courierloop/delivery-notifier/internal/oracle"
	activityrepo "github.com/courierloop/delivery-notifier/internal/repository/activity"
	convrepo "github.com/courierloop/delivery-notifier/internal/repository/conversation"
	notifrepo "github.com/courierloop/delivery-notifier/internal/repository/notification"
	"github.com/courierloop/delivery-notifier/internal/scheduler"
	batchsvc "github.com/courierloop/delivery-notifier/internal/service/batch"
	ingestsvc "github.com/courierloop/delivery-notifier/internal/service/ingest"
	replysvc "github.com/courierloop/delivery-notifier/internal/service/reply"
	reschedulesvc "github.com/courierloop/delivery-notifier/internal/service/reschedule"
	statussvc "github.com/courierloop/delivery-notifier/internal/service/status"
	"github.com/courierloop/delivery-notifier/internal/summary"
	"github.com/courierloop/delivery-notifier/pkg/llm"
	"github.com/courierloop/delivery-notifier/pkg/routeplanner"
	"github.com/courierloop/delivery-notifier/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	policies, err := cfg.Delivery.Policies()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse delivery policies")
	}

	location := cfg.Schedule.Location()

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

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	notifRepo := notifrepo.NewRepository(db)
	convRepo := convrepo.NewRepository(db)
	activityRepo := activityrepo.NewRepository(db)

	smsClient := sms.NewClient(cfg.SMS.APIURL, cfg.SMS.Token, cfg.SMS.From)
	llmClient := llm.NewClient(cfg.LLM.Endpoint, cfg.LLM.Model, cfg.LLM.APIKey)
	plannerClient := routeplanner.NewClient(cfg.RoutePlanner.APIURL, cfg.RoutePlanner.APIKey)

	dateOracle := oracle.NewClient(llmClient, location)
	renderer := summary.NewRenderer(llmClient)

	rescheduleService := reschedulesvc.NewService(
		notifRepo, convRepo, activityRepo, smsClient, dateOracle, plannerClient,
		policies, location, time.Now,
	)

	replyService := replysvc.NewService(
		notifRepo, activityRepo, smsClient, rescheduleService, cfg.Delivery.CountryCode,
	)

	ingestService := ingestsvc.NewService(
		notifRepo, activityRepo, plannerClient,
		policies, cfg.Delivery.Classification, cfg.Delivery.CountryCode, location,
	)

	batchService := batchsvc.NewService(
		notifRepo, activityRepo, smsClient, renderer, rdb,
		cfg.Retry, cfg.Schedule.SendDelay, cfg.Schedule.StaffRecipients, location, time.Now,
	)

	statusService := statussvc.NewService(notifRepo, activityRepo, rdb, cfg.Retry)

	customerDays, err := cfg.Schedule.CustomerSend.WeekdaySet()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse customer trigger weekdays")
	}

	staffDays, err := cfg.Schedule.StaffSummary.WeekdaySet()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse staff trigger weekdays")
	}

	poller := scheduler.NewPoller(
		batchService,
		scheduler.Trigger{
			Name:     "customer-send",
			Hour:     cfg.Schedule.CustomerSend.Hour,
			Minute:   cfg.Schedule.CustomerSend.Minute,
			Weekdays: customerDays,
		},
		scheduler.Trigger{
			Name:     "staff-summary",
			Hour:     cfg.Schedule.StaffSummary.Hour,
			Minute:   cfg.Schedule.StaffSummary.Minute,
			Weekdays: staffDays,
		},
		cfg.Schedule.PollInterval,
		location,
		time.Now,
	)

	go poller.Run(ctx)

	r := router.New(
		deliveryhandler.NewHandler(ingestService),
		smshandler.NewHandler(replyService, validator.New()),
		notifhandler.NewHandler(statusService),
		adminhandler.NewHandler(batchService),
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
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
