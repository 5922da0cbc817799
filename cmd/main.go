package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fuel-sense/internal/config"
	domainSession "fuel-sense/internal/domain/session"
	"fuel-sense/internal/events"
	"fuel-sense/internal/fixtures"
	"fuel-sense/internal/infrastructure/database/postgres"
	"fuel-sense/internal/infrastructure/memory"
	"fuel-sense/internal/ingestion"
	"fuel-sense/internal/logger"
	"fuel-sense/internal/routes"
	"fuel-sense/internal/simulator"
	agentUC "fuel-sense/internal/usecase/agent"
	cargoUC "fuel-sense/internal/usecase/cargo"
	dashboardUC "fuel-sense/internal/usecase/dashboard"
	notificationUC "fuel-sense/internal/usecase/notification"
	planUC "fuel-sense/internal/usecase/plan"
	userUC "fuel-sense/internal/usecase/user"
	vesselUC "fuel-sense/internal/usecase/vessel"
	pkgmqtt "fuel-sense/pkg/mqtt"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	// Session snapshots go to Postgres when configured, memory otherwise.
	var sessionRepo domainSession.Repository
	var health func() error
	if cfg.Database.Host != "" {
		db, err := postgres.NewDB(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", zap.Error(err))
			}
		}()
		sessionRepo = postgres.NewSessionRepository(db)
		health = db.Health
		logger.Info("Session persistence enabled", zap.String("host", cfg.Database.Host))
	} else {
		sessionRepo = memory.NewSessionRepository()
		logger.Info("No database configured, sessions are in-memory only")
	}

	cargoRepo := memory.NewCargoRepository()
	planRepo := memory.NewPlanRepository()
	vesselRepo := memory.NewVesselRepository()
	notifRepo := memory.NewNotificationRepository()
	taskRepo := memory.NewTaskRepository()
	userRepo := memory.NewUserRepository()
	runRepo := memory.NewAgentRepository()

	ctx := context.Background()
	if err := fixtures.Seed(ctx, fixtures.Store{
		Cargoes:       cargoRepo,
		Plans:         planRepo,
		Vessels:       vesselRepo,
		Notifications: notifRepo,
		Tasks:         taskRepo,
		Users:         userRepo,
	}); err != nil {
		logger.Fatal("Failed to seed fixtures", zap.Error(err))
	}

	bus := events.NewBus(64)
	defer bus.Close()

	notifService := notificationUC.NewService(notifRepo, bus)
	userService := userUC.NewService(userRepo, cargoRepo, notifRepo, sessionRepo, cfg)
	notifService.SetSessionSaver(userService)
	cargoService := cargoUC.NewService(cargoRepo, planRepo, notifService, bus)
	planService := planUC.NewService(planRepo, notifService, bus)
	vesselService := vesselUC.NewService(vesselRepo, notifService, bus)
	agentService := agentUC.NewService(runRepo, cargoRepo, notifService, bus)
	defer agentService.Stop()
	dashboardService := dashboardUC.NewService(cargoRepo, planRepo, vesselRepo, taskRepo, notifRepo)

	if err := userService.Hydrate(ctx); err != nil {
		logger.Warn("Failed to restore previous session", zap.Error(err))
	}

	if cfg.Simulator.Enabled {
		sim := simulator.New(simulator.Config{
			VoyageInterval: cfg.Simulator.VoyageInterval,
			MarketInterval: cfg.Simulator.MarketInterval,
			EventsInterval: cfg.Simulator.EventsInterval,
		}, vesselRepo, planRepo, notifService, agentService)
		sim.Start()
		defer sim.Stop()
		logger.Info("Simulator started",
			zap.Duration("voyage_interval", cfg.Simulator.VoyageInterval),
			zap.Duration("market_interval", cfg.Simulator.MarketInterval),
			zap.Duration("events_interval", cfg.Simulator.EventsInterval),
		)
	}

	if cfg.MQTT.Enabled {
		clientCfg := &pkgmqtt.Config{
			Broker:               cfg.MQTT.Broker,
			ClientID:             cfg.MQTT.ClientID,
			Username:             cfg.MQTT.Username,
			Password:             cfg.MQTT.Password,
			CleanSession:         true,
			KeepAlive:            cfg.MQTT.KeepAlive,
			ConnectTimeout:       cfg.MQTT.ConnectTimeout,
			AutoReconnect:        true,
			MaxReconnectInterval: 5 * time.Minute,
		}

		ingestClient, err := ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
			ClientConfig:  clientCfg,
			ROBTopic:      cfg.MQTT.ROBTopic,
			PositionTopic: cfg.MQTT.PositionTopic,
			QoS:           byte(cfg.MQTT.QoS),
		}, vesselService)
		if err != nil {
			logger.Fatal("Failed to build MQTT ingestion client", zap.Error(err))
		}
		if err := ingestClient.Start(); err != nil {
			logger.Error("Failed to start MQTT ingestion, continuing without telemetry", zap.Error(err))
		} else {
			defer ingestClient.Stop()

			if cfg.MQTT.AlertTopic != "" {
				alertClientCfg := *clientCfg
				alertClientCfg.ClientID = cfg.MQTT.ClientID + "-alerts"
				alertClient := pkgmqtt.NewClient(&alertClientCfg)
				if err := alertClient.Connect(); err != nil {
					logger.Error("Failed to connect alert publisher", zap.Error(err))
				} else {
					publisher := ingestion.NewAlertPublisher(alertClient, cfg.MQTT.AlertTopic, byte(cfg.MQTT.QoS))
					publisher.Start(bus)
					defer publisher.Stop()
				}
			}
		}
	}

	router := routes.SetupRoutes(cfg, &routes.Deps{
		Users:         userService,
		Cargoes:       cargoService,
		Plans:         planService,
		Vessels:       vesselService,
		Notifications: notifService,
		Agents:        agentService,
		Dashboard:     dashboardService,
		Bus:           bus,
		Health:        health,
	})

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
