package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-demand-ops/internal/auth"
	"github.com/ukydev/fleet-demand-ops/internal/chat"
	"github.com/ukydev/fleet-demand-ops/internal/engine"
	"github.com/ukydev/fleet-demand-ops/internal/events"
	"github.com/ukydev/fleet-demand-ops/internal/handlers"
	"github.com/ukydev/fleet-demand-ops/internal/middleware"
	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	st := store.Seed()
	log.WithFields(logrus.Fields{
		"users":    len(st.Users()),
		"vehicles": len(st.Vehicles()),
		"demands":  len(st.Demands()),
	}).Info("Seeded in-memory store")

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	topicPrefix := os.Getenv("MQTT_TOPIC_PREFIX")
	if topicPrefix == "" {
		topicPrefix = "demand-ops"
	}
	publisher, err := events.NewPublisher(os.Getenv("MQTT_BROKER"), topicPrefix, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect event publisher")
	}
	defer publisher.Close()

	rec := recorder.New(st, publisher, log)
	eng := engine.New(st, rec, log)
	chatService := chat.NewService(st, rec, log)

	authHandler := handlers.NewAuthHandler(authService, st)
	userHandler := handlers.NewUserHandler(authService, st)
	demandHandler := handlers.NewDemandHandler(eng, st)
	vehicleHandler := handlers.NewVehicleHandler(st)
	chatHandler := handlers.NewChatHandler(chatService, st)
	notificationHandler := handlers.NewNotificationHandler(rec, st)
	systemHandler := handlers.NewSystemHandler(authService, st)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", systemHandler.Health)

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			authHandler.GetProfile(w, r)
		case http.MethodPut:
			authHandler.UpdateProfile(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/auth/password", authHandler.ChangePassword)

	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userHandler.ListUsers(w, r)
		case http.MethodPost:
			userHandler.CreateUser(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/demands", demandHandler.ListDemands)
	mux.HandleFunc("/api/demands/history", demandHandler.History)
	mux.HandleFunc("/api/demands/create", demandHandler.CreateDemand)
	mux.HandleFunc("/api/demands/lock", demandHandler.LockDemand)
	mux.HandleFunc("/api/demands/save", demandHandler.SaveDemand)
	mux.HandleFunc("/api/demands/cancel", demandHandler.CancelDemandEdit)
	mux.HandleFunc("/api/demands/handover/initiate", demandHandler.InitiateHandover)
	mux.HandleFunc("/api/demands/handover/confirm", demandHandler.ConfirmHandover)
	mux.HandleFunc("/api/demands/complete/initiate", demandHandler.InitiateCompletion)
	mux.HandleFunc("/api/demands/complete/confirm", demandHandler.ConfirmCompletion)
	mux.HandleFunc("/api/demands/quickedit", demandHandler.QuickEdit)
	mux.HandleFunc("/api/demands/assign", demandHandler.AssignDemand)
	mux.HandleFunc("/api/demands/audit", demandHandler.DemandAudit)

	mux.HandleFunc("/api/vehicles", vehicleHandler.ListVehicles)
	mux.HandleFunc("/api/vehicles/add", vehicleHandler.AddVehicle)
	mux.HandleFunc("/api/vehicles/remove", vehicleHandler.RemoveVehicle)
	mux.HandleFunc("/api/vehicles/status", vehicleHandler.SetVehicleStatus)

	mux.HandleFunc("/api/chat/messages", chatHandler.Messages)
	mux.HandleFunc("/api/chat/send", chatHandler.Send)

	mux.HandleFunc("/api/notifications", notificationHandler.List)
	mux.HandleFunc("/api/notifications/open", notificationHandler.OpenPanel)

	mux.HandleFunc("/api/summary", systemHandler.Summary)
	mux.HandleFunc("/api/home", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			systemHandler.HomeContent(w, r)
		case http.MethodPut:
			systemHandler.UpdateHomeContent(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/sector/switch", systemHandler.SwitchSector)
	mux.HandleFunc("/api/snapshot", systemHandler.Snapshot)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	handler := rateLimiter.RateLimit(300, 60)(authMiddleware.Authenticate(mux))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", port).Info("Demand ops server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
