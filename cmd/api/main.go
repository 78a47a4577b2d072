package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/tylersatter13/EventBookingSystem-sub000/internal/adapter/handler"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/adapter/lock"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/adapter/payment"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/adapter/repository/postgres"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/core/services"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/platform/config"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/platform/database"
	"github.com/tylersatter13/EventBookingSystem-sub000/internal/platform/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New()
	if cfg.LogFile != "" {
		fileLog, err := logger.NewWithFile(cfg.LogFile)
		if err != nil {
			log.Fatal("STARTUP", fmt.Sprintf("log file: %v", err))
		}
		log = fileLog
	}
	defer log.Close()

	db, err := database.Connect(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, log)
	if err != nil {
		log.Fatal("STARTUP", err.Error())
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("STARTUP", fmt.Sprintf("redis: %v", err))
	}
	log.Info("STARTUP", "redis connected")

	userRepo := postgres.NewUserRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	pipeline := services.NewRulePipeline(
		services.NewBookingLimitRule(bookingRepo, cfg.MaxActiveBookings),
		services.NewEventAvailabilityRule(nil),
		services.NewProfileCompleteRule(),
	)

	bookingService := services.NewBookingService(
		userRepo, venueRepo, eventRepo, bookingRepo,
		payment.NewSandboxGateway(10000),
		pipeline,
		log,
	).WithReservationLock(lock.NewRedisLock(redisClient), cfg.LockTTL)

	bookingHandler := handler.NewBookingHandler(bookingService)

	mux := http.NewServeMux()
	mux.HandleFunc("/bookings", bookingHandler.CreateBooking)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("STARTUP", "server listening on "+cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("SHUTDOWN", "shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", err.Error())
	}
	log.Info("SHUTDOWN", "server exited")
}
