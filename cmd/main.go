package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/premium-barber/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/premium-barber/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/premium-barber/booking-service/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/premium-barber/booking-service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/premium-barber/booking-service/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/premium-barber/booking-service/internal/api/handlers/list_services"
	updateBookingStatusHandler "github.com/premium-barber/booking-service/internal/api/handlers/update_booking_status"
	"github.com/premium-barber/booking-service/internal/api/middleware"
	"github.com/premium-barber/booking-service/internal/config"
	bookingRepo "github.com/premium-barber/booking-service/internal/infra/storage/booking"
	"github.com/premium-barber/booking-service/internal/integrations/smsgateway"
	"github.com/premium-barber/booking-service/internal/notify"
	bookingsService "github.com/premium-barber/booking-service/internal/service/bookings"
	createBookingUC "github.com/premium-barber/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/premium-barber/booking-service/internal/usecase/get_available_slots"
	validateBookingUC "github.com/premium-barber/booking-service/internal/usecase/validate_booking"
	"github.com/premium-barber/booking-service/pkg/dbmetrics"
	"github.com/premium-barber/booking-service/pkg/logger"
	"github.com/premium-barber/booking-service/pkg/metrics"
	"github.com/premium-barber/booking-service/pkg/simpletxmanager"
	"github.com/premium-barber/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	// Business policy is fixed at startup; a bad catalog or calendar must
	// stop the boot, not surface per request.
	catalog, err := cfg.Business.Catalog()
	if err != nil {
		log.Fatal("Invalid service catalog: %v", err)
	}
	calendar, err := cfg.Business.Calendar()
	if err != nil {
		log.Fatal("Invalid business calendar: %v", err)
	}
	log.Info("Loaded %d services, %d slots per day", len(catalog.Names()), len(calendar.SlotGrid))

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	smsClient := smsgateway.NewClient(
		cfg.SMS.GatewayURL,
		cfg.SMS.Username,
		cfg.SMS.APIKey,
		cfg.SMS.DemoMode,
		cfg.SMS.SMSTimeout(),
		log,
	)
	templates := notify.NewTemplates(cfg.Business.BusinessName())
	if cfg.SMS.DemoMode {
		log.Info("SMS gateway in demo mode, messages are logged only")
	}

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var bookingRepository *bookingRepo.Repository
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)

	validateBookingUseCase := validateBookingUC.NewUseCase(bookingRepository, catalog, calendar, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, catalog, calendar, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		validateBookingUseCase,
		txMgr,
		smsClient,
		templates,
		catalog,
		calendar,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalog, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: slot discovery and the catalog.
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Protected routes require X-User-ID.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Admin routes additionally require the admin role claim.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
