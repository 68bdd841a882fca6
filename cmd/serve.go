package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	checkSlotHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_business_hours"
	getCalendarHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_calendar"
	getScheduleHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_appointments"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_business_hours"
	upsertScheduleHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/upsert_schedule"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	appointmentsService "github.com/m04kA/SMC-SalonBookingService/internal/service/appointments"
	schedulesService "github.com/m04kA/SMC-SalonBookingService/internal/service/schedules"
	createAppointmentUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_calendar"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	a, err := newApp(configPath, true)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, log := a.cfg, a.log
	log.Info("Starting SMC-SalonBookingService...")

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(a.appointmentRepo, a.catalogRepo, a.txManager, log)
	schedulesSvc := schedulesService.NewService(a.scheduleRepo, a.catalogRepo, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		a.catalogRepo,
		a.constraints,
		a.metrics,
		cfg.Availability.DefaultServiceDuration,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		a.catalogRepo,
		a.constraints,
		a.metrics,
		cfg.Availability.DefaultServiceDuration,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		a.appointmentRepo,
		a.catalogRepo,
		a.catalogRepo,
		a.constraints,
		a.txManager,
		cfg.Availability.DefaultServiceDuration,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(a.businessHours, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(a.businessHours, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	upsertSchedule := upsertScheduleHandler.NewHandler(schedulesSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Свободное время ---
	api.HandleFunc("/salons/{salonId}/stylists/{stylistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/stylists/{stylistId}/available-slots/check",
		checkSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	api.HandleFunc("/salons/{salonId}/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/stylists/{stylistId}/schedules/{date}",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Управление салоном (для сотрудников) ---
	protected.HandleFunc("/salons/{salonId}/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/stylists/{stylistId}/schedules/{date}",
		upsertSchedule.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
