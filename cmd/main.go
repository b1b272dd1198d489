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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addMemberHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/add_member"
	cancelBookingHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/create_booking"
	createBusinessHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/create_business"
	createServiceHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/create_service"
	createStaffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/create_staff"
	createTimeOffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/create_time_off"
	deleteTimeOffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/delete_time_off"
	deleteWorkingHoursHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/delete_working_hours"
	getAvailableSlotsHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_business"
	getCustomerHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_customer"
	getServiceHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_service"
	getStaffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/get_staff"
	linkStaffServiceHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/link_staff_service"
	listBookingsHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_bookings"
	listCustomersHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_customers"
	listServicesHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_services"
	listStaffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_staff"
	listStaffServicesHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_staff_services"
	listTimeOffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_time_off"
	listWorkingHoursHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/list_working_hours"
	unlinkStaffServiceHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/unlink_staff_service"
	updateServiceHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/update_service"
	updateStaffHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/update_staff"
	upsertWorkingHoursHandler "github.com/avlebedev/SLB-BookingEngine/internal/api/handlers/upsert_working_hours"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/config"
	bookingRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/booking"
	businessRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/business"
	customerRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/customer"
	serviceRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/service"
	staffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/staff"
	stafflinkRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/stafflink"
	timeoffRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/timeoff"
	workinghoursRepo "github.com/avlebedev/SLB-BookingEngine/internal/infra/storage/workinghours"
	"github.com/avlebedev/SLB-BookingEngine/internal/reaper"
	bookingsService "github.com/avlebedev/SLB-BookingEngine/internal/service/bookings"
	businessService "github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	catalogService "github.com/avlebedev/SLB-BookingEngine/internal/service/catalog"
	customersService "github.com/avlebedev/SLB-BookingEngine/internal/service/customers"
	scheduleService "github.com/avlebedev/SLB-BookingEngine/internal/service/schedule"
	staffService "github.com/avlebedev/SLB-BookingEngine/internal/service/staff"
	createBookingUC "github.com/avlebedev/SLB-BookingEngine/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avlebedev/SLB-BookingEngine/internal/usecase/get_available_slots"
	"github.com/avlebedev/SLB-BookingEngine/pkg/dbmetrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/logger"
	"github.com/avlebedev/SLB-BookingEngine/pkg/metrics"
	"github.com/avlebedev/SLB-BookingEngine/pkg/simpletxmanager"
	"github.com/avlebedev/SLB-BookingEngine/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SLB-BookingEngine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		businessRepository     *businessRepo.Repository
		customerRepository     *customerRepo.Repository
		serviceRepository      *serviceRepo.Repository
		staffRepository        *staffRepo.Repository
		stafflinkRepository    *stafflinkRepo.Repository
		timeoffRepository      *timeoffRepo.Repository
		workinghoursRepository *workinghoursRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		stafflinkRepository = stafflinkRepo.NewRepository(wrappedDB)
		timeoffRepository = timeoffRepo.NewRepository(wrappedDB)
		workinghoursRepository = workinghoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		stafflinkRepository = stafflinkRepo.NewRepository(db)
		timeoffRepository = timeoffRepo.NewRepository(db)
		workinghoursRepository = workinghoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	businessSvc := businessService.NewService(businessRepository, log)
	staffSvc := staffService.NewService(staffRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		stafflinkRepository,
		staffRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		workinghoursRepository,
		timeoffRepository,
		staffRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		businessRepository,
		staffRepository,
		serviceRepository,
		stafflinkRepository,
		workinghoursRepository,
		timeoffRepository,
		customerRepository,
		bookingRepository,
		txMgr,
		createBookingUC.Config{
			HoldTTLMinutes:  cfg.Booking.HoldTTLMinutes,
			HorizonDays:     cfg.Booking.HorizonDays,
			LeadTimeMinutes: cfg.Booking.LeadTimeMinutes,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		staffRepository,
		serviceRepository,
		stafflinkRepository,
		workinghoursRepository,
		timeoffRepository,
		bookingRepository,
		getAvailableSlotsUC.Config{
			HorizonDays:     cfg.Booking.HorizonDays,
			LeadTimeMinutes: cfg.Booking.LeadTimeMinutes,
		},
		log,
	)

	// Инициализируем handlers
	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	addMember := addMemberHandler.NewHandler(businessSvc, businessSvc, log)
	createStaff := createStaffHandler.NewHandler(staffSvc, businessSvc, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	getStaff := getStaffHandler.NewHandler(staffSvc, businessSvc, log)
	updateStaff := updateStaffHandler.NewHandler(staffSvc, businessSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, businessSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, businessSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, businessSvc, log)
	linkStaffService := linkStaffServiceHandler.NewHandler(catalogSvc, businessSvc, log)
	listStaffServices := listStaffServicesHandler.NewHandler(catalogSvc, log)
	unlinkStaffService := unlinkStaffServiceHandler.NewHandler(catalogSvc, businessSvc, log)
	upsertWorkingHours := upsertWorkingHoursHandler.NewHandler(scheduleSvc, businessSvc, log)
	listWorkingHours := listWorkingHoursHandler.NewHandler(scheduleSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(scheduleSvc, businessSvc, log)
	createTimeOff := createTimeOffHandler.NewHandler(scheduleSvc, businessSvc, log)
	listTimeOff := listTimeOffHandler.NewHandler(scheduleSvc, businessSvc, log)
	deleteTimeOff := deleteTimeOffHandler.NewHandler(scheduleSvc, businessSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, businessSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customersSvc, businessSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, businessSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, businessSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, businessSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, businessSvc, log)

	// Запускаем reaper истекших HOLD-бронирований
	var holdReaper *reaper.Reaper
	if cfg.Booking.ReaperIntervalMinutes > 0 {
		var holdsExpired prometheus.Counter
		if cfg.Metrics.Enabled {
			holdsExpired = metricsCollector.HoldsExpiredTotal
		}

		holdReaper = reaper.New(bookingSvc, log, cfg.Booking.ReaperIntervalMinutes, holdsExpired)
		if err := holdReaper.Start(); err != nil {
			log.Fatal("Failed to start hold reaper: %v", err)
		}
	} else {
		log.Info("Hold reaper disabled (reaper_interval_minutes=0)")
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id для всех запросов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка бизнеса
	api.HandleFunc("/businesses/{businessId}",
		getBusiness.Handle).Methods(http.MethodGet)

	// Витрина: сотрудники, услуги, привязки
	api.HandleFunc("/businesses/{businessId}/staff",
		listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/services",
		listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/staff/{staffId}/services",
		listStaffServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/staff/{staffId}/working-hours",
		listWorkingHours.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/businesses/{businessId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом (hold)
	api.HandleFunc("/businesses/{businessId}/bookings",
		createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бизнесы ---
	protected.HandleFunc("/businesses", createBusiness.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/members",
		addMember.Handle).Methods(http.MethodPost)

	// --- Сотрудники ---
	protected.HandleFunc("/businesses/{businessId}/staff",
		createStaff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}",
		getStaff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}",
		updateStaff.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	protected.HandleFunc("/businesses/{businessId}/services",
		createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/services/{serviceId}",
		getService.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/services/{serviceId}",
		updateService.Handle).Methods(http.MethodPut)

	// --- Привязки сотрудник-услуга ---
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}/services",
		linkStaffService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/staff-services/{linkId}",
		unlinkStaffService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}/working-hours",
		upsertWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}/working-hours/{weekday}",
		deleteWorkingHours.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}/time-off",
		createTimeOff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/staff/{staffId}/time-off",
		listTimeOff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/time-off/{timeOffId}",
		deleteTimeOff.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/businesses/{businessId}/customers",
		listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/customers/{customerId}",
		getCustomer.Handle).Methods(http.MethodGet)

	// --- Бронирования (для персонала бизнеса) ---
	protected.HandleFunc("/businesses/{businessId}/bookings",
		listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/bookings/{bookingId}",
		getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/bookings/{bookingId}/confirm",
		confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/bookings/{bookingId}/cancel",
		cancelBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем reaper
	if holdReaper != nil {
		holdReaper.Stop()
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
