package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/admins"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/catalog"
	"medibook-service/internal/app/services/core/companies"
	"medibook-service/internal/app/services/core/diagnostics"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/hra"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/app/services/core/staffs"
	"medibook-service/internal/app/services/core/wallets"
	"medibook-service/internal/app/services/shared/bookingevents"
	"medibook-service/internal/app/services/shared/jwtmanager"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/payment_gateway"
	sharedredis "medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/sequence"
	"medibook-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sequenceService := sequence.NewSequenceService(redisRepository, bootstrap.Logger)
	paymentGateway := payment_gateway.NewRazorpayService(bootstrap.InternalConfig)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig)

	eventPublisher, err := bookingevents.NewPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.BookingEventQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up booking event publisher", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	accessLog := logger.NewLogrusLogger(bootstrap.InternalConfig)
	bootstrap.Router.Use(middlewares.RequestLogger(bootstrap.InternalConfig.App, accessLog))

	// Repositories
	adminRepository := admins.NewAdminMongoRepository(bootstrap.MongoDB, dbName)
	staffRepository := staffs.NewStaffMongoRepository(bootstrap.MongoDB, dbName)
	companyRepository := companies.NewCompanyMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	diagnosticRepository := diagnostics.NewDiagnosticMongoRepository(bootstrap.MongoDB, dbName)
	catalogRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoDB, dbName)
	slotRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	hraRepository := hra.NewHraMongoRepository(bootstrap.MongoDB, dbName)

	seedBookingSequences(bootstrap.Logger, bookingRepository, sequenceService)

	// Usecases
	adminUsecase := admins.NewAdminUsecase(adminRepository, jwtManager, bootstrap.Logger)
	staffUsecase := staffs.NewStaffUsecase(staffRepository, companyRepository, bootstrap.Logger)
	walletUsecase := wallets.NewWalletUsecase(staffRepository, bootstrap.Logger)
	companyUsecase := companies.NewCompanyUsecase(companyRepository, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.Logger)
	diagnosticUsecase := diagnostics.NewDiagnosticUsecase(diagnosticRepository, bootstrap.Logger)
	catalogUsecase := catalog.NewCatalogUsecase(catalogRepository, bootstrap.Logger)
	slotUsecase := slots.NewSlotUsecase(slotRepository, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(bookings.BookingUsecaseDeps{
		BookingRepository:    bookingRepository,
		StaffRepository:      staffRepository,
		DoctorRepository:     doctorRepository,
		DiagnosticRepository: diagnosticRepository,
		CatalogRepository:    catalogRepository,
		SlotRepository:       slotRepository,
		PaymentGateway:       paymentGateway,
		Sequences:            sequenceService,
		Locker:               lockerService,
		Events:               eventPublisher,
		Currency:             bootstrap.InternalConfig.PaymentGateway.Currency,
	}, bootstrap.Logger)
	hraUsecase := hra.NewHraUsecase(hraRepository, staffRepository, bootstrap.Logger)

	// Controllers
	controllers := &routers.Controllers{
		Admin:      admins.NewAdminController(bootstrap.Logger, adminUsecase),
		Staff:      staffs.NewStaffController(bootstrap.Logger, staffUsecase),
		Wallet:     wallets.NewWalletController(bootstrap.Logger, walletUsecase),
		Company:    companies.NewCompanyController(bootstrap.Logger, companyUsecase),
		Doctor:     doctors.NewDoctorController(bootstrap.Logger, doctorUsecase),
		Diagnostic: diagnostics.NewDiagnosticController(bootstrap.Logger, diagnosticUsecase),
		Catalog:    catalog.NewCatalogController(bootstrap.Logger, catalogUsecase),
		Slot:       slots.NewSlotController(bootstrap.Logger, slotUsecase),
		Booking:    bookings.NewBookingController(bootstrap.Logger, bookingUsecase),
		Hra:        hra.NewHraController(bootstrap.Logger, hraUsecase),
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, controllers)
}

// seedBookingSequences raises the Redis counters to the latest persisted
// booking id of each type, so restarts never hand out an id twice.
func seedBookingSequences(log *zap.Logger, bookingRepository contracts.BookingRepository, sequenceService contracts.SequenceService) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, bookingType := range []string{constvars.BookingTypeDiagnostic, constvars.BookingTypeDoctor} {
		latest, err := bookingRepository.LatestBookingID(ctx, bookingType)
		if err != nil {
			log.Fatal("Failed to read latest booking id", zap.String("booking_type", bookingType), zap.Error(err))
		}
		floor := bookings.ParseBookingSequence(bookingType, latest)
		if err := sequenceService.EnsureAtLeast(ctx, sequenceName(bookingType), floor); err != nil {
			log.Fatal("Failed to seed booking sequence", zap.String("booking_type", bookingType), zap.Error(err))
		}
	}
}

func sequenceName(bookingType string) string {
	if bookingType == constvars.BookingTypeDoctor {
		return constvars.SequenceDoctorBooking
	}
	return constvars.SequenceDiagnosticBooking
}
