package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/sportbook-backend/internal/api"
	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/config"
	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/media"
	"github.com/courtside/sportbook-backend/internal/notify"
	"github.com/courtside/sportbook-backend/internal/payment"
	"github.com/courtside/sportbook-backend/internal/pkg/storage"
	"github.com/courtside/sportbook-backend/internal/review"
	"github.com/courtside/sportbook-backend/internal/user"
	"github.com/courtside/sportbook-backend/internal/venue"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router    *gin.Engine
	Blacklist *auth.Blacklist

	// Publisher is non-nil when AMQP is configured; callers own Close.
	Publisher *notify.Publisher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)
	blacklist := auth.NewBlacklist()

	// Optional booking event publisher
	var publisher *notify.Publisher
	var eventPublisher booking.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = p
		eventPublisher = p
	} else {
		log.Println("AMQP_URL not set, booking events disabled")
	}

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Venue module
	venueRepo := venue.NewPgxRepository(pool)
	venueService := venue.NewService(venueRepo)

	// Court module
	courtRepo := court.NewPgxRepository(pool)
	courtService := court.NewService(courtRepo, venueService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, courtService, venueService, eventPublisher)

	// Review module
	reviewRepo := review.NewPgxRepository(pool)
	reviewService := review.NewService(reviewRepo, venueService, bookingService)

	// Media module
	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	mediaService := media.NewService(store, storage.NewImageProcessor(), venueService)

	// Optional payment module
	var paymentService payment.Service
	if cfg.OmiseSecretKey != "" {
		gateway, err := payment.NewOmiseGateway(cfg.OmisePublicKey, cfg.OmiseSecretKey)
		if err != nil {
			return nil, fmt.Errorf("init payment gateway: %w", err)
		}
		paymentService = payment.NewService(gateway, bookingService)
	} else {
		log.Println("OMISE_SECRET_KEY not set, payment routes disabled")
	}

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		VenueService:       venueService,
		CourtService:       courtService,
		BookingService:     bookingService,
		ReviewService:      reviewService,
		MediaService:       mediaService,
		PaymentService:     paymentService,
		JWTManager:         jwtManager,
		Blacklist:          blacklist,
		DefaultSlotMinutes: cfg.DefaultSlotMinutes,
	})

	return &Container{
		Router:    router,
		Blacklist: blacklist,
		Publisher: publisher,
	}, nil
}
