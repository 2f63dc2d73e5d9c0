package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/booking"
	bookingHttp "github.com/courtside/sportbook-backend/internal/booking/http"
	"github.com/courtside/sportbook-backend/internal/court"
	courtHttp "github.com/courtside/sportbook-backend/internal/court/http"
	"github.com/courtside/sportbook-backend/internal/media"
	mediaHttp "github.com/courtside/sportbook-backend/internal/media/http"
	"github.com/courtside/sportbook-backend/internal/payment"
	paymentHttp "github.com/courtside/sportbook-backend/internal/payment/http"
	"github.com/courtside/sportbook-backend/internal/review"
	reviewHttp "github.com/courtside/sportbook-backend/internal/review/http"
	"github.com/courtside/sportbook-backend/internal/user"
	userHttp "github.com/courtside/sportbook-backend/internal/user/http"
	"github.com/courtside/sportbook-backend/internal/venue"
	venueHttp "github.com/courtside/sportbook-backend/internal/venue/http"
)

// Config carries the services and settings the router assembles.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	VenueService   venue.Service
	CourtService   court.Service
	BookingService booking.Service
	ReviewService  review.Service
	MediaService   media.Service
	PaymentService payment.Service // nil when the gateway is not configured

	JWTManager *auth.JWTManager
	Blacklist  *auth.Blacklist

	DefaultSlotMinutes int
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers each module's routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger prints request information; Recovery converts panics to 500s.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager, cfg.Blacklist)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager, cfg.Blacklist)
	venueHandler := venueHttp.NewHandler(cfg.VenueService, cfg.UserService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.UserService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService, cfg.DefaultSlotMinutes)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService, cfg.UserService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService, cfg.UserService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware, adminMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware)

		if cfg.PaymentService != nil {
			paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
			paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
		}
	}

	return r
}
