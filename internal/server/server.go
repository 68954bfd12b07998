package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/admin"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/auth"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/booking"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/config"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/dispatch"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/ledger"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/nanny"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/notify"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, notifier notify.Notifier) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	bookingRepo := booking.NewRepository(db)
	nannyRepo := nanny.NewRepository(db)
	adminRepo := admin.NewRepository(db)
	ledgerRepo := ledger.NewRepository(db)

	dispatcher := dispatch.New(notifier)
	bookingService := booking.NewService(bookingRepo, nannyRepo, dispatcher)
	ledgerService := ledger.NewService(ledgerRepo, bookingRepo, nil)
	adminService := admin.NewService(adminRepo, cfg.JWTSecret)

	bookingHandler := booking.NewHandler(bookingService)
	nannyHandler := nanny.NewHandler(db)
	ledgerHandler := ledger.NewHandler(ledgerService)
	adminHandler := admin.NewHandler(adminService)

	// Client-facing surface: booking submission and the review link.
	// Submissions are rate-limited per IP since the form is public.
	public := router.Group("/")
	public.Use(RateLimitMiddleware(cfg.PublicRateRPS, cfg.PublicRateBurst))
	{
		public.POST("/bookings", bookingHandler.CreateBooking)
		public.GET("/review/:token", bookingHandler.GetBookingByReviewToken)
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", adminHandler.Login)
		authGroup.POST("/refresh", adminHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminGroup := router.Group("/admin")
	adminGroup.Use(authMiddleware)
	{
		adminGroup.GET("/me", adminHandler.GetMe)
		adminGroup.POST("/admins", adminHandler.CreateAdmin)
		adminGroup.GET("/test-notification", TestNotification(notifier))

		adminGroup.GET("/bookings", bookingHandler.ListBookings)
		adminGroup.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		adminGroup.PUT("/bookings/:bookingID", bookingHandler.UpdateBooking)

		adminGroup.GET("/nannies", nannyHandler.ListNannies)
		adminGroup.POST("/nannies", nannyHandler.CreateNanny)
		adminGroup.POST("/nannies/:nannyID/active", nannyHandler.SetNannyActive)

		adminGroup.GET("/bookings/:bookingID/payments", ledgerHandler.ListPayments)
		adminGroup.POST("/bookings/:bookingID/payments", ledgerHandler.AddPayment)
		adminGroup.DELETE("/bookings/:bookingID/payments/:paymentID", ledgerHandler.DeletePayment)
		adminGroup.GET("/bookings/:bookingID/payouts", ledgerHandler.ListPayouts)
		adminGroup.POST("/bookings/:bookingID/payouts", ledgerHandler.AddPayout)
		adminGroup.DELETE("/bookings/:bookingID/payouts/:payoutID", ledgerHandler.DeletePayout)
		adminGroup.GET("/bookings/:bookingID/balance", ledgerHandler.GetBalance)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
