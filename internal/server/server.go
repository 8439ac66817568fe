package server

import (
	"toko-backend/internal/auth"
	"toko-backend/internal/config"
	"toko-backend/internal/handler"
	authmw "toko-backend/internal/middleware"
	"toko-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	productHandler *handler.ProductHandler
	issuer         *auth.TokenIssuer
	storageCfg     config.Storage
}

func NewServer(
	log *zap.Logger,
	issuer *auth.TokenIssuer,
	storageCfg config.Storage,
	authService service.AuthService,
	orderService service.OrderService,
	paymentService service.PaymentService,
	productService service.ProductService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))

	s := &Server{
		echo:           e,
		authHandler:    handler.NewAuthHandler(authService, log),
		orderHandler:   handler.NewOrderHandler(orderService),
		paymentHandler: handler.NewPaymentHandler(paymentService, log),
		productHandler: handler.NewProductHandler(productService),
		issuer:         issuer,
		storageCfg:     storageCfg,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Uploaded images are served from disk only for the local backend;
	// cloud backends return absolute URLs.
	if s.storageCfg.Backend == "local" {
		s.echo.Static("/uploads", s.storageCfg.LocalDir)
	}

	// -------- auth --------
	authGroup := s.echo.Group("/auth")
	authGroup.POST("/register", s.authHandler.Register)
	authGroup.POST("/login", s.authHandler.Login)
	authGroup.POST("/google-login", s.authHandler.GoogleLogin)
	authGroup.PUT("/update-password", s.authHandler.UpdatePassword, authmw.RequireAuth(s.issuer))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- orders / payments --------
	api.POST("/orders", s.orderHandler.PlaceOrder)
	api.GET("/orders/:id", s.orderHandler.GetOrder)
	api.POST("/payments/midtrans", s.paymentHandler.CreatePayment)

	// -------- gateway callback --------
	// No signature verification on the webhook; see DESIGN.md.
	api.POST("/webhook/midtrans", s.paymentHandler.Webhook)

	// -------- products --------
	api.GET("/products", s.productHandler.List)
	api.GET("/products/:id", s.productHandler.Get)
	api.POST("/products", s.productHandler.Create)
	api.PUT("/products/:id", s.productHandler.Update)
	api.DELETE("/products/:id", s.productHandler.Delete)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
