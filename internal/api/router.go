package api

import (
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/doctors-portal/portal-server/docs"
	"github.com/doctors-portal/portal-server/internal/api/handler"
	"github.com/doctors-portal/portal-server/internal/api/middleware"
	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Log zerolog.Logger

	Appointments ports.AppointmentService
	Users        ports.UserService
	Doctors      ports.DoctorService
	Payments     ports.PaymentService
	Verifier     ports.TokenVerifier

	// Mongo and Redis back the readiness probe, which is only mounted when
	// both are set.
	Mongo *mongo.Database
	Redis *redis.Client

	CORSOrigins []string
	UploadLimit string
	// Sentry attaches a per-request hub; enable only after sentry.Init.
	Sentry bool
	// Registry receives the HTTP metrics. Defaults to the global registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	if deps.Sentry {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(deps.CORSOrigins),
	}))
	if deps.UploadLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.UploadLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "doctors_portal",
		Registerer: registerer,
	}))

	// --- Handlers ---
	appointments := handler.NewAppointmentHandler(deps.Appointments)
	users := handler.NewUserHandler(deps.Users)
	doctors := handler.NewDoctorHandler(deps.Doctors)
	payments := handler.NewPaymentHandler(deps.Payments)
	identity := middleware.VerifyToken(deps.Verifier, deps.Log)

	// --- Appointments ---
	e.GET("/appointments", appointments.List, identity)
	e.POST("/appointments", appointments.Create)
	e.GET("/appointments/:id", appointments.Get)
	e.PUT("/appointments/:id", appointments.AttachPayment)

	// --- Doctors ---
	e.GET("/doctors", doctors.List)
	e.POST("/doctors", doctors.Create)

	// --- Users ---
	e.GET("/users/:email", users.IsAdmin)
	e.POST("/users", users.Create)
	e.PUT("/users", users.Upsert)
	e.PUT("/users/admin", users.PromoteToAdmin, identity)

	// --- Payments ---
	e.POST("/create-payment-intent", payments.CreateIntent)

	// --- Operations ---
	health := handler.NewHealthHandler()
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		e.GET("/health/ready", handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis).Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
