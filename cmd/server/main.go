// @title                       Doctors Portal API
// @version                     1.0
// @description                 Appointment booking, doctor profiles, admin roles and card payment intents.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/doctors-portal/portal-server/internal/api"
	"github.com/doctors-portal/portal-server/internal/core/ports"
	"github.com/doctors-portal/portal-server/internal/core/service"
	"github.com/doctors-portal/portal-server/internal/infrastructure/db/mongo"
	"github.com/doctors-portal/portal-server/internal/infrastructure/db/redis"
	"github.com/doctors-portal/portal-server/internal/infrastructure/identity"
	"github.com/doctors-portal/portal-server/internal/infrastructure/payment"
	"github.com/doctors-portal/portal-server/internal/pkg/config"
	"github.com/doctors-portal/portal-server/pkg/logger"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "doctors-portal",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	sentryEnabled := false
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Error().Err(err).Msg("sentry init failed")
		} else {
			sentryEnabled = true
		}
	}

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Username: cfg.Mongo.User,
		Password: cfg.Mongo.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		// Legacy data with duplicate emails blocks the unique index; serve anyway.
		log.Error().Err(err).Msg("mongo index bootstrap failed, duplicate users will not be rejected")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	verifier, err := newVerifier(ctx, cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("identity verifier setup failed")
	}

	appointments := service.NewAppointmentService(mongo.NewAppointmentRepository(db), log)
	users := service.NewUserService(mongo.NewUserRepository(db), log)
	doctors := service.NewDoctorService(mongo.NewDoctorRepository(db), log)
	payments := service.NewPaymentService(
		payment.NewStripeGateway(cfg.Stripe.SecretKey, nil),
		redis.NewIntentReplays(rdb),
		log,
	)

	e := api.NewRouter(api.Dependencies{
		Log:          log,
		Appointments: appointments,
		Users:        users,
		Doctors:      doctors,
		Payments:     payments,
		Verifier:     verifier,
		Mongo:        db,
		Redis:        rdb,
		CORSOrigins:  cfg.CORSOrigins,
		UploadLimit:  cfg.UploadLimit,
		Sentry:       sentryEnabled,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("doctors portal running")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

// newVerifier prefers Firebase and falls back to the development HS256
// secret. Config.Validate guarantees one of them is set.
func newVerifier(ctx context.Context, cfg config.IdentityConfig, log zerolog.Logger) (ports.TokenVerifier, error) {
	if cfg.FirebaseServiceAccount != "" {
		return identity.NewFirebaseVerifier(ctx, cfg.FirebaseServiceAccount)
	}
	log.Warn().Msg("using development HS256 token verifier")
	return identity.NewHMACVerifier(cfg.JWTSecret), nil
}
