package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-job-board/docs"
	"github.com/sbilibin2017/gw-job-board/internal/handlers"
	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/middlewares"
	"github.com/sbilibin2017/gw-job-board/internal/migrations"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/repositories"
	"github.com/sbilibin2017/gw-job-board/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// seedAccounts are created at startup unless their usernames are taken.
var seedAccounts = []struct {
	username, email, password string
	userType                  models.UserType
}{
	{"muser", "muser@example.com", "muser", models.UserTypeSeeker},
	{"mvc", "mvc@example.com", "mvc", models.UserTypeEmployer},
}

// @title gw-job-board API
// @version 1.0.0
// @description Job board backend: accounts, job postings, applications and resumes
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and logging configuration.
// An empty REDIS_HOST disables the job cache, empty KAFKA_BROKERS disables events.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "application-events")

	return
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// It applies migrations, seeds the demo accounts and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	var rdb *redis.Client
	if redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
	} else {
		logger.Log.Info("REDIS_HOST is empty, job cache disabled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("KAFKA_BROKERS is empty, application events disabled")
	}

	svc := newApp(db, rdb, time.Duration(redisExpSecond)*time.Second, kafkaWriter)

	for _, acc := range seedAccounts {
		if err := svc.auth.Seed(ctx, acc.username, acc.email, acc.password, acc.userType); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", acc.username, err)
		}
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, pgDB),
	)

	r := newRouter(db, svc, reg,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// app groups the services behind the HTTP handlers.
type app struct {
	auth         *services.AuthService
	jobs         *services.JobService
	applications *services.ApplicationService
	resumes      *services.ResumeService
	stats        *services.StatsService
}

// kafkaBatchTimeout bounds how long a publish waits for a batch to fill.
// Events are written while the request transaction is still open.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter builds the application event writer. Messages with the same
// key (application id) land on the same partition.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           kafkaBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// newApp wires repositories into services. rdb and kafkaWriter may be nil.
func newApp(db *sqlx.DB, rdb *redis.Client, cacheExp time.Duration, kafkaWriter services.KafkaWriter) *app {
	txGetter := middlewares.GetTxFromContext

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	jobReadRepo := repositories.NewJobReadRepository(db, txGetter)
	jobWriteRepo := repositories.NewJobWriteRepository(db, txGetter)
	applicationReadRepo := repositories.NewApplicationReadRepository(db, txGetter)
	applicationWriteRepo := repositories.NewApplicationWriteRepository(db, txGetter)
	resumeReadRepo := repositories.NewResumeReadRepository(db, txGetter)
	resumeWriteRepo := repositories.NewResumeWriteRepository(db, txGetter)
	statsReadRepo := repositories.NewStatsReadRepository(db, txGetter)

	var jobCache services.JobCache
	if rdb != nil {
		jobCache = repositories.NewJobCacheRepository(rdb, cacheExp)
	}

	// Initialize services
	return &app{
		auth:         services.NewAuthService(userReadRepo, userWriteRepo),
		jobs:         services.NewJobService(jobReadRepo, jobWriteRepo, jobCache),
		applications: services.NewApplicationService(applicationReadRepo, applicationWriteRepo, jobReadRepo, kafkaWriter),
		resumes:      services.NewResumeService(userReadRepo, resumeReadRepo, resumeWriteRepo),
		stats:        services.NewStatsService(statsReadRepo),
	}
}

// newRouter builds the HTTP routes. Every /api request runs in its own transaction.
func newRouter(db *sqlx.DB, a *app, reg *prometheus.Registry, swaggerURL string) http.Handler {
	metrics := middlewares.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/auth/register", handlers.NewRegisterHandler(a.auth))
		r.Post("/auth/login", handlers.NewLoginHandler(a.auth))

		r.Get("/jobs", handlers.NewListJobsHandler(a.jobs))
		r.Post("/jobs", handlers.NewCreateJobHandler(a.jobs))
		r.Get("/jobs/{id:[0-9]+}", handlers.NewGetJobHandler(a.jobs))
		r.Put("/jobs/{id:[0-9]+}", handlers.NewUpdateJobHandler(a.jobs))
		r.Delete("/jobs/{id:[0-9]+}", handlers.NewDeleteJobHandler(a.jobs))
		r.Get("/employers/{id:[0-9]+}/jobs", handlers.NewListEmployerJobsHandler(a.jobs))

		r.Get("/users/{id:[0-9]+}/applications", handlers.NewListUserApplicationsHandler(a.applications))
		r.Get("/jobs/{id:[0-9]+}/applications", handlers.NewListJobApplicationsHandler(a.applications))
		r.Post("/jobs/{id:[0-9]+}/apply", handlers.NewApplyHandler(a.applications))
		r.Put("/applications/{id:[0-9]+}/status", handlers.NewUpdateApplicationStatusHandler(a.applications))
		r.Put("/applications/{id:[0-9]+}/notes", handlers.NewUpdateApplicationNotesHandler(a.applications))

		r.Get("/users/{id:[0-9]+}/resumes", handlers.NewListResumesHandler(a.resumes))
		r.Post("/users/{id:[0-9]+}/resumes", handlers.NewUploadResumeHandler(a.resumes))
		r.Delete("/resumes/{id:[0-9]+}", handlers.NewDeleteResumeHandler(a.resumes))
		r.Put("/users/{id:[0-9]+}/resumes/{resumeId:[0-9]+}/default", handlers.NewSetDefaultResumeHandler(a.resumes))

		r.Get("/employers/{id:[0-9]+}/stats", handlers.NewEmployerStatsHandler(a.stats))
		r.Get("/users/{id:[0-9]+}/stats", handlers.NewSeekerStatsHandler(a.stats))
	})

	r.Get("/health", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	return r
}
