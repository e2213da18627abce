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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/handlers"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/middlewares"
	"github.com/lakshman261099/career-ai-sub000/internal/repositories"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
	"github.com/lakshman261099/career-ai-sub000/internal/txctx"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title career-ai credit ledger API
// @version 1.0.0
// @description Service managing dual-currency credit wallets and paid feature runs
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, jobsTopic, eventsTopic,
		jwtSecretKey, jwtExpSecond,
		costsPath, statusCacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, jobsTopic, eventsTopic,
		jwtSecretKey, jwtExpSecond,
		costsPath, statusCacheTTLSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, JWT, and cost-table configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, jobsTopic, eventsTopic string,
	jwtSecretKey string, jwtExpSecond int,
	costsPath string, statusCacheTTLSecond int,
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
	redisHost = getEnv("REDIS_HOST", "localhost")
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

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	jobsTopic = getEnv("KAFKA_JOBS_TOPIC", "feature-jobs")
	eventsTopic = getEnv("KAFKA_LEDGER_EVENTS_TOPIC", "ledger-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Cost table and run-status cache config
	costsPath = getEnv("COSTS_CONFIG_PATH", "")
	if statusCacheTTLSecond, err = strconv.Atoi(getEnv("RUN_STATUS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writers, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers []string, jobsTopic, eventsTopic string,
	jwtSecretKey string, jwtExpSecond int,
	costsPath string, statusCacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Load the cost table
	registry, err := costs.Load(costsPath)
	if err != nil {
		return fmt.Errorf("failed to load cost table: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	if err := repositories.RunMigrations(ctx, dsn, "up"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers: paid jobs and best-effort ledger events
	jobsWriter := &kafka.Writer{
		Addr:         kafka.TCP(kafkaBrokers...),
		Topic:        jobsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	defer jobsWriter.Close()

	eventsWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    eventsTopic,
		Balancer: &kafka.Hash{},
	}
	defer eventsWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	walletWriter := repositories.NewWalletWriterRepository(db)
	walletReader := repositories.NewWalletReaderRepository(db)
	txWriter := repositories.NewTransactionWriterRepository(db)
	txReader := repositories.NewTransactionReaderRepository(db)
	runWriter := repositories.NewRunWriterRepository(db)
	runReader := repositories.NewRunReaderRepository(db)
	tenants := repositories.NewTenantWalletRepository(db)
	audit := repositories.NewAuditLogRepository(db)
	statusCache := repositories.NewRunStatusCacheRepository(rdb, time.Duration(statusCacheTTLSecond)*time.Second)

	runTx := services.TxRunner(txctx.Runner(db))

	// Initialize services
	ledgerSvc := services.NewLedgerService(registry, walletWriter, walletReader, txWriter, txReader, eventsWriter, runTx)
	accountingSvc := services.NewJobAccountingService(registry, ledgerSvc, runWriter, runReader, statusCache, jobsWriter, runTx)
	adminSvc := services.NewAdminWalletService(tenants, txWriter, audit, ledgerSvc, registry, runTx)

	// Initialize handlers
	startRunHandler := handlers.NewStartRunHandler(accountingSvc, jwtSvc)
	runStatusHandler := handlers.NewRunStatusHandler(accountingSvc, jwtSvc)
	balanceHandler := handlers.NewGetBalanceHandler(ledgerSvc, jwtSvc)
	historyHandler := handlers.NewHistoryHandler(ledgerSvc, jwtSvc)
	topUpHandler := handlers.NewAdminTopUpHandler(adminSvc, jwtSvc)
	setCapHandler := handlers.NewAdminSetCapHandler(adminSvc, jwtSvc)
	renewHandler := handlers.NewAdminRenewHandler(adminSvc, jwtSvc)
	signupGrantHandler := handlers.NewSignupGrantHandler(adminSvc, jwtSvc)
	monthlyRefillHandler := handlers.NewMonthlyRefillHandler(adminSvc, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/features/{feature}/runs", startRunHandler)
			r.Get("/runs/{run_id}", runStatusHandler)
			r.Get("/wallet/balance", balanceHandler)
			r.Get("/wallet/transactions", historyHandler)

			// Admin mutations run inside one request-scoped transaction;
			// the start-run route must not, since the charge has to commit
			// before the job is enqueued.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				r.Post("/admin/tenants/{tenant_id}/topup", topUpHandler)
				r.Put("/admin/tenants/{tenant_id}/cap", setCapHandler)
				r.Post("/admin/tenants/{tenant_id}/renew", renewHandler)
				r.Post("/admin/users/{user_id}/grants/signup", signupGrantHandler)
				r.Post("/admin/users/{user_id}/grants/allowance", monthlyRefillHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
