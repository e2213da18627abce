package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/features"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/repositories"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
	"github.com/lakshman261099/career-ai-sub000/internal/txctx"
	"github.com/lakshman261099/career-ai-sub000/internal/worker"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, jobsTopic, jobsGroupID, eventsTopic,
		aiBaseURL, aiAPIKey, aiModel, aiTimeoutSecond,
		jobTimeoutSecond,
		reconcileIntervalSecond, reconcileStuckAfterSecond, reconcileBatchSize,
		costsPath, statusCacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, jobsTopic, jobsGroupID, eventsTopic,
		aiBaseURL, aiAPIKey, aiModel, aiTimeoutSecond,
		jobTimeoutSecond,
		reconcileIntervalSecond, reconcileStuckAfterSecond, reconcileBatchSize,
		costsPath, statusCacheTTLSecond,
	); err != nil {
		log.Fatalf("worker stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting worker version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// database, Redis, Kafka, model-backend, and reconciliation configuration.
func parseConfig(path string) (
	logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, jobsTopic, jobsGroupID, eventsTopic string,
	aiBaseURL, aiAPIKey, aiModel string, aiTimeoutSecond int,
	jobTimeoutSecond int,
	reconcileIntervalSecond, reconcileStuckAfterSecond, reconcileBatchSize int,
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

	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "8")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "4")); err != nil {
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

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	jobsTopic = getEnv("KAFKA_JOBS_TOPIC", "feature-jobs")
	jobsGroupID = getEnv("KAFKA_JOBS_GROUP_ID", "feature-workers")
	eventsTopic = getEnv("KAFKA_LEDGER_EVENTS_TOPIC", "ledger-events")

	// Model backend config
	aiBaseURL = getEnv("AI_BASE_URL", "https://api.openai.com")
	aiAPIKey = getEnv("AI_API_KEY", "")
	aiModel = getEnv("AI_MODEL", "gpt-4o-mini")
	if aiTimeoutSecond, err = strconv.Atoi(getEnv("AI_TIMEOUT_SECOND", "60")); err != nil {
		return
	}

	// Job execution and reconciliation config
	if jobTimeoutSecond, err = strconv.Atoi(getEnv("JOB_TIMEOUT_SECOND", "120")); err != nil {
		return
	}
	if reconcileIntervalSecond, err = strconv.Atoi(getEnv("RECONCILE_INTERVAL_SECOND", "300")); err != nil {
		return
	}
	if reconcileStuckAfterSecond, err = strconv.Atoi(getEnv("RECONCILE_STUCK_AFTER_SECOND", "1800")); err != nil {
		return
	}
	if reconcileBatchSize, err = strconv.Atoi(getEnv("RECONCILE_BATCH_SIZE", "100")); err != nil {
		return
	}

	// Cost table and run-status cache config
	costsPath = getEnv("COSTS_CONFIG_PATH", "")
	if statusCacheTTLSecond, err = strconv.Atoi(getEnv("RUN_STATUS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// buildExecutors wires every priced feature to its executor. A feature in
// the cost table without an executor would charge users for runs that can
// only fail, so missing wiring is an error here.
func buildExecutors(completer ai.Completer, registry *costs.Registry) (*features.Registry, error) {
	executors := features.NewRegistry()

	executors.Register("jobpack_free", features.NewJobPackExecutor(completer, false))
	executors.Register("jobpack_pro", features.NewJobPackExecutor(completer, true))
	executors.Register("skill_mapper_free", features.NewSkillMapperExecutor(completer, false))
	executors.Register("skill_mapper_pro", features.NewSkillMapperExecutor(completer, true))
	executors.Register("dream_planner", features.NewDreamPlannerExecutor(completer))
	executors.Register("daily_coach", features.NewDailyCoachExecutor(completer))
	executors.Register("internship_analyzer", features.NewPromptExecutor(completer, features.InternshipAnalyzerPrompt))
	executors.Register("referral_trainer_free", features.NewPromptExecutor(completer, features.ReferralTrainerPrompt))
	executors.Register("portfolio_idea_free", features.NewPromptExecutor(completer, features.PortfolioIdeaPrompt))
	executors.Register("portfolio_idea_pro", features.NewPromptExecutor(completer, features.PortfolioIdeaPrompt))
	executors.Register("portfolio_publish", features.NewPromptExecutor(completer, features.PortfolioPublishPrompt))

	for _, feature := range registry.Features() {
		if _, err := executors.Lookup(feature); err != nil {
			return nil, fmt.Errorf("priced feature %q has no executor", feature)
		}
	}

	return executors, nil
}

// run initializes the logger, database, Redis, Kafka consumer, and the
// feature executors, then consumes jobs until a shutdown signal arrives.
func run(ctx context.Context,
	logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, jobsTopic, jobsGroupID, eventsTopic string,
	aiBaseURL, aiAPIKey, aiModel string, aiTimeoutSecond int,
	jobTimeoutSecond int,
	reconcileIntervalSecond, reconcileStuckAfterSecond, reconcileBatchSize int,
	costsPath string, statusCacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

	// Load the cost table
	registry, err := costs.Load(costsPath)
	if err != nil {
		return fmt.Errorf("failed to load cost table: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

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
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Ledger event writer; refunds issued during settlement publish here.
	eventsWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    eventsTopic,
		Balancer: &kafka.Hash{},
	}
	defer eventsWriter.Close()

	// Consumer-group reader for paid jobs.
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: kafkaBrokers,
		GroupID: jobsGroupID,
		Topic:   jobsTopic,
	})

	// Initialize repositories and services
	walletWriter := repositories.NewWalletWriterRepository(db)
	walletReader := repositories.NewWalletReaderRepository(db)
	txWriter := repositories.NewTransactionWriterRepository(db)
	txReader := repositories.NewTransactionReaderRepository(db)
	runWriter := repositories.NewRunWriterRepository(db)
	runReader := repositories.NewRunReaderRepository(db)
	statusCache := repositories.NewRunStatusCacheRepository(rdb, time.Duration(statusCacheTTLSecond)*time.Second)

	runTx := services.TxRunner(txctx.Runner(db))

	ledgerSvc := services.NewLedgerService(registry, walletWriter, walletReader, txWriter, txReader, eventsWriter, runTx)
	// The worker never enqueues, it only settles; no jobs writer is needed.
	accountingSvc := services.NewJobAccountingService(registry, ledgerSvc, runWriter, runReader, statusCache, nil, runTx)

	// Model backend and feature executors
	completer := ai.NewClient(aiBaseURL, aiAPIKey, aiModel, time.Duration(aiTimeoutSecond)*time.Second)
	executors, err := buildExecutors(completer, registry)
	if err != nil {
		return err
	}

	w := worker.New(reader, accountingSvc, executors, time.Duration(jobTimeoutSecond)*time.Second)
	reconciler := worker.NewReconciler(accountingSvc,
		time.Duration(reconcileIntervalSecond)*time.Second,
		time.Duration(reconcileStuckAfterSecond)*time.Second,
		reconcileBatchSize,
	)

	// Graceful shutdown
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var wg sync.WaitGroup
	errChan := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := w.Run(runCtx); err != nil {
			errChan <- fmt.Errorf("worker loop failed: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		reconciler.Run(runCtx)
	}()

	select {
	case <-runCtx.Done():
		logger.Log.Info("Shutdown signal received, stopping worker...")
	case runErr := <-errChan:
		stop()
		wg.Wait()
		w.Close()
		return runErr
	}

	wg.Wait()
	if err := w.Close(); err != nil {
		logger.Log.Errorw("failed to close job reader", "error", err)
	}

	logger.Log.Info("Worker stopped gracefully")
	return nil
}
