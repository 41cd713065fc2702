package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"

	_ "github.com/sbilibin2017/gw-support-ledger/docs"
	"github.com/sbilibin2017/gw-support-ledger/internal/facades"
	"github.com/sbilibin2017/gw-support-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-support-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-support-ledger/internal/logger"
	"github.com/sbilibin2017/gw-support-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-support-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-support-ledger/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is read from the environment after the config file is loaded.
type config struct {
	AppHost   string `env:"APP_HOST,default=127.0.0.1"`
	AppPort   string `env:"APP_PORT,default=8080"`
	WebFolder string `env:"APP_WEB_FOLDER,default=web-folder/"`
	LogLevel  string `env:"APP_LOG_LEVEL,default=info"`

	SurrealURL       string `env:"SURREAL_URL,default=ws://127.0.0.1:8000/rpc"`
	SurrealNamespace string `env:"SURREAL_NAMESPACE,default=test"`
	SurrealDatabase  string `env:"SURREAL_DATABASE,default=test"`
	SurrealRootUser  string `env:"SURREAL_ROOT_USER,default=root"`
	SurrealRootPass  string `env:"SURREAL_ROOT_PASS,default=root"`
	SurrealBootstrap bool   `env:"SURREAL_BOOTSTRAP,default=true"`
	SurrealLoginUser string `env:"SURREAL_LOGIN_USER,default=johndoe"`
	SurrealLoginPass string `env:"SURREAL_LOGIN_PASS,default=password123"`

	DuplicatePolicy string `env:"USER_DUPLICATE_POLICY,default=delegate"`

	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC,default=support-ledger-events"`
}

// @title gw-support-ledger API
// @version 1.0.0
// @description Support staff directory and append-only note ledger. Every /api route except /signin needs the x-auth session token.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey XAuth
// @in header
// @name x-auth
func main() {
	printBuildInfo()

	configPath, positional, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := parseConfig(configPath, positional)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags returns the config file path and the positional arguments.
func parseFlags(args []string) (string, []string, error) {
	flagSet := pflag.NewFlagSet("gw-support-ledger", pflag.ContinueOnError)
	configPath := flagSet.StringP("config", "c", "config.env", "Path to configuration file")
	if err := flagSet.Parse(args); err != nil {
		return "", nil, err
	}
	return *configPath, flagSet.Args(), nil
}

// parseConfig loads the env file, reads the environment and applies the
// positional [port] [web-folder] arguments. The last positional argument is
// always the web folder; the one before it, if any, is the port.
func parseConfig(path string, positional []string) (*config, error) {
	_ = godotenv.Load(path)

	cfg := &config{}
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}

	if n := len(positional); n > 0 {
		cfg.WebFolder = positional[n-1]
		if n > 1 {
			port := positional[n-2]
			if _, err := strconv.ParseUint(port, 10, 16); err != nil {
				return nil, fmt.Errorf("invalid port %q", port)
			}
			cfg.AppPort = port
		}
	}

	if _, err := services.ParseDuplicatePolicy(cfg.DuplicatePolicy); err != nil {
		return nil, err
	}

	return cfg, nil
}

// checkWebFolder fails unless dir is an existing directory.
func checkWebFolder(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("web folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("web folder %s is not a directory", dir)
	}
	return nil
}

// newRouter wires handlers, middleware, API docs and static files.
func newRouter(
	cfg *config,
	authService *services.AuthService,
	userService *services.UserService,
	noteService *services.NoteService,
	tokens *jwt.JWT,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signin", handlers.NewSignInHandler(authService))

		// Every other route needs x-auth
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/users", handlers.NewListUsersHandler(userService))
			r.Post("/users", handlers.NewCreateUserHandler(userService))
			r.Get("/users/{pid}", handlers.NewGetUserHandler(userService))
			r.Delete("/users/{pid}", handlers.NewRemoveUserHandler(userService))
			r.Patch("/users/rank/{pid}", handlers.NewUpdateRankHandler(userService))
			r.Patch("/users/name/{pid}", handlers.NewUpdateNameHandler(userService))

			r.Get("/notes/{pid}", handlers.NewListNotesHandler(noteService))
			r.Post("/notes/{pid}", handlers.NewCreateNoteHandler(userService, noteService))
			r.Get("/notes/{pid}/{created}", handlers.NewGetNoteHandler(noteService))
			r.Post("/notes/{pid}/{created}/entries", handlers.NewAddNoteHandler(userService, noteService, noteService))
			r.Patch("/notes/{pid}/{created}/entries", handlers.NewEditNoteHandler(userService, noteService, noteService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Everything else is a static file; "/" serves index.html.
	r.NotFound(handlers.NewStaticHandler(cfg.WebFolder))

	return r
}

// newEventPublisher returns a Kafka-backed publisher, or nil when no brokers
// are configured.
func newEventPublisher(cfg *config) (services.EventPublisher, func() error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, func() error { return nil }
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},
	}
	facade := facades.NewEventsKafkaFacade(writer)
	return facade, facade.Close
}

// run initializes the logger, the SurrealDB connection, Kafka and the HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if err := checkWebFolder(cfg.WebFolder); err != nil {
		return err
	}

	policy, err := services.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return err
	}

	// Connect to SurrealDB
	logger.Log.Infof("Connecting to SurrealDB: %s (%s/%s)", cfg.SurrealURL, cfg.SurrealNamespace, cfg.SurrealDatabase)
	db, err := repositories.Connect(ctx, repositories.Options{
		URL:       cfg.SurrealURL,
		Namespace: cfg.SurrealNamespace,
		Database:  cfg.SurrealDatabase,
		Bootstrap: cfg.SurrealBootstrap,
		RootUser:  cfg.SurrealRootUser,
		RootPass:  cfg.SurrealRootPass,
		LoginUser: cfg.SurrealLoginUser,
		LoginPass: cfg.SurrealLoginPass,
	})
	if err != nil {
		return fmt.Errorf("SurrealDB connection error: %w", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Log.Errorw("SurrealDB close error", "error", err)
		}
	}()

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db, cfg.SurrealNamespace, cfg.SurrealDatabase)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	noteReadRepo := repositories.NewNoteReadRepository(db)
	noteWriteRepo := repositories.NewNoteWriteRepository(db)

	// Kafka events
	events, closeEvents := newEventPublisher(cfg)
	defer func() {
		if err := closeEvents(); err != nil {
			logger.Log.Errorw("Kafka writer close error", "error", err)
		}
	}()
	if events == nil {
		logger.Log.Warn("KAFKA_BROKERS not set, events will not be published")
	}

	// Initialize services
	authService := services.NewAuthService(sessionRepo, sessionRepo)
	userService := services.NewUserService(authService, userReadRepo, userWriteRepo, events, policy)
	noteService := services.NewNoteService(authService, noteReadRepo, noteWriteRepo, events)

	// The login account must work before we accept traffic.
	if _, err := authService.SignIn(ctx, cfg.SurrealLoginUser, cfg.SurrealLoginPass); err != nil {
		return fmt.Errorf("cannot sign in as %s: %w", cfg.SurrealLoginUser, err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, authService, userService, noteService, jwt.New()),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s, serving %s", cfg.AppHost, cfg.AppPort, cfg.WebFolder)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
