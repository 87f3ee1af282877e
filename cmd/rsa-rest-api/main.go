// cmd/rsa-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/gsutil-mirrors/rsa/internal/api/rest/v1"
	"github.com/gsutil-mirrors/rsa/internal/app"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/connector"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/cryptography"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/entropy"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/hashing"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/persistence"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/persistence/models"
	"github.com/gsutil-mirrors/rsa/internal/pkg/config"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	keyGeneration   keys.KeyGenerationService
	keyDownload     keys.KeyDownloadService
	keyMetadata     keys.KeyMetadataService
	cryptoOperation keys.CryptoOperationService
}

// initializeServices sets up all application components
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.KeyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	vault, err := connector.NewFileKeyVault(cfg.VaultDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault: %w", err)
	}

	// Initialize the RSA engine
	randomSource := entropy.NewRandomSource()
	hashProvider := hashing.NewHashProvider()

	primeGenerator, err := cryptography.NewPrimeGenerator(randomSource, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(primeGenerator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	processor, err := cryptography.NewPKCS1Processor(randomSource, hashProvider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create PKCS#1 processor: %w", err)
	}

	// Initialize application services
	keyGenerationService, err := app.NewKeyGenerationService(vault, keyRepo, keyGenerator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	keyMetadataService, err := app.NewKeyMetadataService(vault, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key metadata service: %w", err)
	}

	keyDownloadService, err := app.NewKeyDownloadService(vault, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key download service: %w", err)
	}

	cryptoOperationService, err := app.NewCryptoOperationService(vault, keyRepo, processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto operation service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		keyGeneration:   keyGenerationService,
		keyDownload:     keyDownloadService,
		keyMetadata:     keyMetadataService,
		cryptoOperation: cryptoOperationService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.keyGeneration,
		services.keyDownload,
		services.keyMetadata,
		services.cryptoOperation,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown: ", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
