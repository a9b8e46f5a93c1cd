package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo/internal/auth"
	"todo/internal/config"
	"todo/internal/database"
	"todo/internal/repositories"
	"todo/internal/server"
	"todo/internal/services"
	"todo/pkg/rabbitmq"

	"github.com/spf13/viper"
)

// store bundles the repositories chosen by DATABASE_DRIVER.
type store struct {
	users repositories.UserRepository
	items repositories.ItemRepository
	ping  func(ctx context.Context) error
	close func() error
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// --- Activity events (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; activity events disabled.")
	}

	app := server.New(server.Deps{
		Users:     st.users,
		Items:     st.items,
		Hasher:    auth.NewBcryptHasher(cfg.BcryptCost),
		Tokens:    auth.NewTokenManager(cfg.JWTSecret),
		Publisher: publisher,
		Ping:      st.ping,
	}, server.Options{FrontendURL: cfg.FrontendURL})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (store: %s)", cfg.AppPort, cfg.DatabaseDriver)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openStore connects the repositories selected by cfg.DatabaseDriver and
// applies migrations for SQL backends.
func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		log.Println("Using in-memory store; data is lost on restart.")
		return &store{
			users: repositories.NewInMemoryUserRepository(),
			items: repositories.NewInMemoryItemRepository(),
			close: func() error { return nil },
		}, nil
	}

	db, err := database.Open(database.Options{
		Driver:          cfg.DatabaseDriver,
		DSN:             cfg.DatabaseDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &store{
		users: repositories.NewGORMUserRepository(db),
		items: repositories.NewGORMItemRepository(db),
		ping:  func(ctx context.Context) error { return database.Ping(ctx, db) },
		close: func() error { return database.Close(db) },
	}, nil
}
