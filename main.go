package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/demaceo/mhi/internal/api"
	"github.com/demaceo/mhi/internal/cache"
	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/email"
	"github.com/demaceo/mhi/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Redis is only needed for mock email capture in test mode.
	var redisClient *redis.Client
	mockServices := os.Getenv("MOCK_SERVICES") == "true"
	if mockServices {
		redisClient, err = cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			if err := cache.DisconnectRedis(redisClient); err != nil {
				log.Printf("Error disconnecting from Redis: %v", err)
			}
		}()
	}

	// Initialize the primary email sender. A nil sender is a legal state:
	// submissions then fail with a configuration error instead of at send time.
	var primarySender email.Sender
	if mockServices {
		log.Println("MOCK_SERVICES enabled: Using Redis email sender.")
		primarySender = email.NewRedisSender(redisClient, cfg.MailSenderAddress())
	} else {
		primarySender, err = buildProviderSender(cfg)
		if err != nil {
			log.Printf("WARNING: email transport unavailable: %v. Submissions will be rejected until configured.", err)
		}
	}

	// Final sender: composite so a file logger can ride along.
	var finalSender email.Sender
	if primarySender != nil {
		compositeSender := email.NewCompositeSender(primarySender)

		logEmailsPath := os.Getenv("LOG_EMAILS")
		if logEmailsPath != "" {
			log.Printf("LOG_EMAILS set to '%s', enabling file email logger.", logEmailsPath)
			fileSender, err := email.NewFileSender(logEmailsPath, cfg.MailSenderAddress())
			if err != nil {
				log.Printf("WARNING: Failed to initialize file email sender (LOG_EMAILS='%s'): %v. Proceeding without file logging.", logEmailsPath, err)
			} else {
				compositeSender.AddSender(fileSender)
				log.Println("File email logger added to composite sender.")
			}
		}
		finalSender = compositeSender
	}

	leadService := services.NewLeadService(cfg, finalSender, nil)

	// WaitGroup for managing server goroutines
	var wg sync.WaitGroup

	// Channel to signal shutdown from Service API
	shutdownChan := make(chan struct{}, 1)

	// Start Service API (always runs)
	serviceRouter := api.SetupServiceRouter(cfg, redisClient, shutdownChan)
	serviceSrv := &http.Server{
		Addr:    ":" + cfg.ServiceApiPort,
		Handler: serviceRouter,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Service API listening on :%s\n", cfg.ServiceApiPort)
		if err := serviceSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Service API ListenAndServe error: %v", err)
		}
		fmt.Println("Service API server stopped.")
	}()

	// Start main site + API server
	mainRouter := api.SetupRouter(cfg, leadService)
	mainSrv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: mainRouter,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Site listening on :%s\n", cfg.ApiPort)
		if err := mainSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Site ListenAndServe error: %v", err)
		}
		fmt.Println("Site server stopped.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)
	case <-shutdownChan:
		fmt.Println("\nShutdown requested via Service API. Shutting down gracefully...")
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	fmt.Println("Shutting down Service API server...")
	if err := serviceSrv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Service API server shutdown error: %v", err)
	}

	fmt.Println("Shutting down site server...")
	if err := mainSrv.Shutdown(ctxShutdown); err != nil {
		log.Printf("Site server shutdown error: %v", err)
	}

	fmt.Println("Waiting for servers to stop...")
	wg.Wait()

	fmt.Println("Server gracefully stopped")
}

// buildProviderSender constructs the configured real transport. MAIL_PROVIDER
// picks one explicitly; when unset, whichever credential set is present wins,
// Gmail first.
func buildProviderSender(cfg *config.Config) (email.Sender, error) {
	switch cfg.MailProvider {
	case config.ProviderGmail:
		return email.NewGmailSender(cfg)
	case config.ProviderPostmark:
		return email.NewPostmarkSender(cfg)
	case config.ProviderLog:
		log.Println("MAIL_PROVIDER=log: emails will be logged, not delivered.")
		return email.NewLoggingSender(), nil
	}

	if sender, err := email.NewGmailSender(cfg); err == nil {
		log.Println("Auto-detected Gmail transport from GOOGLE_* credentials.")
		return sender, nil
	}
	if sender, err := email.NewPostmarkSender(cfg); err == nil {
		log.Println("Auto-detected Postmark transport from POSTMARK_* credentials.")
		return sender, nil
	}
	return nil, email.ErrNotConfigured
}
