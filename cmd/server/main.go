/*
main.go - Application entry point

PURPOSE:
  Starts the rental pricing HTTP server.
  Handles configuration, router wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env file, then environment)
  2. Apply command-line flag overrides
  3. Create API handler and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr    Listen address (default: $PORT or :8080)

ENVIRONMENT:
  ENV              development | production
  PORT             Listen port or address
  ALLOWED_ORIGINS  Comma-separated CORS allow-list

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run on a different port
  ./server -addr=:3000

  # Price a rental
  curl -X POST localhost:8080/api/checkout \
    -d '{"tool_code":"LADW","rental_days":3,"discount_percent":10,"checkout_date":"7/2/20"}'

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment settings
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/rental-engine/api"
	"github.com/warp/rental-engine/config"
)

func main() {
	cfg := config.Load()

	// Flags
	addr := flag.String("addr", cfg.HTTPAddr, "HTTP listen address")
	flag.Parse()

	handler := api.NewHandler()
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s (env=%s)", *addr, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
