package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetflow-service/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	srv := app.NewServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server exited: %v", err)
		}
	case sig := <-quit:
		log.Printf("received %s, draining in-flight requests", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown did not finish cleanly: %v", err)
		}
		if err := <-errCh; err != nil {
			log.Printf("server exited: %v", err)
		}
		log.Println("server stopped")
	}
}
