package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appworker "github.com/Apurer/go-gin-orders-api/internal/app/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := appworker.Run(ctx); err != nil {
		log.Fatalf("worker exited: %v", err)
	}
}
