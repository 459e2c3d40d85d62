package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appapi "github.com/Apurer/go-gin-orders-api/internal/app/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := appapi.Run(ctx); err != nil {
		log.Fatalf("api exited: %v", err)
	}
}
