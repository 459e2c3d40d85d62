package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	appclient "github.com/Apurer/go-gin-orders-api/internal/app/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := appclient.Run(ctx); err != nil {
		log.Fatalf("client exited: %v", err)
	}
}
