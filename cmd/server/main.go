// Command server runs the wardrobe stylist HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = fatal error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/closetmate/closetmate/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
