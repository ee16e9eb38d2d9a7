package main

import (
	"context"
	"log"

	"mm-voicenote-be/internal/bootstrap"
	"mm-voicenote-be/internal/config"
	"mm-voicenote-be/internal/server"
	"mm-voicenote-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Restore Session (the one startup-driven transition)
	if user, err := container.SessionService.Restore(context.Background()); err != nil {
		log.Printf("Session restore failed: %v", err)
	} else if user != nil {
		log.Printf("Restored session for user %s", user.Id)
	}

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Activity Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
