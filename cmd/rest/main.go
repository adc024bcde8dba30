package main

import (
	"context"
	"log"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/bootstrap"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/config"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/server"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/database"
)

func main() {
	// 0. Initialize Tracer - DISABLED
	// shutdownTracer := tracer.InitTracer()
	// defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Recipe Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
