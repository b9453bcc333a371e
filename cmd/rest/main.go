package main

import (
	"context"
	"log"

	"chatbot-platform-be/internal/bootstrap"
	"chatbot-platform-be/internal/config"
	"chatbot-platform-be/internal/server"
	"chatbot-platform-be/internal/tracer"
	"chatbot-platform-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.EventPublisher.Close()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
