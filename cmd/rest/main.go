package main

import (
	"context"
	"log"

	"notes-data-be/internal/bootstrap"
	"notes-data-be/internal/config"
	"notes-data-be/internal/server"
	"notes-data-be/internal/tracer"
	"notes-data-be/pkg/database"
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

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
