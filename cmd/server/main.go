package main

import (
	"context"
	"log"
	"time"

	"github.com/projhub/projhub-backend/config"
	"github.com/projhub/projhub-backend/internal/bootstrap"
	"github.com/projhub/projhub-backend/internal/projects/repository"
	"github.com/projhub/projhub-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Best effort: the hosted store usually ships the table already, and the
	// connection role may lack DDL rights.
	repo := repository.NewProjectRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Printf("Warning: couldn't verify projects schema: %v", err)
	}
	cancel()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "projhub-backend",
		Version:     cfg.App.Version,
		DB:          db,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
