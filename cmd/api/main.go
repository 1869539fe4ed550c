package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/canvashq/canvas-backend/config"
	"github.com/canvashq/canvas-backend/internal/auth"
	"github.com/canvashq/canvas-backend/internal/bootstrap"
	"github.com/canvashq/canvas-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	var firebaseAuth *fbauth.Client
	if cfg.Auth.Mode == "firebase" {
		firebaseAuth, err = auth.InitializeFirebase(&cfg.Auth)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("[warn] AUTH_MODE=dev: trusting identity headers")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "canvas-backend",
		Cfg:          cfg,
		DB:           db,
		Redis:        rdb,
		FirebaseAuth: firebaseAuth,
	})

	log.Printf("[info] listening on :%s (env=%s)", cfg.Server.Port, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
