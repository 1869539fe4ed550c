package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/canvashq/canvas-backend/config"
	"github.com/canvashq/canvas-backend/internal/maintenance"
	cronjob "github.com/canvashq/canvas-backend/internal/maintenance/cron"
	"github.com/canvashq/canvas-backend/internal/storage/postgres"
)

// RunSchedule keeps the purge running on the configured cron spec until the
// process is told to stop.
func RunSchedule(args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	spec := fs.String("spec", cfg.Retention.CronSpec, "six-field cron spec for the purge job")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("flags: %v", err)
	}

	purger, db := buildPurger(cfg)
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cronjob.NewScheduler(purger, *spec, cfg.Retention.PurgeAfterDays)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
}

// buildPurger wires the database/sql store and, when a bucket is
// configured, the S3 archiver.
func buildPurger(cfg *config.Config) (*maintenance.Purger, *sql.DB) {
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var archiver maintenance.Archiver
	if cfg.Retention.ArchiveBucket != "" {
		a, err := maintenance.NewS3Archiver(context.Background(), cfg.Retention.ArchiveBucket, cfg.Retention.ArchiveRegion)
		if err != nil {
			log.Fatalf("archiver: %v", err)
		}
		archiver = a
	} else {
		log.Println("[warn] RETENTION_ARCHIVE_BUCKET not set; purging without archival")
	}

	return maintenance.NewPurger(maintenance.NewPurgeStore(db), archiver), db
}
