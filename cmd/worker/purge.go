package main

import (
	"context"
	"flag"
	"log"

	"github.com/canvashq/canvas-backend/config"
)

// RunPurge executes one retention pass: archive (when configured) and
// hard-delete projects soft-deleted longer ago than the retention window.
func RunPurge(args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fs := flag.NewFlagSet("purge", flag.ExitOnError)
	olderThan := fs.Int("older-than", cfg.Retention.PurgeAfterDays, "purge projects soft-deleted more than N days ago")
	dryRun := fs.Bool("dry-run", false, "log what would be purged without deleting")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("flags: %v", err)
	}

	purger, db := buildPurger(cfg)
	defer db.Close()
	purger.DryRun = *dryRun

	report, err := purger.Run(context.Background(), *olderThan)
	if err != nil {
		log.Fatalf("purge: %v", err)
	}
	log.Printf("[info] purge finished: scanned=%d archived=%d deleted=%d failed=%d",
		report.Scanned, report.Archived, report.Deleted, report.Failed)
}
