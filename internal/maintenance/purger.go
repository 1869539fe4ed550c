package maintenance

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Archiver snapshots a project before it is hard-deleted. Nil disables
// archival.
type Archiver interface {
	Archive(ctx context.Context, p PurgeCandidate) error
}

// ExpiredLister is the read side of the purge store.
type ExpiredLister interface {
	ListExpired(ctx context.Context, cutoff time.Time) ([]PurgeCandidate, error)
	HardDelete(ctx context.Context, projectID string) (bool, error)
}

// Purger hard-deletes projects that have stayed soft-deleted past the
// retention window, archiving each one first when an archiver is set.
type Purger struct {
	store    ExpiredLister
	archiver Archiver
	DryRun   bool
}

func NewPurger(store ExpiredLister, archiver Archiver) *Purger {
	return &Purger{store: store, archiver: archiver}
}

// PurgeReport summarizes one purge run.
type PurgeReport struct {
	Scanned  int
	Archived int
	Deleted  int
	Failed   int
}

// Run purges everything soft-deleted more than olderThanDays ago. A project
// whose archival fails is kept; it will be retried on the next run.
func (p *Purger) Run(ctx context.Context, olderThanDays int) (PurgeReport, error) {
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	candidates, err := p.store.ListExpired(ctx, cutoff)
	if err != nil {
		return PurgeReport{}, fmt.Errorf("purge run: %w", err)
	}

	report := PurgeReport{Scanned: len(candidates)}
	for _, cand := range candidates {
		if p.DryRun {
			log.Printf("[cron] dry-run: would purge project=%s deleted_at=%s", cand.PublicID, cand.DeletedAt.Format(time.RFC3339))
			continue
		}

		if p.archiver != nil {
			if err := p.archiver.Archive(ctx, cand); err != nil {
				log.Printf("[warn] archive failed for project=%s: %v", cand.PublicID, err)
				report.Failed++
				continue
			}
			report.Archived++
		}

		deleted, err := p.store.HardDelete(ctx, cand.ID)
		if err != nil {
			log.Printf("[warn] hard delete failed for project=%s: %v", cand.PublicID, err)
			report.Failed++
			continue
		}
		if deleted {
			report.Deleted++
		}
	}

	log.Printf("[cron] purge done: scanned=%d archived=%d deleted=%d failed=%d dry_run=%v",
		report.Scanned, report.Archived, report.Deleted, report.Failed, p.DryRun)
	return report, nil
}
