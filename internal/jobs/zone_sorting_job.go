package jobs

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// zoneSortingOperator is recorded as the acting agent for automated sorts.
const zoneSortingOperator = "system"

// ZoneSortingJob manages the scheduled sweep over sortable parcels.
// Runs every thirty seconds so that weighed parcels do not sit unsorted
// when operators skip the manual sort step.
type ZoneSortingJob struct {
	sortableHandler queries.GetSortableParcelsQueryHandler
	sortHandler     commands.SortBatchCommandHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewZoneSortingJob creates a new job for batch sorting.
// Uses GetSortableParcelsQueryHandler to find candidates and
// SortBatchCommandHandler to sort them.
func NewZoneSortingJob(
	sortableHandler queries.GetSortableParcelsQueryHandler,
	sortHandler commands.SortBatchCommandHandler,
	logger *slog.Logger,
) *ZoneSortingJob {
	return &ZoneSortingJob{
		sortableHandler: sortableHandler,
		sortHandler:     sortHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "zone_sorting_job"),
	}
}

// Start begins the zone sorting job to run every thirty seconds.
func (j *ZoneSortingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone sorting job started (running every thirty seconds)")
	return nil
}

// Stop stops the zone sorting job.
func (j *ZoneSortingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Zone sorting job stopped")
}

func (j *ZoneSortingJob) sweep(ctx context.Context) {
	candidates, err := j.sortableHandler.Handle(ctx, queries.NewGetSortableParcelsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Zone sorting job failed to load candidates", "error", err)
		return
	}
	if len(candidates) == 0 {
		return
	}

	parcelIDs := make([]kernel.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		parcelIDs = append(parcelIDs, candidate.ID)
	}

	cmd, err := commands.NewSortBatchCommand(parcelIDs, zoneSortingOperator)
	if err != nil {
		j.logger.ErrorContext(ctx, "Zone sorting job built an invalid batch", "error", err)
		return
	}

	outcomes, err := j.sortHandler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Zone sorting job failed", "error", err)
		return
	}

	sorted := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			// Parcels picked up by an operator mid-sweep fail with expected
			// business errors; those are not worth alerting on.
			j.logger.DebugContext(ctx, "Parcel skipped during sorting sweep",
				"parcel_id", outcome.ParcelID.String(), "error", outcome.Err)
			continue
		}
		sorted++
	}

	if sorted > 0 {
		j.logger.InfoContext(ctx, "Sorting sweep completed",
			"candidates", len(candidates), "sorted", sorted)
	}
}
