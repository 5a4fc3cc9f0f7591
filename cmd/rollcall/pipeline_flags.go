package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/internal/config"
	"rollcall/internal/enrich"
	"rollcall/internal/pipeline"
	"rollcall/internal/records"
	"rollcall/internal/snapshot"
)

// pipelineFlags carries the filter options shared by report, audit, and
// export.
type pipelineFlags struct {
	snapshotID int64
	from       string
	to         string
	location   string
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.snapshotID, "snapshot", 0, "Snapshot ID to read (default: latest)")
	cmd.Flags().StringVar(&f.from, "from", "", "Keep records on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Keep records on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.location, "location", "", "Keep records from this location only")
}

func (f *pipelineFlags) options(cfg *config.Config) (pipeline.Options, error) {
	from, err := parseDateFlag("from", f.from)
	if err != nil {
		return pipeline.Options{}, err
	}
	to, err := parseDateFlag("to", f.to)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		From:     from,
		To:       to,
		Location: f.location,
		AgeBounds: enrich.AgeBounds{
			Min: cfg.Demographics.YouthMinAge,
			Max: cfg.Demographics.YouthMaxAge,
		},
	}, nil
}

// loadDataset reads the requested snapshot, or the latest when no ID is given.
func loadDataset(cmd *cobra.Command, ctx *commandContext, snapshotID int64) (*snapshot.Snapshot, records.Dataset, error) {
	store, err := ctx.openStore()
	if err != nil {
		return nil, records.Dataset{}, err
	}
	defer store.Close()

	if snapshotID > 0 {
		snap, ds, err := store.Get(cmd.Context(), snapshotID)
		if err != nil {
			if errors.Is(err, snapshot.ErrNotFound) {
				return nil, records.Dataset{}, fmt.Errorf("snapshot %d not found; run 'rollcall snapshots list'", snapshotID)
			}
			return nil, records.Dataset{}, err
		}
		return snap, ds, nil
	}

	snap, ds, err := store.Latest(cmd.Context())
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil, records.Dataset{}, errors.New("no snapshots found; run 'rollcall ingest' first")
		}
		return nil, records.Dataset{}, err
	}
	return snap, ds, nil
}
