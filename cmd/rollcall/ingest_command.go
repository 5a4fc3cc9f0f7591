package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/internal/ingest"
	"rollcall/internal/logging"
	"rollcall/internal/snapshot"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [source]",
		Short: "Fetch registration records and save a snapshot",
		Long: "Fetch registration records from a CSV file or sheet URL and save them " +
			"as a snapshot. With no argument the configured sheet_url is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			source := ""
			if len(args) > 0 {
				source = args[0]
			}

			lock := snapshot.NewIngestLock(cfg.Paths.DataDir)
			if err := lock.Acquire(); err != nil {
				if errors.Is(err, snapshot.ErrLocked) {
					return fmt.Errorf("%w (lock file: %s)", err, lock.Path())
				}
				return err
			}
			defer func() { _ = lock.Release() }()

			ds, label, err := ingest.Load(cmd.Context(), cfg, source)
			if label == "" {
				label = source
			}
			if err != nil {
				logger.Error("ingest failed", logging.String("source", label), logging.Error(err))
				return fmt.Errorf("ingest %s: %w", label, err)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.Save(cmd.Context(), label, ds)
			if err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}

			logger.Info("snapshot saved",
				logging.Int64("snapshot", snap.ID),
				logging.String("ingest_id", snap.IngestID),
				logging.String("source", label),
				logging.Int("records", snap.RecordCount),
			)
			logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Paths.LogDir, "*.log")

			out := cmd.OutOrStdout()
			colorize := colorizeOutput(out)
			fmt.Fprintln(out, okLine(fmt.Sprintf("Saved snapshot %d (%d records from %s)", snap.ID, snap.RecordCount, label), colorize))

			missing := missingColumns(ds)
			if len(missing) > 0 {
				fmt.Fprintf(out, "Missing columns: %v (dependent checks will be skipped)\n", missing)
			}
			return nil
		},
	}
}
