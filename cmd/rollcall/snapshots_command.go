package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSnapshotsCommand(ctx *commandContext) *cobra.Command {
	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Manage saved snapshots",
	}

	snapshotsCmd.AddCommand(newSnapshotsListCommand(ctx))
	snapshotsCmd.AddCommand(newSnapshotsDeleteCommand(ctx))
	snapshotsCmd.AddCommand(newSnapshotsClearCommand(ctx))
	return snapshotsCmd
}

func newSnapshotsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				type snapJSON struct {
					ID         int64  `json:"id"`
					IngestID   string `json:"ingest_id"`
					Source     string `json:"source"`
					IngestedAt string `json:"ingested_at"`
					Records    int    `json:"records"`
				}
				payload := make([]snapJSON, 0, len(snaps))
				for _, snap := range snaps {
					payload = append(payload, snapJSON{
						ID:         snap.ID,
						IngestID:   snap.IngestID,
						Source:     snap.Source,
						IngestedAt: snap.IngestedAt.Format("2006-01-02 15:04:05"),
						Records:    snap.RecordCount,
					})
				}
				return writeJSON(cmd, payload)
			}

			w := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(w, "No snapshots saved; run 'rollcall ingest' first.")
				return nil
			}

			rows := make([][]string, 0, len(snaps))
			for _, snap := range snaps {
				rows = append(rows, []string{
					strconv.FormatInt(snap.ID, 10),
					snap.IngestedAt.Format("2006-01-02 15:04:05"),
					snap.Source,
					formatCount(snap.RecordCount),
				})
			}
			fmt.Fprintln(w, renderTable([]string{"ID", "Ingested", "Source", "Records"}, rows, 0, 3))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON")
	return cmd
}

func newSnapshotsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse snapshot id %q: %w", args[0], err)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("snapshot %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %d\n", id)
			return nil
		},
	}
}

func newSnapshotsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cleared, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d snapshot(s)\n", cleared)
			return nil
		},
	}
}
