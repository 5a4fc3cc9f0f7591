package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rollcall/internal/config"
	"rollcall/internal/export"
	"rollcall/internal/logging"
	"rollcall/internal/pipeline"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var flags pipelineFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write cleaned data and summaries to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			opts, err := flags.options(cfg)
			if err != nil {
				return err
			}
			snap, ds, err := loadDataset(cmd, ctx, flags.snapshotID)
			if err != nil {
				return err
			}

			target, err := resolveExportPath(cfg, outPath)
			if err != nil {
				return err
			}

			out := pipeline.Run(ds, opts)
			if err := export.WriteWorkbook(target, export.Tables(out)); err != nil {
				return fmt.Errorf("export snapshot %d: %w", snap.ID, err)
			}

			logger.Info("workbook exported",
				logging.Int64("snapshot", snap.ID),
				logging.String("path", target),
				logging.Int("records", len(out.Canonical)),
			)

			w := cmd.OutOrStdout()
			colorize := colorizeOutput(w)
			fmt.Fprintln(w, okLine(fmt.Sprintf("Wrote %s (%d cleaned records)", target, len(out.Canonical)), colorize))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Workbook destination (default: export_dir/rollcall_<timestamp>.xlsx)")
	return cmd
}

func resolveExportPath(cfg *config.Config, outPath string) (string, error) {
	if outPath == "" {
		name := fmt.Sprintf("rollcall_%s.xlsx", time.Now().Format("20060102_150405"))
		return filepath.Join(cfg.Paths.ExportDir, name), nil
	}
	expanded, err := config.ExpandPath(outPath)
	if err != nil {
		return "", fmt.Errorf("resolve export path: %w", err)
	}
	return expanded, nil
}
