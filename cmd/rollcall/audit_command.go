package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rollcall/internal/conflict"
	"rollcall/internal/pipeline"
	"rollcall/internal/records"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var flags pipelineFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List conflicting and duplicated registrations",
		Long: "Inspect the selected snapshot for IDs shared across phone numbers, " +
			"phone numbers shared across IDs, and exact ID+phone duplicates. " +
			"Audit rows come from the raw snapshot, before deduplication.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
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

			out := pipeline.Run(ds, opts)
			if jsonOut {
				return writeJSON(cmd, auditPayload(snap.ID, out.Audit))
			}
			printAudit(cmd, snap.ID, out.Audit)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON")
	return cmd
}

type auditJSON struct {
	Snapshot                int64       `json:"snapshot"`
	SameIdentityDiffContact []auditRow  `json:"same_id_diff_phone"`
	SameContactDiffIdentity []auditRow  `json:"same_phone_diff_id"`
	ExactDuplicates         []auditRow  `json:"exact_duplicates"`
	Counts                  auditCounts `json:"counts"`
}

type auditCounts struct {
	SameIdentity int `json:"same_id_diff_phone"`
	SameContact  int `json:"same_phone_diff_id"`
	Exact        int `json:"exact_duplicates"`
}

type auditRow struct {
	Row      int    `json:"row"`
	Identity string `json:"national_id"`
	Contact  string `json:"phone"`
	Location string `json:"location,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

func auditPayload(snapshotID int64, rep conflict.Report) auditJSON {
	sameID, sameContact, exact := rep.Counts()
	return auditJSON{
		Snapshot:                snapshotID,
		SameIdentityDiffContact: auditRows(rep.SameIdentityDiffContact),
		SameContactDiffIdentity: auditRows(rep.SameContactDiffIdentity),
		ExactDuplicates:         auditRows(rep.ExactDuplicates),
		Counts: auditCounts{
			SameIdentity: sameID,
			SameContact:  sameContact,
			Exact:        exact,
		},
	}
}

func auditRows(rows []records.Record) []auditRow {
	out := make([]auditRow, 0, len(rows))
	for _, rec := range rows {
		out = append(out, auditRow{
			Row:      rec.Row,
			Identity: rec.IdentityKey,
			Contact:  rec.ContactKey,
			Location: rec.Location,
			Gender:   rec.Gender,
		})
	}
	return out
}

func printAudit(cmd *cobra.Command, snapshotID int64, rep conflict.Report) {
	w := cmd.OutOrStdout()
	colorize := colorizeOutput(w)
	sameID, sameContact, exact := rep.Counts()

	fmt.Fprintln(w, sectionHeader(fmt.Sprintf("Snapshot %d audit", snapshotID), colorize))
	fmt.Fprintf(w, "Same ID, different phone: %d rows\n", sameID)
	fmt.Fprintf(w, "Same phone, different ID: %d rows\n", sameContact)
	fmt.Fprintf(w, "Exact ID+phone duplicates: %d rows\n", exact)

	printAuditSection(w, "Same ID, different phone", rep.SameIdentityDiffContact, colorize)
	printAuditSection(w, "Same phone, different ID", rep.SameContactDiffIdentity, colorize)
	printAuditSection(w, "Exact duplicates", rep.ExactDuplicates, colorize)
}

func printAuditSection(w io.Writer, title string, rows []records.Record, colorize bool) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, sectionHeader(title, colorize))
	fmt.Fprintln(w, renderTable(recordTableHeader, recordTableRows(rows), 0, 5))
}
