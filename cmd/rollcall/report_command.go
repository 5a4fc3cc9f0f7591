package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/internal/pipeline"
	"rollcall/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var flags pipelineFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the cleaned dataset",
		Long: "Deduplicate the selected snapshot and print headline metrics and " +
			"group breakdowns for the surviving records.",
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
				return writeJSON(cmd, reportPayload(snap.ID, out))
			}
			printReport(cmd, snap.ID, out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON")
	return cmd
}

type reportJSON struct {
	Snapshot             int64              `json:"snapshot"`
	Summary              report.Summary     `json:"summary"`
	Dedup                dedupJSON          `json:"dedup"`
	ByAgeGender          []report.CrossTab  `json:"by_age_gender"`
	ByAgeGenderDisabled  []report.CrossTab  `json:"by_age_gender_disabled"`
	ByLocation           []report.KeyCount  `json:"by_location"`
	ByLocationGender     []report.PairCount `json:"by_location_gender"`
	ByLocationAgeGroup   []report.PairCount `json:"by_location_age_group"`
	ByLocationDisability []report.PairCount `json:"by_location_disability"`
}

type dedupJSON struct {
	Raw             int `json:"raw"`
	PairRemoved     int `json:"pair_removed"`
	IdentityRemoved int `json:"identity_removed"`
	ContactRemoved  int `json:"contact_removed"`
	Cleaned         int `json:"cleaned"`
}

func reportPayload(snapshotID int64, out pipeline.Outcome) reportJSON {
	return reportJSON{
		Snapshot: snapshotID,
		Summary:  out.Summary,
		Dedup: dedupJSON{
			Raw:             out.Dedup.RawCount,
			PairRemoved:     out.Dedup.PairRemoved,
			IdentityRemoved: out.Dedup.IdentityRemoved,
			ContactRemoved:  out.Dedup.ContactRemoved,
			Cleaned:         out.Dedup.CleanedCount,
		},
		ByAgeGender:          out.CrossTabs,
		ByAgeGenderDisabled:  out.CrossTabsDisabled,
		ByLocation:           out.ByLocation,
		ByLocationGender:     out.ByLocationGender,
		ByLocationAgeGroup:   out.ByLocationAgeGroup,
		ByLocationDisability: out.ByLocationDisability,
	}
}

func printReport(cmd *cobra.Command, snapshotID int64, out pipeline.Outcome) {
	w := cmd.OutOrStdout()
	colorize := colorizeOutput(w)

	fmt.Fprintln(w, sectionHeader(fmt.Sprintf("Snapshot %d", snapshotID), colorize))
	fmt.Fprintln(w, renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Raw records", formatCount(out.Dedup.RawCount)},
			{"Removed (ID + phone)", formatCount(out.Dedup.PairRemoved)},
			{"Removed (ID)", formatCount(out.Dedup.IdentityRemoved)},
			{"Removed (phone)", formatCount(out.Dedup.ContactRemoved)},
			{"Cleaned records", formatCount(out.Dedup.CleanedCount)},
		},
		1,
	))

	s := out.Summary
	fmt.Fprintln(w, sectionHeader("Summary", colorize))
	fmt.Fprintln(w, renderTable(
		[]string{"Metric", "Count", "Share"},
		[][]string{
			{"Participants", formatCount(s.Total), ""},
			{"Youth", formatCount(s.Youth), formatPercent(s.YouthPct)},
			{"Adult", formatCount(s.Adult), ""},
			{"Female", formatCount(s.Female), formatPercent(s.FemalePct)},
			{"PWD (yes)", formatCount(s.DisabilityYes), formatPercent(s.DisabilityPct)},
		},
		1, 2,
	))

	if len(out.CrossTabs) > 0 {
		fmt.Fprintln(w, sectionHeader("Age group by gender", colorize))
		rows := make([][]string, 0, len(out.CrossTabs))
		for _, ct := range out.CrossTabs {
			rows = append(rows, []string{string(ct.AgeGroup), report.Label(ct.Gender), formatCount(ct.Count)})
		}
		fmt.Fprintln(w, renderTable([]string{"Age Group", "Gender", "Count"}, rows, 2))
	}

	if len(out.ByLocation) > 0 {
		fmt.Fprintln(w, sectionHeader("By location", colorize))
		rows := make([][]string, 0, len(out.ByLocation))
		for _, kc := range out.ByLocation {
			rows = append(rows, []string{report.Label(kc.Key), formatCount(kc.Count)})
		}
		fmt.Fprintln(w, renderTable([]string{"Location", "Count"}, rows, 1))
	}
}
