package cmd

import (
	"github.com/spf13/cobra"

	"github.com/IvanTurko/mws-sdk-go/reports"
)

func (a *app) reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Download reports",
	}
	cmd.AddCommand(a.reportsGetCmd())
	return cmd
}

func (a *app) reportsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <report-id>",
		Short: "Download a report",
		Long: "get downloads the report. Tab-separated reports are re-printed as\n" +
			"aligned columns unless --raw is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			res, err := reports.NewGetReportService(client).ReportID(args[0]).Do(cmd.Context())
			if err != nil {
				return err
			}
			if a.raw() {
				return writeRaw(cmd.OutOrStdout(), res)
			}

			ff, err := reports.ParseReport(res)
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			writeRow(tw, ff.Header)
			for _, row := range ff.Rows {
				writeRow(tw, row)
			}
			return tw.finish()
		},
	}
}

func writeRow(tw *tabWriter, cells []string) {
	for i, c := range cells {
		if i > 0 {
			tw.writef("\t")
		}
		tw.writef("%s", c)
	}
	tw.writef("\n")
}
