package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanTurko/mws-sdk-go/feeds"
)

func (a *app) feedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "Submit feeds",
	}
	cmd.AddCommand(a.feedsSubmitCmd())
	return cmd
}

func (a *app) feedsSubmitCmd() *cobra.Command {
	var (
		marketplaces []string
		purge        bool
		contentType  string
	)

	cmd := &cobra.Command{
		Use:     "submit <feed-type> <file>",
		Short:   "Upload a feed document",
		Example: "  mwsctl feeds submit _POST_PRODUCT_DATA_ products.xml --marketplace ATVPDKIKX0DER",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[1]) //nolint:gosec // path comes from the command line
			if err != nil {
				return fmt.Errorf("reading feed file: %w", err)
			}
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			svc := feeds.NewSubmitFeedService(client).
				FeedType(feeds.FeedType(args[0])).
				Body(body).
				MarketplaceIDs(marketplaces...).
				RawOutput(a.raw())
			if cmd.Flags().Changed("purge") {
				svc.PurgeAndReplace(purge)
			}
			if contentType != "" {
				svc.ContentType(contentType)
			}

			res, err := svc.Do(cmd.Context())
			if err != nil {
				return err
			}
			if a.raw() {
				return writeRaw(cmd.OutOrStdout(), res)
			}

			list, err := feeds.ParseSubmissions(res)
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("SUBMISSION\tTYPE\tSTATUS\n")
			for _, s := range list.Submissions {
				tw.writef("%s\t%s\t%s\n", s.FeedSubmissionID, s.FeedType, s.ProcessingStatus)
			}
			return tw.finish()
		},
	}

	cmd.Flags().StringSliceVar(&marketplaces, "marketplace", nil, "marketplace id (repeatable)")
	cmd.Flags().BoolVar(&purge, "purge", false, "set PurgeAndReplace")
	cmd.Flags().StringVar(&contentType, "content-type", "", "body content type (default text/xml)")

	return cmd
}
