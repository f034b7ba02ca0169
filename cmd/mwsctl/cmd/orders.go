package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanTurko/mws-sdk-go/orders"
)

func (a *app) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Query orders",
	}
	cmd.AddCommand(a.ordersListCmd())
	return cmd
}

func (a *app) ordersListCmd() *cobra.Command {
	var (
		marketplaces []string
		since        time.Duration
		statuses     []string
		maxResults   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders created within a recent window",
		Example: `  mwsctl orders list --marketplace ATVPDKIKX0DER --since 48h
  mwsctl orders list --status Unshipped --status PartiallyShipped`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cfg, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			if len(marketplaces) == 0 {
				marketplaces = cfg.MarketplaceIDs
			}
			if len(marketplaces) == 0 {
				return errors.New("no marketplace: pass --marketplace or set marketplace_ids")
			}

			svc := orders.NewListOrdersService(client).
				MarketplaceIDs(marketplaces...).
				CreatedAfter(a.now().Add(-since)).
				RawOutput(a.raw())
			if len(statuses) > 0 {
				st := make([]orders.OrderStatus, len(statuses))
				for i, s := range statuses {
					st[i] = orders.OrderStatus(s)
				}
				svc.OrderStatuses(st...)
			}
			if maxResults > 0 {
				svc.MaxResultsPerPage(maxResults)
			}

			res, err := svc.Do(cmd.Context())
			if err != nil {
				return err
			}
			if a.raw() {
				return writeRaw(cmd.OutOrStdout(), res)
			}

			list, next, err := orders.ParseOrders(res)
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("ORDER\tPURCHASED\tSTATUS\tCHANNEL\tTOTAL\n")
			for _, o := range list {
				total := "-"
				if o.OrderTotal != nil {
					total = o.OrderTotal.String()
				}
				tw.writef("%s\t%s\t%s\t%s\t%s\n",
					o.AmazonOrderID,
					o.PurchaseDate.Format(time.RFC3339),
					o.OrderStatus,
					o.FulfillmentChannel,
					total,
				)
			}
			if next != "" {
				tw.writef("\nNextToken:\t%s\n", next)
			}
			return tw.finish()
		},
	}

	cmd.Flags().StringSliceVar(&marketplaces, "marketplace", nil, "marketplace id (repeatable)")
	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "list orders created within this window")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "order status filter (repeatable)")
	cmd.Flags().IntVar(&maxResults, "max", 0, "MaxResultsPerPage (1-100)")

	return cmd
}
