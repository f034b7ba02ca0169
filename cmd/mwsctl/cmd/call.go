package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanTurko/mws-sdk-go/mws"
)

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <section>",
		Short:   "Show the operational status of an API section",
		Example: "  mwsctl status Orders",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			section, err := lookupSection(client, args[0])
			if err != nil {
				return err
			}
			ep, _ := client.Registry().Lookup(section)
			if ep.PathSegment == "" {
				return fmt.Errorf("section %s has no GetServiceStatus operation", section)
			}

			req := mws.NewRequest(section, "GetServiceStatus")
			req.RawOutput = a.raw()
			res, err := client.Do(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.raw() {
				return writeRaw(cmd.OutOrStdout(), res)
			}

			st, err := mws.ParseServiceStatus(res)
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Section:\t%s\n", section)
			tw.writef("Status:\t%s\n", st.Status)
			if !st.Timestamp.IsZero() {
				tw.writef("Timestamp:\t%s\n", st.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
			}
			for _, m := range st.Messages {
				tw.writef("Message:\t%s\n", m)
			}
			return tw.finish()
		},
	}
}

func (a *app) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <section> <action> [key=value...]",
		Short: "Print the string to sign and the signature without sending",
		Example: `  mwsctl sign Products ListMatchingProducts MarketplaceId=ATVPDKIKX0DER Query=kindle
  mwsctl sign Reports GetReportCount`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			req, err := buildRequest(client, args)
			if err != nil {
				return err
			}
			signed, err := client.Sign(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s\n\nSignature: %s\n", signed.StringToSign, signed.Signature); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "Query:     %s\n", signed.Encoded())
			return err
		},
	}
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <section> <action> [key=value...]",
		Short: "Send an arbitrary MWS operation and print the response",
		Long: "call sends the action with the given parameters. The response is\n" +
			"printed as JSON unless --raw is set.",
		Example: "  mwsctl call Sellers ListMarketplaceParticipations",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			req, err := buildRequest(client, args)
			if err != nil {
				return err
			}
			req.RawOutput = a.raw()
			res, err := client.Do(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.raw() {
				return writeRaw(cmd.OutOrStdout(), res)
			}
			return printJSON(cmd.OutOrStdout(), res.Tree.Map())
		},
	}
}

func buildRequest(client *mws.Client, args []string) (*mws.Request, error) {
	section, err := lookupSection(client, args[0])
	if err != nil {
		return nil, err
	}
	req := mws.NewRequest(section, args[1])
	for _, kv := range args[2:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", kv)
		}
		req.Params.Set(k, v)
	}
	return req, nil
}

// lookupSection matches name against the registry case-insensitively.
func lookupSection(client *mws.Client, name string) (mws.Section, error) {
	sections := client.Registry().Sections()
	for _, s := range sections {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return "", fmt.Errorf("unknown section %q (known: %s)", name, strings.Join(names, ", "))
}
