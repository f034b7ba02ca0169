// Package cmd implements the mwsctl commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IvanTurko/mws-sdk-go/internal/config"
	"github.com/IvanTurko/mws-sdk-go/internal/httpx"
	"github.com/IvanTurko/mws-sdk-go/internal/logger"
	"github.com/IvanTurko/mws-sdk-go/metrics"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/transport"
)

// app carries what every command shares. Tests swap httpClient and now.
type app struct {
	v          *viper.Viper
	httpClient transport.HTTPClient
	now        func() time.Time
	registry   *prometheus.Registry
}

// Execute runs mwsctl with os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New(), now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mwsctl",
		Short: "Call Amazon Marketplace Web Service from the terminal",
		Long: "mwsctl signs and sends Amazon MWS requests.\n" +
			"Credentials come from the config file or MWS_ACCESS_KEY_ID,\n" +
			"MWS_SECRET_KEY, MWS_SELLER_ID and MWS_AUTH_TOKEN.",
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.v.GetBool("metrics") || a.registry == nil {
				return nil
			}
			return printMetrics(cmd.ErrOrStderr(), a.registry)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("host", "", "MWS host (default "+mws.DefaultHost+")")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.Bool("raw", false, "print response bodies as received")
	flags.Bool("metrics", false, "print request metrics to stderr on exit")

	for _, name := range []string{"config", "host", "log-level", "log-format", "raw", "metrics"} {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}
	a.v.SetEnvPrefix("MWS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.statusCmd())
	root.AddCommand(a.signCmd())
	root.AddCommand(a.callCmd())
	root.AddCommand(a.ordersCmd())
	root.AddCommand(a.reportsCmd())
	root.AddCommand(a.feedsCmd())

	return root
}

// loadConfig merges the config file with flags and MWS_* variables, the
// latter taking precedence.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.Read(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	override := func(dst *string, key string) {
		if s := a.v.GetString(key); s != "" {
			*dst = s
		}
	}
	override(&cfg.Credentials.AccessKeyID, "access_key_id")
	override(&cfg.Credentials.SecretKey, "secret_key")
	override(&cfg.Credentials.SellerID, "seller_id")
	override(&cfg.Credentials.AuthToken, "auth_token")
	override(&cfg.Host, "host")
	override(&cfg.Logging.Level, "log-level")
	override(&cfg.Logging.Format, "log-format")
	if ids := a.v.GetString("marketplace_ids"); ids != "" {
		cfg.MarketplaceIDs = strings.Split(ids, ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (a *app) newClient(cmd *cobra.Command) (*mws.Client, *config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var h transport.HTTPClient = a.httpClient
	if h == nil {
		h = httpx.NewDefaultHTTPClient()
	}
	if a.v.GetBool("metrics") {
		a.registry = prometheus.NewRegistry()
		h = metrics.NewInstrumentedClient(h, a.registry)
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	client, err := mws.NewClient(cfg.Credentials.MWS(),
		mws.WithHost(cfg.Host),
		mws.WithTimeout(cfg.Timeout),
		mws.WithHTTPClient(h),
		mws.WithLogger(log),
		mws.WithNowFunc(a.now),
	)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("client ready", "host", cfg.Host, "seller_id", cfg.Credentials.SellerID)
	return client, cfg, nil
}

func (a *app) raw() bool {
	return a.v.GetBool("raw")
}

func writeRaw(w io.Writer, res *mws.Result) error {
	_, err := w.Write(res.Raw)
	return err
}
