package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/WKLive/jelastic-inventory/internal/config"
	"github.com/WKLive/jelastic-inventory/internal/inventory"
	"github.com/WKLive/jelastic-inventory/internal/logger"
	"github.com/WKLive/jelastic-inventory/internal/provider"
	"github.com/WKLive/jelastic-inventory/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	verbose      bool
	listHosts    bool
	hostAddress  string
	refreshCache bool
)

var rootCmd = &cobra.Command{
	Use:   "jelastic-inventory",
	Short: "Ansible dynamic inventory for Jelastic environments",
	Long: `jelastic-inventory queries a Jelastic-style PaaS API and emits an Ansible
dynamic inventory: hosts grouped by environment domain, node type and node
class, with per-host SSH gateway variables.

Results are cached on disk; within the configured TTL repeated runs serve
the cached snapshot without contacting the provider.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInventory,
}

// Execute runs the CLI. Errors have already been written to stderr.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: jelastic.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	rootCmd.Flags().BoolVar(&listHosts, "list", true, "emit the full grouped inventory (default)")
	rootCmd.Flags().StringVar(&hostAddress, "host", "", "emit the variables of a single host address")
	rootCmd.Flags().BoolVar(&refreshCache, "refresh-cache", false, "force a provider refresh, bypassing the cache TTL")
}

func initConfig() {
	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	case os.Getenv("JELASTIC_CONFIG") != "":
		viper.SetConfigFile(os.Getenv("JELASTIC_CONFIG"))
	default:
		viper.SetConfigName("jelastic")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ansible")
	}

	// credentials are environment-only; the URL may come from either place
	_ = viper.BindEnv("app_url", "JELASTIC_APP_URL")
	_ = viper.BindEnv("username", "JELASTIC_USER_ID")
	_ = viper.BindEnv("password", "JELASTIC_USER_PASSWORD")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

func runInventory(cmd *cobra.Command, args []string) error {
	log := logger.New(verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(),
			"run 'jelastic-inventory init' to create a config file"))
		return err
	}

	svc := inventory.NewService(cfg, provider.NewClient(cfg), log)

	if hostAddress != "" {
		return printHost(svc, hostAddress)
	}
	return printList(svc, refreshCache)
}

func printList(svc *inventory.Service, force bool) error {
	out, err := svc.List(force)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Building inventory failed", err.Error(),
			"check JELASTIC_USER_ID / JELASTIC_USER_PASSWORD and app_url"))
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printHost(svc *inventory.Service, address string) error {
	hv, err := svc.HostInfo(address)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Host lookup failed", err.Error(), ""))
		return err
	}
	if hv == nil {
		// unknown host is not an error for Ansible
		fmt.Println("{}")
		return nil
	}

	out, err := json.MarshalIndent(hv, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
