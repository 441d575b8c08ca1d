package cmd

import (
	"fmt"
	"os"

	"github.com/WKLive/jelastic-inventory/internal/cache"
	"github.com/WKLive/jelastic-inventory/internal/config"
	"github.com/WKLive/jelastic-inventory/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your jelastic.yml configuration",
	Long: `Check that the provider endpoint, credentials, cache directory and
node-class mapping are usable before Ansible runs the inventory.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(),
			"run 'jelastic-inventory init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating configuration..."))

	passed := 0
	failed := 0
	check := func(ok bool, field, okDetail, message, suggestion string) {
		if ok {
			ui.ValidationOK(field, okDetail)
			passed++
		} else {
			ui.ValidationErr(field, message, suggestion)
			failed++
		}
	}

	check(cfg.AppURL != "", "app_url", cfg.AppURL,
		"app_url is required",
		"set it in jelastic.yml or export JELASTIC_APP_URL")
	check(cfg.AppID != "", "app_id", cfg.AppID,
		"app_id is required",
		"set the application id of your provider account")
	check(cfg.Username != "", "username", "set from environment",
		"username is not set",
		"export JELASTIC_USER_ID")
	check(cfg.Password != "", "password", "set from environment",
		"password is not set",
		"export JELASTIC_USER_PASSWORD")
	check(cfg.CacheTTL > 0, "cache_ttl", fmt.Sprintf("%ds", cfg.CacheTTL),
		"cache_ttl must be positive",
		"a zero TTL would refresh on every run")

	if err := cache.EnsureDir(cfg.CacheDir); err != nil {
		ui.ValidationErr("cache_dir", err.Error(), "point cache_dir at a writable location")
		failed++
	} else {
		ui.ValidationOK("cache_dir", cfg.CacheDir)
		passed++
	}

	malformed := 0
	for i, m := range cfg.NodeClasses {
		if m.Prefix == "" || m.Class == "" {
			ui.ValidationErr(fmt.Sprintf("node_classes[%d]", i),
				"both prefix and class are required",
				"remove the entry or fill in both fields")
			malformed++
			failed++
		}
	}
	if len(cfg.NodeClasses) > 0 && malformed == 0 {
		ui.ValidationOK("node_classes", fmt.Sprintf("%d mappings", len(cfg.NodeClasses)))
		passed++
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}
	fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	return fmt.Errorf("%d validation errors", failed)
}
