package cmd

import (
	"fmt"
	"os"

	"github.com/WKLive/jelastic-inventory/internal/ui"
	"github.com/WKLive/jelastic-inventory/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a jelastic.yml config file interactively",
	Long: `Ask for the provider endpoint, cache and SSH-gateway settings, then
write a jelastic.yml config file. Credentials stay in the environment
(JELASTIC_USER_ID / JELASTIC_USER_PASSWORD) and are never stored.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "jelastic.yml"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	detection := wizard.Detect()

	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("jelastic-inventory validate"))
	fmt.Printf("           %s\n", ui.Hint("then wire it into ansible with -i jelastic-inventory"))

	return nil
}
