package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "deepgram-transcriber/internal/app/config"
)

var force bool

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	Cmd.AddCommand(initCmd)
	Cmd.AddCommand(validateCmd)
}

// Cmd groups the providers config helpers
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the providers configuration file",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default Deepgram configuration",
	Long: `Write the default Deepgram configuration to the --config path.

The API key is stored as ${DEEPGRAM_API_KEY} and resolved at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		if err := appconfig.SaveProvidersConfig(appconfig.CreateDefaultConfig(), path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		cfg, err := appconfig.LoadProvidersConfig(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (default provider %s, upload limit %d MB)\n",
			path, cfg.DefaultProvider, cfg.Upload.MaxSizeMB)
		return nil
	},
}
