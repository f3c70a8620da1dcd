package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"deepgram-transcriber/cmd/transcriber/cmd/config"
	"deepgram-transcriber/cmd/transcriber/cmd/serve"
	"deepgram-transcriber/cmd/transcriber/cmd/transcribe"
	"deepgram-transcriber/cmd/transcriber/cmd/version"
	appconfig "deepgram-transcriber/internal/app/config"
)

var (
	Verbose    bool
	ConfigPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriber",
	Short: "Transcribe wav, mp3 and ogg audio with Deepgram",
	Long: `Transcribe wav, mp3 and ogg audio with Deepgram.

- serve starts the upload page and the JSON API
- transcribe runs a single local file through the same pipeline`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", appconfig.GetDefaultConfigPath(),
		"providers config file, built-in Deepgram defaults are used when it does not exist")
}
