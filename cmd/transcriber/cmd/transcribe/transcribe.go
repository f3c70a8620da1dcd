package transcribe

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepgram-transcriber/internal/app"
	"deepgram-transcriber/internal/app/audio"
	appconfig "deepgram-transcriber/internal/app/config"
	"deepgram-transcriber/internal/app/converter"
	"deepgram-transcriber/internal/app/converter/export"
	"deepgram-transcriber/internal/app/logging"
	"deepgram-transcriber/internal/config"
)

var (
	outputPath   string
	outputFormat string
	progress     bool
)

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to this file instead of stdout")
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "txt", "output format: txt, json or xlsx")
	Cmd.Flags().BoolVarP(&progress, "progress", "p", false, "show the spinner even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a local wav, mp3 or ogg file",
	Long: `Transcribe a local wav, mp3 or ogg file

- The file goes through the same checks as an upload (format, 100 MB limit)
- The transcript is printed to stdout unless --output is given
- xlsx needs --output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		logger, err := logging.NewLogger(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		format, err := export.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		if format == export.FormatExcel && outputPath == "" {
			return fmt.Errorf("--format xlsx requires --output")
		}

		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}
		if err := config.RequireAPIKeys(apiKeys); err != nil {
			return err
		}

		cfg, err := appconfig.LoadOrDefault(configPath)
		if err != nil {
			return err
		}

		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		audioFormat, err := audio.ValidateUpload(name, info.Size(), cfg.Upload.MaxBytes())
		if err != nil {
			return err
		}

		conv, err := app.InitializeProgressAwareConverter(
			app.ConfigPath(configPath),
			converter.ProgressConfig{Enabled: converter.ShouldShowProgress(progress), Writer: os.Stderr},
			logging.NewSlogLogger(logger),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize converter: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		t, err := conv.ConvertWithProgress(ctx, converter.Source{Path: path, FileName: name, Format: audioFormat})
		if err != nil {
			logger.Error("Transcription failed", zap.String("file", name), zap.Error(err))
			return err
		}

		if outputPath == "" {
			return export.Write(cmd.OutOrStdout(), format, t)
		}
		if err := export.WriteFile(outputPath, format, t); err != nil {
			return err
		}
		logger.Info("Transcript written", zap.String("path", outputPath), zap.String("format", string(format)))
		return nil
	},
}
