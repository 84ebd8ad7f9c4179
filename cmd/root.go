package cmd

import (
	"log/slog"
	"os"

	"glossconv/internal/config"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "glossconv",
	Short: "Convert interlinear glossed transcripts between LaTeX and ELAN",
	Long: `glossconv converts time-aligned, interlinear-glossed speech transcripts
between LaTeX tabularray documents (one table per utterance) and ELAN
annotation files (transcription, translation, gloss and comment tiers).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return config.LoadDotEnv(envFile)
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the configuration file and environment, then applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("jobs") {
		cfg.MaxConcurrent = jobs
	}
	if flags.Changed("templates") {
		cfg.TemplatesDir = templatesDir
	}
	return cfg, nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("conversion failed", "err", err)
	}
	return err
}

var (
	jobs         int
	templatesDir string
)

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with GLOSSCONV_* variables to load")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", defaults.MaxConcurrent, "max files converted concurrently")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates", "", "directory with preamble.tex.tmpl / subsection.tex.tmpl overrides")
}
