package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"glossconv/internal/config"
	"glossconv/internal/templates"
	"glossconv/internal/worker"

	"github.com/spf13/cobra"
)

var eaf2texCmd = &cobra.Command{
	Use:   "eaf2tex <export.txt|file.eaf>...",
	Short: "Convert ELAN exports to LaTeX interlinear tables",
	Long: `Read a tab-delimited ELAN export (or an .eaf document), fuse the tiers by
time interval and write one LaTeX table per utterance. Session metadata is
taken from flags, the configuration file, GLOSSCONV_* variables or, with
--interactive, from prompts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEaf2tex,
}

var (
	texOutput   string
	interactive bool
	meta        config.Metadata
	languages   string
)

func init() {
	f := eaf2texCmd.Flags()
	f.StringVarP(&texOutput, "output", "o", "", "output .tex path (default: <input>.tex, single input only)")
	f.BoolVarP(&interactive, "interactive", "i", false, "prompt for metadata that is still missing")
	f.StringVar(&meta.Informant, "informant", "", "informant code")
	f.StringVar(&meta.Expeditioner, "expeditioner", "", "expeditioner code")
	f.StringVar(&meta.ExpeditionDate, "expedition-date", "", "expedition date")
	f.StringVar(&meta.WhoElse, "who-else", "", "other people present")
	f.StringVar(&meta.Theme, "theme", "", "approximate theme")
	f.StringVar(&languages, "languages", "", `babel languages, comma separated; the last is the main one (default "english, russian")`)

	rootCmd.AddCommand(eaf2texCmd)
}

func runEaf2tex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyMetadataFlags(cmd, cfg)

	inputs, err := resolveInputs(args, ".txt", ".eaf")
	if err != nil {
		return err
	}
	if err := checkOutput(texOutput, len(inputs)); err != nil {
		return err
	}

	if interactive {
		if err := promptMetadata(os.Stdin, os.Stderr, &cfg.Metadata); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.RunBatch(ctx, inputs, worker.Options{
		OutputPath: texOutput,
		Direction:  worker.ToTeX,
		Config:     cfg,
		Templates:  templates.NewCache(cfg.TemplatesDir),
	})
}

func applyMetadataFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("informant", &cfg.Informant, meta.Informant)
	set("expeditioner", &cfg.Expeditioner, meta.Expeditioner)
	set("expedition-date", &cfg.ExpeditionDate, meta.ExpeditionDate)
	set("who-else", &cfg.WhoElse, meta.WhoElse)
	set("theme", &cfg.Theme, meta.Theme)
	if flags.Changed("languages") {
		cfg.Languages = config.ParseLanguages(languages)
	}
}
