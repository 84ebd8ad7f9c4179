package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"glossconv/internal/worker"

	"github.com/spf13/cobra"
)

var tex2eafCmd = &cobra.Command{
	Use:   "tex2eaf <input.tex>...",
	Short: "Convert LaTeX interlinear tables to ELAN annotation files",
	Long: `Read every utterance table of a LaTeX document and write an ELAN .eaf file
with transcription, translation, gloss and comment tiers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTex2eaf,
}

var (
	eafOutput string
	eafMedia  string
	eafAuthor string
)

func init() {
	tex2eafCmd.Flags().StringVarP(&eafOutput, "output", "o", "", "output .eaf path (default: <input>.eaf, single input only)")
	tex2eafCmd.Flags().StringVarP(&eafMedia, "media", "m", "", "audio/video file to link in the document header")
	tex2eafCmd.Flags().StringVar(&eafAuthor, "author", "", "document author")

	rootCmd.AddCommand(tex2eafCmd)
}

func runTex2eaf(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("media") {
		cfg.Media = eafMedia
	}
	if cmd.Flags().Changed("author") {
		cfg.Author = eafAuthor
	}

	inputs, err := resolveInputs(args, ".tex")
	if err != nil {
		return err
	}
	if err := checkOutput(eafOutput, len(inputs)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.RunBatch(ctx, inputs, worker.Options{
		OutputPath: eafOutput,
		Direction:  worker.ToEAF,
		Config:     cfg,
	})
}
