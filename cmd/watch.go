package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"glossconv/internal/templates"
	"glossconv/internal/worker"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert source files in a directory whenever they change",
	Long: `Watch a directory and convert every source file (by default ELAN .txt
exports) as soon as it is written. Output goes next to the source with the
other format's extension. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchFrom string
	watchRate float64
)

func init() {
	watchCmd.Flags().StringVar(&watchFrom, "from", "txt", "source format to watch: tex, txt or eaf")
	watchCmd.Flags().Float64Var(&watchRate, "rate", 0, "max conversions per second (default from config)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rate") {
		cfg.WatchRate = watchRate
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("not a directory: %s", args[0])
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Watch(ctx, worker.WatchOptions{
		Options: worker.Options{
			Config:    cfg,
			Templates: templates.NewCache(cfg.TemplatesDir),
		},
		Dir: args[0],
		Ext: "." + strings.TrimPrefix(strings.ToLower(watchFrom), "."),
	})
}
