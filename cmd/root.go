package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"mrgen/pkg/generator"
	"mrgen/pkg/shell"
	"mrgen/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	seed    uint64
	version = "1.0.0"

	cfg *utils.Config
	// where cfg came from, for the version table
	cfgSource = "built-in defaults"
)

var rootCmd = &cobra.Command{
	Use:   "mrgen",
	Short: "Random MapReduce input generator",
	Long: `mrgen - Generate files of comma-separated random integers as MapReduce input.

Run without arguments for the interactive session. Every value can be a fixed
integer or the random marker (x), which picks a value up to the default bound.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.InitLogger(debug, cmd.OutOrStdout())
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: runShell,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is ./%s)", utils.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug messages and run statistics")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
}

// loadConfig reads --config, falls back to the default path when it exists,
// and otherwise uses the compiled-in settings.
func loadConfig(cmd *cobra.Command) (*utils.Config, error) {
	var c *utils.Config
	switch {
	case cfgFile != "":
		loaded, err := utils.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		c = loaded
		cfgSource = cfgFile
	default:
		loaded, err := utils.LoadConfig(utils.DefaultConfigPath)
		switch {
		case err == nil:
			c = loaded
			cfgSource = utils.DefaultConfigPath
		case errors.Is(err, fs.ErrNotExist):
			c = utils.DefaultConfig()
			cfgSource = "built-in defaults"
		default:
			return nil, err
		}
	}

	if cmd.Flags().Changed("seed") {
		c.Random.Seed = seed
	}
	return c, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	utils.PrintBanner(version)

	d, err := newDeps(cfg)
	if err != nil {
		return err
	}

	sh := shell.New(shell.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Resolver:  d.resolver,
		Numbers:   d.numbers,
		Writer:    d.writer,
		OutputDir: d.writer.Dir(),
		Stats:     d.stats,
	})

	state, err := sh.Run(cmd.Context())
	utils.Debug.Printf("session ended in state %s\n", state)
	if err != nil {
		warnPartial(len(sh.Files()), sh.Request().FileCount)
		return err
	}
	if len(sh.Files()) > 0 && debug {
		printStats(d.stats)
	}
	return nil
}

// warnPartial reports files left on disk by a failed run.
func warnPartial(written, total int) {
	if written > 0 {
		utils.Warning.Printf("Partial run: %d of %d files written\n", written, total)
	}
}

func printStats(s *generator.Stats) {
	utils.PrintSection("Run Statistics")
	pterm.DefaultTable.WithWriter(utils.Info.Writer).WithHasHeader().WithData(s.Table()).Render()
}
