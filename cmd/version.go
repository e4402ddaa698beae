package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"

	"mrgen/pkg/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and the settings a run would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.PrintCompactBanner(version)

		seedText := "clock"
		if cfg.Random.Seed != 0 {
			seedText = fmt.Sprintf("%d", cfg.Random.Seed)
		}

		rows := pterm.TableData{
			{"Setting", "Value"},
			{"Go", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)},
			{"Config", cfgSource},
			{"Output", filepath.Join(cfg.Output.Dir, cfg.Output.Template)},
			{"Random marker", cfg.Random.Marker},
			{"Seed", seedText},
			{"Max files", fmt.Sprintf("%d", cfg.Bounds.MaxFiles)},
			{"Max numbers", fmt.Sprintf("%d", cfg.Bounds.MaxNumbers)},
			{"Max range", fmt.Sprintf("%d", cfg.Bounds.MaxRange)},
		}

		return pterm.DefaultTable.WithWriter(cmd.OutOrStdout()).WithHasHeader().WithData(rows).Render()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
