package cmd

import (
	"mrgen/pkg/generator"
	"mrgen/pkg/reporter"
	"mrgen/pkg/utils"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate input files without prompting",
	Long: `Generate input files in one shot, with the same values the interactive
session asks for. Each value is an integer or the random marker:

  mrgen generate --files 3 --numbers x --range 50`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("files", "f", "x", "Number of files, or the random marker")
	generateCmd.Flags().StringP("numbers", "n", "x", "Numbers per file, or the random marker")
	generateCmd.Flags().StringP("range", "r", "x", "Range magnitude r for [-r, r], or the random marker")
	generateCmd.Flags().StringP("report", "o", "", "Write a JSON manifest of the run to this file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	files, _ := cmd.Flags().GetString("files")
	numbers, _ := cmd.Flags().GetString("numbers")
	rangeTok, _ := cmd.Flags().GetString("range")
	reportPath, _ := cmd.Flags().GetString("report")

	utils.PrintCompactBanner(version)

	d, err := newDeps(cfg)
	if err != nil {
		return err
	}

	req, err := d.resolver.Resolve(files, numbers, rangeTok)
	if err != nil {
		return err
	}
	utils.Info.Println(req.String())

	rep := reporter.NewReporter(req)
	utils.Debug.Printf("run id %s\n", rep.RunID)

	job := &generator.Job{
		Request: req,
		Numbers: d.numbers,
		Writer:  d.writer,
		Stats:   d.stats,
	}
	results, runErr := job.Run(cmd.Context())
	rep.AddFiles(results...)

	// the manifest also records partial runs
	if reportPath != "" {
		if err := rep.GenerateReport(reportPath); err != nil {
			utils.Error.Printf("Failed to save report: %v\n", err)
		} else {
			utils.Success.Printf("Report saved to %s\n", reportPath)
		}
	}
	if runErr != nil {
		warnPartial(len(results), req.FileCount)
		return runErr
	}

	if debug {
		printStats(d.stats)
	}
	utils.Success.Printf("All done! You can find your files in %s\n", d.writer.Dir())
	utils.Debug.Println(d.stats.Summary())
	return nil
}
