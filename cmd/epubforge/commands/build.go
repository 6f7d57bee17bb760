package commands

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the whole pipeline: sources, pack, special, expected",
	Long: `Materializes every source tree, packs the archives, builds the
archive-level defect fixtures and derives the expectation records, in
that order. The first failing step aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, con, err := buildContext()
		if err != nil {
			return err
		}

		if err := runSources(cfg, con); err != nil {
			return err
		}
		if err := runPack(cfg, con); err != nil {
			return err
		}
		if err := runSpecial(cfg, con); err != nil {
			return err
		}
		return runExpected(cfg, con)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
