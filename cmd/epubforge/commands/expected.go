package commands

import (
	"github.com/spf13/cobra"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
	"github.com/epubforge/epubforge/expect"
)

var expectedCmd = &cobra.Command{
	Use:   "expected",
	Short: "Derive expectation records from reference reports",
	Long: `Writes one expectation record per catalog fixture under the
context's expected root, merging the curated check table with severity
counts from captured reference checker reports. Invalid fixtures without
a reference report are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, con, err := buildContext()
		if err != nil {
			return err
		}
		return runExpected(cfg, con)
	},
}

func init() {
	rootCmd.AddCommand(expectedCmd)
}

func runExpected(cfg *config.Config, con *console.Console) error {
	b := &expect.Builder{Config: cfg, Console: con}
	_, err := b.Run()
	return err
}
