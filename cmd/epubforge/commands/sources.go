package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Materialize every fixture source tree",
	Long: `Writes the expanded source tree of every catalog fixture under the
context's src root. Archive-level fixtures have no tree of their own and
are skipped; the special command builds those directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, con, err := buildContext()
		if err != nil {
			return err
		}
		return runSources(cfg, con)
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cfg *config.Config, con *console.Console) error {
	created := 0
	for _, fx := range catalogByName() {
		if fx.ArchiveOnly {
			continue
		}
		if err := fx.WriteTree(cfg.SrcRoot); err != nil {
			return fmt.Errorf("write tree %s/%s: %w", fx.Category, fx.Name, err)
		}
		con.Okf("Created", "%s/%s (%d files)", fx.Category, fx.Name, len(fx.Files()))
		created++
	}

	con.Infof("Done: %d source trees", created)
	return nil
}
