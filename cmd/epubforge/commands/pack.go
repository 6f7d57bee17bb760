package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
	"github.com/epubforge/epubforge/fixture"
	"github.com/epubforge/epubforge/ocf"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Assemble fixture archives from their source trees",
	Long: `Packs every materialized source tree into an OCF container archive
under the context's epub root. Valid-category trees are verified for
coherence first; invalid trees carry deliberate defects and are packed
exactly as they are.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, con, err := buildContext()
		if err != nil {
			return err
		}
		return runPack(cfg, con)
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func runPack(cfg *config.Config, con *console.Console) error {
	packed := 0
	for _, fx := range catalogByName() {
		if fx.ArchiveOnly {
			continue
		}

		src := cfg.SrcDir(fx.Category, fx.Name)
		if fx.Category == fixture.CategoryValid {
			if err := ocf.VerifySourceTree(src); err != nil {
				return fmt.Errorf("verify %s/%s: %w", fx.Category, fx.Name, err)
			}
		}

		if err := ocf.Pack(src, cfg.EpubPath(fx.Category, fx.Name)); err != nil {
			return fmt.Errorf("pack %s/%s: %w", fx.Category, fx.Name, err)
		}
		con.Okf("Packed", "%s/%s.epub", fx.Category, fx.Name)
		packed++
	}

	con.Infof("Done: %d archives", packed)
	return nil
}
