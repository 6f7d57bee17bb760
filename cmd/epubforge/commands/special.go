package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
	"github.com/epubforge/epubforge/fixture"
	"github.com/epubforge/epubforge/ocf"
)

// archiveBuilders maps each archive-level fixture to the function that
// assembles its defective container from a conformant source tree.
var archiveBuilders = map[string]func(srcDir, outPath string) error{
	"ocf-mimetype-not-first":   ocf.BuildReordered,
	"ocf-mimetype-compressed":  ocf.BuildCompressedMimetype,
	"ocf-mimetype-extra-field": ocf.BuildExtraFieldMimetype,
}

// The duplicate-item archive gets a case-variant copy of this entry
// appended after packing, so the name collision exists inside the ZIP
// itself, not just between files on disk.
const (
	caseDuplicateFixture = "manifest-duplicate-item-same-resource"
	caseDuplicateEntry   = "OEBPS/chapter1.xhtml"
)

var specialCmd = &cobra.Command{
	Use:   "special",
	Short: "Build the archive-level defect fixtures",
	Long: `Builds the fixtures whose defect lives in the container archive
itself: mimetype ordering, compression and extra-field violations
assembled from the minimal valid tree, and the case-variant duplicate
entry appended to the duplicate-item archive. Requires the source trees
and packed archives to exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, con, err := buildContext()
		if err != nil {
			return err
		}
		return runSpecial(cfg, con)
	},
}

func init() {
	rootCmd.AddCommand(specialCmd)
}

func runSpecial(cfg *config.Config, con *console.Console) error {
	src := cfg.SrcDir(fixture.CategoryValid, "minimal-epub3")

	built := 0
	for _, fx := range catalogByName() {
		if !fx.ArchiveOnly {
			continue
		}

		build, ok := archiveBuilders[fx.Name]
		if !ok {
			return fmt.Errorf("no archive builder for fixture %s", fx.Name)
		}
		if err := build(src, cfg.EpubPath(fx.Category, fx.Name)); err != nil {
			return fmt.Errorf("build %s: %w", fx.Name, err)
		}
		con.Okf("Built", "%s/%s.epub", fx.Category, fx.Name)
		built++
	}

	archive := cfg.EpubPath(fixture.CategoryInvalid, caseDuplicateFixture)
	if err := ocf.BuildCaseDuplicate(archive, caseDuplicateEntry); err != nil {
		return fmt.Errorf("case duplicate %s: %w", caseDuplicateFixture, err)
	}
	con.Okf("Patched", "%s/%s.epub (case-variant entry)", fixture.CategoryInvalid, caseDuplicateFixture)
	built++

	con.Infof("Done: %d special archives", built)
	return nil
}
