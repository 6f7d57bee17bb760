package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
	"github.com/epubforge/epubforge/fixture"
)

var (
	configPath string
	rootDir    string
)

var rootCmd = &cobra.Command{
	Use:   "epubforge",
	Short: "Epubforge generates EPUB conformance-checker fixtures",
	Long: `Epubforge materializes a curated catalog of valid and deliberately
defective EPUB source trees, packs them into OCF container archives, builds
the archive-level defect variants no source tree can express, and derives
the expectation records a conformance test harness consumes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "epubforge.yaml", "Build context YAML file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Workspace root for relative context paths")
}

// buildContext loads the build context named by the global flags and the
// console the subcommands report through.
func buildContext() (*config.Config, *console.Console, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if rootDir != "" {
		cfg.Anchor(rootDir)
	}
	return cfg, console.New(), nil
}

// catalogByName returns the fixture catalog in name order so every
// command processes and reports fixtures in the same sequence.
func catalogByName() []fixture.Fixture {
	fixtures := fixture.Catalog()
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures
}
