package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epubforge/epubforge/config"
	"github.com/epubforge/epubforge/console"
)

func testContext(t *testing.T) (*config.Config, *console.Console, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Anchor(t.TempDir())

	var out bytes.Buffer
	return cfg, console.NewForTesting(&out, &out), &out
}

func TestRunSources(t *testing.T) {
	cfg, con, out := testContext(t)

	if err := runSources(cfg, con); err != nil {
		t.Fatalf("runSources failed: %v", err)
	}

	mimetype := filepath.Join(cfg.SrcDir("valid", "minimal-epub3"), "mimetype")
	data, err := os.ReadFile(mimetype)
	if err != nil {
		t.Fatalf("Expected mimetype in minimal-epub3 tree: %v", err)
	}
	if string(data) != "application/epub+zip" {
		t.Errorf("mimetype content = %q", data)
	}

	if _, err := os.Stat(cfg.SrcDir("invalid", "opf-missing-dc-title")); err != nil {
		t.Errorf("Expected invalid fixture tree: %v", err)
	}

	// Archive-level fixtures have no source tree.
	if _, err := os.Stat(cfg.SrcDir("invalid", "ocf-mimetype-not-first")); !os.IsNotExist(err) {
		t.Error("Archive-only fixture should not get a source tree")
	}

	if !strings.Contains(out.String(), "Done:") {
		t.Error("Expected summary line in output")
	}
}

func TestRunSources_Twice(t *testing.T) {
	cfg, con, _ := testContext(t)

	if err := runSources(cfg, con); err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	// A stale file in a tree must not survive regeneration.
	stale := filepath.Join(cfg.SrcDir("valid", "minimal-epub3"), "leftover.txt")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runSources(cfg, con); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Regeneration should have replaced the tree")
	}
}
