// Package config holds the fixture build context: where source trees,
// assembled archives, expectation records and reference reports live.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the build context passed into every generation step. All roots
// are resolved to absolute or root-relative paths before use, so tests can
// point an entire run at a temporary directory.
type Config struct {
	SrcRoot       string `yaml:"src_root"`       // fixture source trees
	EpubRoot      string `yaml:"epub_root"`      // assembled .epub archives
	ExpectedRoot  string `yaml:"expected_root"`  // expectation records
	ReferenceRoot string `yaml:"reference_root"` // captured checker reports
}

// Default returns the conventional layout under the working directory.
func Default() *Config {
	return &Config{
		SrcRoot:       filepath.Join("fixtures", "src"),
		EpubRoot:      filepath.Join("fixtures", "epub"),
		ExpectedRoot:  "expected",
		ReferenceRoot: "reference",
	}
}

// Load reads a YAML build context from path. A missing file yields the
// defaults; a present but unreadable or invalid file is an error. Fields
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Anchor rebases all relative roots onto dir. Absolute roots are kept.
func (c *Config) Anchor(dir string) {
	c.SrcRoot = anchorPath(dir, c.SrcRoot)
	c.EpubRoot = anchorPath(dir, c.EpubRoot)
	c.ExpectedRoot = anchorPath(dir, c.ExpectedRoot)
	c.ReferenceRoot = anchorPath(dir, c.ReferenceRoot)
}

func anchorPath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// SrcDir returns the source tree directory for one fixture.
func (c *Config) SrcDir(category, name string) string {
	return filepath.Join(c.SrcRoot, category, name)
}

// EpubPath returns the assembled archive path for one fixture.
func (c *Config) EpubPath(category, name string) string {
	return filepath.Join(c.EpubRoot, category, name+".epub")
}

// ExpectedPath returns the expectation record path for one fixture.
func (c *Config) ExpectedPath(category, name string) string {
	return filepath.Join(c.ExpectedRoot, category, name+".json")
}

// ReferencePath returns the captured checker report path for one fixture.
func (c *Config) ReferencePath(category, name string) string {
	return filepath.Join(c.ReferenceRoot, category, name+".json")
}
