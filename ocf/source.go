package ocf

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MimetypeName is the entry OCF requires first in every package.
	MimetypeName = "mimetype"
	// MimetypeContent is the canonical mimetype payload.
	MimetypeContent = "application/epub+zip"
)

// sourceFile pairs an archive entry name with its on-disk location.
type sourceFile struct {
	arcname string
	path    string
}

// collectFiles walks srcDir and returns (arcname, path) pairs in sorted
// traversal order so repeated runs produce identical entry sequences.
// Names listed in exclude are omitted.
func collectFiles(srcDir string, exclude ...string) ([]sourceFile, error) {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	var files []sourceFile
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		arcname := filepath.ToSlash(rel)
		if skip[arcname] {
			return nil
		}
		files = append(files, sourceFile{arcname: arcname, path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", srcDir, err)
	}
	return files, nil
}

// requireMimetype returns the on-disk path of srcDir's mimetype entry.
// The defect builders need one to misplace, recompress or patch.
func requireMimetype(srcDir string) (string, error) {
	p := filepath.Join(srcDir, MimetypeName)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("source tree %s has no mimetype entry: %w", srcDir, err)
	}
	return p, nil
}

// container mirrors META-INF/container.xml.
type container struct {
	XMLName   xml.Name   `xml:"container"`
	Version   string     `xml:"version,attr"`
	RootFiles []rootFile `xml:"rootfiles>rootfile"`
}

type rootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// VerifySourceTree checks that a tree meant to become a valid package is
// coherent before assembly: canonical mimetype bytes, a parseable
// container.xml, and a rootfile path that resolves inside the tree.
// Deliberately-defective trees must not go through this.
func VerifySourceTree(srcDir string) error {
	mimetype, err := os.ReadFile(filepath.Join(srcDir, MimetypeName))
	if err != nil {
		return fmt.Errorf("verify %s: %w", srcDir, err)
	}
	if string(mimetype) != MimetypeContent {
		return fmt.Errorf("verify %s: mimetype content %q, want %q", srcDir, mimetype, MimetypeContent)
	}

	data, err := os.ReadFile(filepath.Join(srcDir, "META-INF", "container.xml"))
	if err != nil {
		return fmt.Errorf("verify %s: %w", srcDir, err)
	}
	var c container
	if err := xml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("verify %s: parse container.xml: %w", srcDir, err)
	}
	if len(c.RootFiles) == 0 {
		return fmt.Errorf("verify %s: container.xml declares no rootfile", srcDir)
	}

	for _, rf := range c.RootFiles {
		full := rf.FullPath
		if full == "" || strings.HasPrefix(full, "/") || strings.Contains(full, "..") {
			return fmt.Errorf("verify %s: unsafe rootfile path %q", srcDir, full)
		}
		if _, err := os.Stat(filepath.Join(srcDir, filepath.FromSlash(full))); err != nil {
			return fmt.Errorf("verify %s: rootfile %s: %w", srcDir, full, err)
		}
	}
	return nil
}
