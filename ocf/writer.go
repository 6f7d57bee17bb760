// Package ocf assembles EPUB container archives from fixture source trees.
// Besides conformant packing it builds archives that each violate exactly
// one OCF packaging rule, for exercising a conformance checker.
package ocf

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// newZipWriter returns a zip writer whose deflate method is backed by
// klauspost's encoder at best compression.
func newZipWriter(w io.Writer) *zip.Writer {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return zw
}

// Pack assembles srcDir into a conformant archive at outPath: mimetype
// first and stored with no extra field, remaining entries deflated in
// sorted order. A tree that deliberately omits the mimetype entry is
// packed the same way minus the leading entry.
func Pack(srcDir, outPath string) error {
	return saveArchive(outPath, func(zw *zip.Writer) error {
		return writeConformant(zw, srcDir)
	})
}

// BuildReordered assembles an archive whose mimetype entry is stored but
// written last instead of first, isolating the ordering defect.
func BuildReordered(srcDir, outPath string) error {
	mt, err := requireMimetype(srcDir)
	if err != nil {
		return err
	}
	files, err := collectFiles(srcDir, MimetypeName)
	if err != nil {
		return err
	}

	return saveArchive(outPath, func(zw *zip.Writer) error {
		for _, f := range files {
			if err := addFileEntry(zw, f.arcname, f.path, zip.Deflate); err != nil {
				return err
			}
		}
		return addFileEntry(zw, MimetypeName, mt, zip.Store)
	})
}

// BuildCompressedMimetype assembles an archive whose mimetype entry is
// first but deflated instead of stored, isolating the compression defect.
func BuildCompressedMimetype(srcDir, outPath string) error {
	mt, err := requireMimetype(srcDir)
	if err != nil {
		return err
	}
	files, err := collectFiles(srcDir, MimetypeName)
	if err != nil {
		return err
	}

	return saveArchive(outPath, func(zw *zip.Writer) error {
		if err := addFileEntry(zw, MimetypeName, mt, zip.Deflate); err != nil {
			return err
		}
		for _, f := range files {
			if err := addFileEntry(zw, f.arcname, f.path, zip.Deflate); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeConformant writes the standard entry layout shared by Pack and the
// build phase of BuildExtraFieldMimetype.
func writeConformant(zw *zip.Writer, srcDir string) error {
	files, err := collectFiles(srcDir, MimetypeName)
	if err != nil {
		return err
	}

	mt := filepath.Join(srcDir, MimetypeName)
	if _, err := os.Stat(mt); err == nil {
		if err := addFileEntry(zw, MimetypeName, mt, zip.Store); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", mt, err)
	}

	for _, f := range files {
		if err := addFileEntry(zw, f.arcname, f.path, zip.Deflate); err != nil {
			return err
		}
	}
	return nil
}

// addFileEntry writes one source file into the archive with the given
// compression method.
func addFileEntry(zw *zip.Writer, name, path string, method uint16) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return addEntry(zw, name, content, method)
}

func addEntry(zw *zip.Writer, name string, content []byte, method uint16) error {
	header := &zip.FileHeader{
		Name:   name,
		Method: method,
	}

	fw, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

// saveArchive builds a zip at outPath through build, writing to a temp
// file in the destination directory and renaming into place on success.
// A failed build never leaves a partial archive at outPath.
func saveArchive(outPath string, build func(*zip.Writer) error) error {
	tmpF, tmpPath, err := tempOutput(outPath)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		tmpF.Close()
		if !success {
			os.Remove(tmpPath)
		}
	}()

	zw := newZipWriter(tmpF)
	if err := build(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip writer: %w", err)
	}

	// Close before rename (required on Windows).
	tmpF.Close()

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("move archive into place: %w", err)
	}

	success = true
	return nil
}

// saveBytes writes an already-assembled archive buffer with the same
// atomic temp-and-rename protocol as saveArchive.
func saveBytes(outPath string, data []byte) error {
	tmpF, tmpPath, err := tempOutput(outPath)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		tmpF.Close()
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpF.Write(data); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	tmpF.Close()

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("move archive into place: %w", err)
	}

	success = true
	return nil
}

func tempOutput(outPath string) (*os.File, string, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, "", fmt.Errorf("create output dir: %w", err)
	}
	tmpF, err := os.CreateTemp(filepath.Dir(outPath), "epubforge-*.epub")
	if err != nil {
		return nil, "", fmt.Errorf("create temp file: %w", err)
	}
	return tmpF, tmpF.Name(), nil
}
