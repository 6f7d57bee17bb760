package ocf

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"unicode"
)

// BuildCaseDuplicate rewrites the archive at archivePath so it additionally
// contains a case-variant duplicate of entryName with identical content.
// The two entries then collide under case-insensitive comparison,
// reproducing the conflict such a package causes when extracted on a
// case-insensitive filesystem. Original entries are raw-copied unchanged
// and the archive is replaced atomically.
func BuildCaseDuplicate(archivePath, entryName string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat archive: %w", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("read archive %s: %w", archivePath, err)
	}

	variant, err := caseVariant(entryName)
	if err != nil {
		return err
	}

	var original *zip.File
	for _, zf := range zr.File {
		if zf.Name == entryName {
			original = zf
			break
		}
	}
	if original == nil {
		return fmt.Errorf("entry %s not found in %s", entryName, archivePath)
	}

	content, err := readEntry(original)
	if err != nil {
		return err
	}

	return saveArchive(archivePath, func(zw *zip.Writer) error {
		for _, zf := range zr.File {
			if err := copyEntryRaw(zw, f, zf); err != nil {
				return fmt.Errorf("copy entry %s: %w", zf.Name, err)
			}
		}
		return addEntry(zw, variant, content, zip.Deflate)
	})
}

// caseVariant flips the case of the first letter in the base filename,
// e.g. OEBPS/chapter1.xhtml becomes OEBPS/Chapter1.xhtml.
func caseVariant(name string) (string, error) {
	dir, base := path.Split(name)
	r := []rune(base)
	for i, c := range r {
		if unicode.IsLower(c) {
			r[i] = unicode.ToUpper(c)
			return dir + string(r), nil
		}
		if unicode.IsUpper(c) {
			r[i] = unicode.ToLower(c)
			return dir + string(r), nil
		}
	}
	return "", fmt.Errorf("entry %q has no letter to case-flip", name)
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", zf.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", zf.Name, err)
	}
	return content, nil
}

// copyEntryRaw copies one entry without re-encoding, preserving its
// compression method and compressed payload.
func copyEntryRaw(zw *zip.Writer, src io.ReaderAt, zf *zip.File) error {
	// Directory entries are optional; skip them to avoid "zip: write to directory".
	if zf.FileInfo().IsDir() || strings.HasSuffix(zf.Name, "/") {
		return nil
	}

	// CreateRaw treats the header as immutable, so copy it.
	header := zf.FileHeader
	fw, err := zw.CreateRaw(&header)
	if err != nil {
		return err
	}

	offset, err := zf.DataOffset()
	if err != nil {
		return fmt.Errorf("data offset: %w", err)
	}

	section := io.NewSectionReader(src, offset, int64(zf.CompressedSize64))
	_, err = io.Copy(fw, section)
	return err
}
