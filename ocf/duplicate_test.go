package ocf

import (
	"archive/zip"
	"testing"
)

func packedMinimal(t *testing.T) string {
	t.Helper()

	out := outPath(t)
	if err := Pack(minimalTree(t), out); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	return out
}

func TestBuildCaseDuplicate(t *testing.T) {
	archive := packedMinimal(t)

	if err := BuildCaseDuplicate(archive, "OEBPS/chapter1.xhtml"); err != nil {
		t.Fatalf("BuildCaseDuplicate failed: %v", err)
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		t.Fatalf("Rewritten archive did not open: %v", err)
	}
	defer zr.Close()

	var lower, upper *zip.File
	for _, zf := range zr.File {
		switch zf.Name {
		case "OEBPS/chapter1.xhtml":
			lower = zf
		case "OEBPS/Chapter1.xhtml":
			upper = zf
		}
	}
	if lower == nil || upper == nil {
		t.Fatal("Expected both case variants in the archive")
	}
	if entryContent(t, lower) != entryContent(t, upper) {
		t.Error("Case variants should carry identical content")
	}

	// Rewriting must preserve the original entry layout.
	if zr.File[0].Name != MimetypeName || zr.File[0].Method != zip.Store {
		t.Error("mimetype should still be the first, stored entry")
	}
	if zr.File[len(zr.File)-1].Name != "OEBPS/Chapter1.xhtml" {
		t.Error("Variant should be appended after the original entries")
	}
}

// Appending is unconditional: patching an archive that already holds the
// variant yields two entries under the same name, the strongest form of
// the duplicate-entry defect.
func TestBuildCaseDuplicate_Twice(t *testing.T) {
	archive := packedMinimal(t)

	if err := BuildCaseDuplicate(archive, "OEBPS/chapter1.xhtml"); err != nil {
		t.Fatalf("First patch failed: %v", err)
	}
	if err := BuildCaseDuplicate(archive, "OEBPS/chapter1.xhtml"); err != nil {
		t.Fatalf("Second patch failed: %v", err)
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		t.Fatalf("Rewritten archive did not open: %v", err)
	}
	defer zr.Close()

	variants := 0
	for _, zf := range zr.File {
		if zf.Name == "OEBPS/Chapter1.xhtml" {
			variants++
		}
	}
	if variants != 2 {
		t.Errorf("Variant entries = %d, want 2", variants)
	}
}

func TestBuildCaseDuplicate_MissingEntry(t *testing.T) {
	archive := packedMinimal(t)

	if err := BuildCaseDuplicate(archive, "OEBPS/nonexistent.xhtml"); err == nil {
		t.Error("Expected error for entry not in archive")
	}
}

func TestBuildCaseDuplicate_MissingArchive(t *testing.T) {
	if err := BuildCaseDuplicate(outPath(t), "OEBPS/chapter1.xhtml"); err == nil {
		t.Error("Expected error for missing archive")
	}
}

func TestCaseVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		wantErr bool
	}{
		{"OEBPS/chapter1.xhtml", "OEBPS/Chapter1.xhtml", false},
		{"OEBPS/Chapter1.xhtml", "OEBPS/chapter1.xhtml", false},
		{"mimetype", "Mimetype", false},
		{"OEBPS/9x.txt", "OEBPS/9X.txt", false},
		{"OEBPS/123.456", "", true},
	}

	for _, tc := range tests {
		got, err := caseVariant(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Errorf("caseVariant(%q): expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("caseVariant(%q) failed: %v", tc.name, err)
			continue
		}
		if got != tc.variant {
			t.Errorf("caseVariant(%q) = %q, want %q", tc.name, got, tc.variant)
		}
	}
}
