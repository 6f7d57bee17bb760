package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSetPaths(t *testing.T) {
	fs := FileSet{
		"OEBPS/z.xhtml": []byte("z"),
		"mimetype":      []byte("m"),
		"OEBPS/a.xhtml": []byte("a"),
	}

	want := []string{"OEBPS/a.xhtml", "OEBPS/z.xhtml", "mimetype"}
	got := fs.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths = %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFixtureFiles_MergesBaseOverridesRemove(t *testing.T) {
	f := Fixture{
		Name:     "merge-check",
		Category: CategoryInvalid,
		Base:     BaseEPUB3,
		Overrides: FileSet{
			ChapterFile:   []byte("replaced"),
			"OEBPS/extra": []byte("added"),
		},
		Remove: []string{NavFile},
	}

	files := f.Files()
	if string(files[ChapterFile]) != "replaced" {
		t.Error("Override should replace the base file")
	}
	if string(files["OEBPS/extra"]) != "added" {
		t.Error("Override should add new files")
	}
	if _, ok := files[NavFile]; ok {
		t.Error("Removed base file should be absent")
	}
	if _, ok := files[MimetypeFile]; !ok {
		t.Error("Untouched base files should survive the merge")
	}
}

func TestFixtureFiles_NoBase(t *testing.T) {
	f := Fixture{
		Name:      "bare",
		Category:  CategoryInvalid,
		Overrides: FileSet{"only.txt": []byte("x")},
	}

	files := f.Files()
	if len(files) != 1 {
		t.Errorf("Files = %d entries, want 1", len(files))
	}
}

func TestWriteTree(t *testing.T) {
	root := t.TempDir()
	f := Fixture{Name: "minimal-epub3", Category: CategoryValid, Base: BaseEPUB3}

	if err := f.WriteTree(root); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}

	for _, rel := range f.Files().Paths() {
		path := filepath.Join(root, "valid", "minimal-epub3", filepath.FromSlash(rel))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Missing tree file %s: %v", rel, err)
		}
	}
}

func TestWriteTree_ReplacesPreviousTree(t *testing.T) {
	root := t.TempDir()
	f := Fixture{Name: "minimal-epub3", Category: CategoryValid, Base: BaseEPUB3}

	if err := f.WriteTree(root); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	stale := filepath.Join(root, "valid", "minimal-epub3", "stale.txt")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := f.WriteTree(root); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Stale file should not survive tree regeneration")
	}
}

func TestUID(t *testing.T) {
	a := UID("minimal-epub3")
	b := UID("minimal-epub3")
	c := UID("minimal-epub2")

	if a != b {
		t.Error("UID should be deterministic per name")
	}
	if a == c {
		t.Error("Distinct names should yield distinct identifiers")
	}
	if !strings.HasPrefix(a, "urn:uuid:") {
		t.Errorf("UID = %q, want urn:uuid: prefix", a)
	}
	if len(a) != len("urn:uuid:")+36 {
		t.Errorf("UID length = %d, want RFC 4122 text form", len(a))
	}
}
