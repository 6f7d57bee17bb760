package fixture

import (
	"bytes"
	"regexp"
	"testing"
)

func TestCatalogNamesUniqueAndWellFormed(t *testing.T) {
	nameRE := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	seen := map[string]bool{}
	for _, fx := range Catalog() {
		if seen[fx.Name] {
			t.Errorf("Duplicate fixture name %q", fx.Name)
		}
		seen[fx.Name] = true

		if !nameRE.MatchString(fx.Name) {
			t.Errorf("Fixture name %q is not kebab-case", fx.Name)
		}
		if fx.Category != CategoryValid && fx.Category != CategoryInvalid {
			t.Errorf("Fixture %q has category %q", fx.Name, fx.Category)
		}
	}
}

func TestCatalogMaterializes(t *testing.T) {
	for _, fx := range Catalog() {
		if fx.ArchiveOnly {
			if len(fx.Overrides) != 0 || len(fx.Remove) != 0 {
				t.Errorf("Archive-only fixture %q should not carry tree content", fx.Name)
			}
			continue
		}

		files := fx.Files()
		if len(files) == 0 {
			t.Errorf("Fixture %q materializes no files", fx.Name)
			continue
		}
		for p, content := range files {
			if len(content) == 0 {
				t.Errorf("Fixture %q: file %s is empty", fx.Name, p)
			}
		}
	}
}

func TestCatalogInvalidFixturesCarryADefect(t *testing.T) {
	for _, fx := range Catalog() {
		if fx.Category != CategoryInvalid || fx.ArchiveOnly {
			continue
		}
		if len(fx.Overrides) == 0 && len(fx.Remove) == 0 {
			t.Errorf("Invalid fixture %q does not differ from its base", fx.Name)
		}
	}
}

func TestCatalogArchiveOnlyTriple(t *testing.T) {
	want := map[string]bool{
		"ocf-mimetype-not-first":   false,
		"ocf-mimetype-compressed":  false,
		"ocf-mimetype-extra-field": false,
	}

	for _, fx := range Catalog() {
		if !fx.ArchiveOnly {
			continue
		}
		if _, ok := want[fx.Name]; !ok {
			t.Errorf("Unexpected archive-only fixture %q", fx.Name)
			continue
		}
		want[fx.Name] = true
		if fx.Category != CategoryInvalid {
			t.Errorf("Archive-only fixture %q should be invalid", fx.Name)
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("Missing archive-only fixture %q", name)
		}
	}
}

func TestByName(t *testing.T) {
	fx, ok := ByName("minimal-epub3")
	if !ok {
		t.Fatal("minimal-epub3 not in catalog")
	}
	if fx.Category != CategoryValid || fx.Base != BaseEPUB3 {
		t.Error("minimal-epub3 should be the valid EPUB 3 baseline")
	}

	if _, ok := ByName("no-such-fixture"); ok {
		t.Error("Unknown name should not resolve")
	}
}

func mustFixtureFiles(t *testing.T, name string) FileSet {
	t.Helper()

	fx, ok := ByName(name)
	if !ok {
		t.Fatalf("Fixture %q not in catalog", name)
	}
	return fx.Files()
}

func TestContainerDefects(t *testing.T) {
	files := mustFixtureFiles(t, "ocf-container-missing")
	if _, ok := files[ContainerFile]; ok {
		t.Error("ocf-container-missing should drop container.xml")
	}

	files = mustFixtureFiles(t, "ocf-mimetype-wrong-content")
	if got := string(files[MimetypeFile]); got != "application/zip" {
		t.Errorf("ocf-mimetype-wrong-content mimetype = %q", got)
	}

	files = mustFixtureFiles(t, "ocf-mimetype-extra-whitespace")
	if got := string(files[MimetypeFile]); got != "application/epub+zip\n" {
		t.Errorf("ocf-mimetype-extra-whitespace mimetype = %q", got)
	}

	files = mustFixtureFiles(t, "ocf-metainf-extra-files")
	if _, ok := files["META-INF/encryption.xml"]; !ok {
		t.Error("ocf-metainf-extra-files should add an encryption.xml")
	}
}

func TestPackageDefects(t *testing.T) {
	doc := parseXML(t, mustFixtureFiles(t, "opf-wrong-version")[PackageFile])
	if v := doc.FindElement("//package").SelectAttrValue("version", ""); v != "4.0" {
		t.Errorf("opf-wrong-version version = %q, want 4.0", v)
	}

	doc = parseXML(t, mustFixtureFiles(t, "opf-missing-metadata")[PackageFile])
	if doc.FindElement("//metadata") != nil {
		t.Error("opf-missing-metadata should drop the metadata element")
	}

	doc = parseXML(t, mustFixtureFiles(t, "opf-duplicate-spine-idref")[PackageFile])
	refs := doc.FindElements("//itemref[@idref='chapter1']")
	if len(refs) != 2 {
		t.Errorf("opf-duplicate-spine-idref itemrefs = %d, want 2", len(refs))
	}

	doc = parseXML(t, mustFixtureFiles(t, "opf-dc-identifier-empty")[PackageFile])
	if doc.FindElement("//dc:identifier").Text() != "" {
		t.Error("opf-dc-identifier-empty should blank the identifier")
	}

	doc = parseXML(t, mustFixtureFiles(t, "opf-fallback-cycle")[PackageFile])
	c1 := doc.FindElement("//item[@id='chapter1']")
	c2 := doc.FindElement("//item[@id='chapter2']")
	if c1 == nil || c2 == nil {
		t.Fatal("opf-fallback-cycle needs both chapter items")
	}
	if c1.SelectAttrValue("fallback", "") != "chapter2" || c2.SelectAttrValue("fallback", "") != "chapter1" {
		t.Error("opf-fallback-cycle fallbacks should reference each other")
	}
}

func TestContentDefects(t *testing.T) {
	latin := mustFixtureFiles(t, "content-non-utf8-encoding")[ChapterFile]
	if !bytes.Contains(latin, []byte{0xe9}) {
		t.Error("content-non-utf8-encoding should carry a Latin-1 byte")
	}
	if !bytes.Contains(latin, []byte("ISO-8859-1")) {
		t.Error("content-non-utf8-encoding should declare ISO-8859-1")
	}

	utf16 := mustFixtureFiles(t, "content-utf16-encoding")[ChapterFile]
	if len(utf16) < 2 || utf16[0] != 0xff || utf16[1] != 0xfe {
		t.Error("content-utf16-encoding should start with a UTF-16LE BOM")
	}

	remote := mustFixtureFiles(t, "content-remote-resource")[ChapterFile]
	if !bytes.Contains(remote, []byte("http://example.com/")) {
		t.Error("content-remote-resource should reference a remote URL")
	}
}

func TestEPUB2Defects(t *testing.T) {
	files := mustFixtureFiles(t, "epub2-ncx-missing")
	if _, ok := files[NCXFile]; ok {
		t.Error("epub2-ncx-missing should drop the NCX")
	}

	doc := parseXML(t, mustFixtureFiles(t, "epub2-spine-no-toc")[PackageFile])
	if doc.FindElement("//spine").SelectAttrValue("toc", "") != "" {
		t.Error("epub2-spine-no-toc spine should have no toc attribute")
	}

	ncx := mustFixtureFiles(t, "epub2-ncx-uid-mismatch")[NCXFile]
	doc = parseXML(t, ncx)
	uid := doc.FindElement("//meta[@name='dtb:uid']").SelectAttrValue("content", "")
	if uid == UID("epub2-ncx-uid-mismatch") {
		t.Error("epub2-ncx-uid-mismatch NCX should not carry the package identifier")
	}
}

func TestManifestDefects(t *testing.T) {
	doc := parseXML(t, mustFixtureFiles(t, "manifest-path-traversal")[PackageFile])
	if doc.FindElement("//item[@href='../outside.xhtml']") == nil {
		t.Error("manifest-path-traversal should declare an escaping href")
	}

	files := mustFixtureFiles(t, "manifest-duplicate-item-same-resource")
	if _, ok := files["OEBPS/Chapter1.xhtml"]; !ok {
		t.Error("Duplicate-item fixture should carry the case-variant file")
	}
	doc = parseXML(t, files[PackageFile])
	if doc.FindElement("//item[@href='Chapter1.xhtml']") == nil {
		t.Error("Duplicate-item fixture should declare the case-variant item")
	}
}

func TestValidFixtures(t *testing.T) {
	names := []string{"minimal-epub3", "minimal-epub2", "fxl-epub3", "epub3-with-css"}
	for _, name := range names {
		fx, ok := ByName(name)
		if !ok {
			t.Errorf("Valid fixture %q not in catalog", name)
			continue
		}
		if fx.Category != CategoryValid {
			t.Errorf("Fixture %q category = %q", name, fx.Category)
		}
	}

	files := mustFixtureFiles(t, "epub3-with-css")
	if _, ok := files[StyleFile]; !ok {
		t.Error("epub3-with-css should carry a stylesheet")
	}

	doc := parseXML(t, mustFixtureFiles(t, "fxl-epub3")[PackageFile])
	layout := doc.FindElement("//meta[@property='rendition:layout']")
	if layout == nil || layout.Text() != "pre-paginated" {
		t.Error("fxl-epub3 should declare pre-paginated layout")
	}
}
