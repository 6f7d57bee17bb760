package fixture

import (
	"strings"

	"github.com/beevik/etree"
)

// Package-document defects. Everything well-formed is a mutation of the
// baseline package; only the malformed-XML fixture needs a literal.

const malformedPackageXML = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="uid">urn:uuid:12345678-1234-1234-1234-123456789012</dc:identifier>
    <dc:title>Test Book</dc:title>
    <dc:language>en</dc:language>
    <meta property="dcterms:modified">2025-01-01T00:00:00Z</meta>
  <!-- missing closing tags -->`

var secondChapterXHTML = strings.ReplaceAll(chapterXHTML, "Chapter 1", "Chapter 2")

func packageFixtures() []Fixture {
	return []Fixture{
		{
			Name:      "opf-malformed-xml",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{PackageFile: []byte(malformedPackageXML)},
		},
		opfFixture("opf-missing-metadata", nil, func(doc *etree.Document) {
			removeElement(doc, "//metadata")
		}),
		opfFixture("opf-missing-manifest", nil, func(doc *etree.Document) {
			removeElement(doc, "//manifest")
		}),
		opfFixture("opf-missing-spine", nil, func(doc *etree.Document) {
			removeElement(doc, "//spine")
		}),
		opfFixture("opf-wrong-version", nil, func(doc *etree.Document) {
			setAttr(doc, "//package", "version", "4.0")
		}),
		opfFixture("opf-duplicate-manifest-href", nil,
			addManifestItem("chapter1dup", "chapter1.xhtml", "application/xhtml+xml")),
		opfFixture("opf-duplicate-spine-idref", nil, func(doc *etree.Document) {
			mustFind(doc, "//spine").CreateElement("itemref").CreateAttr("idref", "chapter1")
		}),
		opfFixture("opf-manifest-item-no-id", nil, func(doc *etree.Document) {
			removeAttr(doc, "//item[@id='chapter1']", "id")
		}),
		opfFixture("opf-dcterms-modified-invalid", nil, func(doc *etree.Document) {
			setText(doc, "//meta[@property='dcterms:modified']", "not-a-valid-date")
		}),
		opfFixture("opf-dc-language-invalid", nil, func(doc *etree.Document) {
			setText(doc, "//dc:language", "invalidlanguagetag123")
		}),
		opfFixture("opf-missing-dc-title", nil, func(doc *etree.Document) {
			removeElement(doc, "//dc:title")
		}),
		opfFixture("opf-missing-unique-identifier", nil, func(doc *etree.Document) {
			removeAttr(doc, "//package", "unique-identifier")
		}),
		opfFixture("opf-dc-identifier-empty", nil, func(doc *etree.Document) {
			setText(doc, "//dc:identifier", "")
		}),
	}
}

func fallbackFixtures() []Fixture {
	return []Fixture{
		opfFixture("opf-fallback-ref-missing", nil, func(doc *etree.Document) {
			setAttr(doc, "//item[@id='chapter1']", "fallback", "nonexistent")
		}),
		opfFixture("opf-fallback-cycle",
			FileSet{"OEBPS/chapter2.xhtml": []byte(secondChapterXHTML)},
			func(doc *etree.Document) {
				setAttr(doc, "//item[@id='chapter1']", "fallback", "chapter2")
				item := mustFind(doc, "//manifest").CreateElement("item")
				item.CreateAttr("id", "chapter2")
				item.CreateAttr("href", "chapter2.xhtml")
				item.CreateAttr("media-type", "application/xhtml+xml")
				item.CreateAttr("fallback", "chapter1")
			}),
		opfFixture("opf-spine-non-content-doc",
			FileSet{StyleFile: []byte("body { margin: 0; }")},
			func(doc *etree.Document) {
				addManifestItem("style", "style.css", "text/css")(doc)
				mustFind(doc, "//spine").CreateElement("itemref").CreateAttr("idref", "style")
			}),
		opfFixture("opf-media-type-mismatch", nil, func(doc *etree.Document) {
			setAttr(doc, "//item[@id='chapter1']", "media-type", "image/png")
		}),
		opfFixture("opf-cover-image-not-image", nil, func(doc *etree.Document) {
			setAttr(doc, "//item[@id='chapter1']", "properties", "cover-image")
		}),
		opfFixture("opf-multiple-nav",
			FileSet{"OEBPS/nav2.xhtml": []byte(navXHTML)},
			func(doc *etree.Document) {
				item := mustFind(doc, "//manifest").CreateElement("item")
				item.CreateAttr("id", "nav2")
				item.CreateAttr("href", "nav2.xhtml")
				item.CreateAttr("media-type", "application/xhtml+xml")
				item.CreateAttr("properties", "nav")
			}),
	}
}
