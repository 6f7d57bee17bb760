package fixture

import (
	"github.com/beevik/etree"
)

// EPUB 2 defects around the NCX and the spine toc attribute.

const malformedNCX = `<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="urn:uuid:12345678-1234-1234-1234-123456789012"/>
  </head>
  <!-- broken: missing closing tags`

const noNavMapNCX = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE ncx PUBLIC "-//NISO//DTD ncx 2005-1//EN" "http://www.daisy.org/z3986/2005/ncx-2005-1.dtd">
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="urn:uuid:12345678-1234-1234-1234-123456789012"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle><text>Test Book</text></docTitle>
</ncx>`

func epub2Fixtures() []Fixture {
	return []Fixture{
		{
			Name:     "epub2-ncx-missing",
			Category: CategoryInvalid,
			Base:     BaseEPUB2,
			Remove:   []string{NCXFile},
		},
		{
			Name:      "epub2-ncx-malformed",
			Category:  CategoryInvalid,
			Base:      BaseEPUB2,
			Overrides: FileSet{NCXFile: []byte(malformedNCX)},
		},
		{
			Name:      "epub2-ncx-no-navmap",
			Category:  CategoryInvalid,
			Base:      BaseEPUB2,
			Overrides: FileSet{NCXFile: []byte(noNavMapNCX)},
		},
		{
			Name:     "epub2-spine-no-toc",
			Category: CategoryInvalid,
			Base:     BaseEPUB2,
			Overrides: FileSet{
				PackageFile: opf2("epub2-spine-no-toc", func(doc *etree.Document) {
					removeAttr(doc, "//spine", "toc")
				}),
			},
		},
		{
			// The NCX dtb:uid never matches the package identifier,
			// which is derived from the fixture name.
			Name:      "epub2-ncx-uid-mismatch",
			Category:  CategoryInvalid,
			Base:      BaseEPUB2,
			Overrides: FileSet{NCXFile: []byte(ncxXML("urn:uuid:00000000-0000-0000-0000-000000000000"))},
		},
		{
			Name:     "epub2-guide-broken-href",
			Category: CategoryInvalid,
			Base:     BaseEPUB2,
			Overrides: FileSet{
				PackageFile: opf2("epub2-guide-broken-href", func(doc *etree.Document) {
					ref := mustFind(doc, "//package").CreateElement("guide").CreateElement("reference")
					ref.CreateAttr("type", "toc")
					ref.CreateAttr("title", "Table of Contents")
					ref.CreateAttr("href", "nonexistent.xhtml")
				}),
			},
		},
	}
}
