package fixture

import (
	"fmt"

	"github.com/satori/go.uuid"
)

// Canonical file names inside generated source trees.
const (
	MimetypeFile  = "mimetype"
	ContainerFile = "META-INF/container.xml"
	PackageFile   = "OEBPS/content.opf"
	NavFile       = "OEBPS/nav.xhtml"
	ChapterFile   = "OEBPS/chapter1.xhtml"
	NCXFile       = "OEBPS/toc.ncx"
	StyleFile     = "OEBPS/style.css"
)

const mimetypePayload = "application/epub+zip"

// fixtureNamespace seeds the UUIDv5 identifiers stamped into generated
// packages, so every fixture carries a distinct, stable identifier.
var fixtureNamespace = uuid.NewV5(uuid.NamespaceURL, "https://epubforge.dev/fixtures")

// UID returns the deterministic package identifier for a fixture name.
func UID(name string) string {
	return "urn:uuid:" + uuid.NewV5(fixtureNamespace, name).String()
}

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const navXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Navigation</title></head>
<body>
  <nav epub:type="toc">
    <h1>Table of Contents</h1>
    <ol>
      <li><a href="chapter1.xhtml">Chapter 1</a></li>
    </ol>
  </nav>
</body>
</html>`

const chapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

// epub2ChapterXHTML is the EPUB 2 chapter variant with the XHTML 1.1 doctype.
const epub2ChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

// packageEPUB3 returns the baseline EPUB 3 package for a fixture.
func packageEPUB3(name string) *Package {
	return &Package{
		Version:          "3.0",
		UniqueIdentifier: "uid",
		Identifier:       Identifier{ID: "uid", Value: UID(name)},
		Title:            "Test Book",
		Language:         "en",
		Modified:         "2025-01-01T00:00:00Z",
		Items: []Item{
			{ID: "nav", Href: "nav.xhtml", MediaType: "application/xhtml+xml", Properties: "nav"},
			{ID: "chapter1", Href: "chapter1.xhtml", MediaType: "application/xhtml+xml"},
		},
		Spine: Spine{Refs: []ItemRef{{IDRef: "chapter1"}}},
	}
}

// packageEPUB2 returns the baseline EPUB 2 package for a fixture.
func packageEPUB2(name string) *Package {
	return &Package{
		Version:          "2.0",
		UniqueIdentifier: "uid",
		Identifier:       Identifier{ID: "uid", Value: UID(name)},
		Title:            "Test Book",
		Language:         "en",
		Items: []Item{
			{ID: "ncx", Href: "toc.ncx", MediaType: "application/x-dtbncx+xml"},
			{ID: "chapter1", Href: "chapter1.xhtml", MediaType: "application/xhtml+xml"},
		},
		Spine: Spine{Toc: "ncx", Refs: []ItemRef{{IDRef: "chapter1"}}},
	}
}

// ncxXML returns the baseline NCX document carrying uid.
func ncxXML(uid string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE ncx PUBLIC "-//NISO//DTD ncx 2005-1//EN" "http://www.daisy.org/z3986/2005/ncx-2005-1.dtd">
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="%s"/>
    <meta name="dtb:depth" content="1"/>
    <meta name="dtb:totalPageCount" content="0"/>
    <meta name="dtb:maxPageNumber" content="0"/>
  </head>
  <docTitle><text>Test Book</text></docTitle>
  <navMap>
    <navPoint id="np-1" playOrder="1">
      <navLabel><text>Chapter 1</text></navLabel>
      <content src="chapter1.xhtml"/>
    </navPoint>
  </navMap>
</ncx>`, uid)
}

// baseEPUB3 returns the minimal valid EPUB 3 source tree for a fixture.
func baseEPUB3(name string) FileSet {
	return FileSet{
		MimetypeFile:  []byte(mimetypePayload),
		ContainerFile: []byte(containerXML),
		PackageFile:   []byte(packageEPUB3(name).XML()),
		NavFile:       []byte(navXHTML),
		ChapterFile:   []byte(chapterXHTML),
	}
}

// baseEPUB2 returns the minimal valid EPUB 2 source tree for a fixture.
func baseEPUB2(name string) FileSet {
	return FileSet{
		MimetypeFile:  []byte(mimetypePayload),
		ContainerFile: []byte(containerXML),
		PackageFile:   []byte(packageEPUB2(name).XML()),
		NCXFile:       []byte(ncxXML(UID(name))),
		ChapterFile:   []byte(epub2ChapterXHTML),
	}
}
