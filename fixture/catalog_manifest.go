package fixture

import (
	"github.com/beevik/etree"
)

// Manifest path hygiene: hrefs escaping the container and case-variant
// duplicates. The duplicate fixture's archive additionally receives a
// case-variant ZIP entry after packing, so the collision shows up even
// when the corpus is built on a case-sensitive filesystem.

const duplicateChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1 Dup</title></head>
<body>
  <h1>Chapter 1 Duplicate</h1>
  <p>Hello, world.</p>
</body>
</html>`

func manifestFixtures() []Fixture {
	return []Fixture{
		opfFixture("manifest-path-traversal", nil, func(doc *etree.Document) {
			setAttr(doc, "//item[@id='chapter1']", "href", "../outside.xhtml")
		}),
		opfFixture("manifest-absolute-path", nil, func(doc *etree.Document) {
			setAttr(doc, "//item[@id='chapter1']", "href", "/OEBPS/chapter1.xhtml")
		}),
		opfFixture("manifest-duplicate-item-same-resource",
			FileSet{"OEBPS/Chapter1.xhtml": []byte(duplicateChapterXHTML)},
			addManifestItem("chapter1dup", "Chapter1.xhtml", "application/xhtml+xml")),
	}
}
