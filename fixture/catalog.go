package fixture

import (
	"github.com/beevik/etree"
)

// Catalog returns every fixture in the corpus, grouped by concern.
// Order is stable so generation output and progress logs are
// reproducible run to run.
func Catalog() []Fixture {
	var all []Fixture
	all = append(all, containerFixtures()...)
	all = append(all, packageFixtures()...)
	all = append(all, fallbackFixtures()...)
	all = append(all, contentFixtures()...)
	all = append(all, navFixtures()...)
	all = append(all, epub2Fixtures()...)
	all = append(all, styleFixtures()...)
	all = append(all, mediaFixtures()...)
	all = append(all, manifestFixtures()...)
	all = append(all, validFixtures()...)
	return all
}

// ByName looks a fixture up in the catalog.
func ByName(name string) (Fixture, bool) {
	for _, f := range Catalog() {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// opfFixture builds an invalid EPUB 3 fixture whose defect lives in the
// package document, expressed as a mutation of the baseline. extra files
// ride along unchanged; pass nil when the package document is the whole
// defect.
func opfFixture(name string, extra FileSet, mutate func(*etree.Document)) Fixture {
	f := Fixture{
		Name:      name,
		Category:  CategoryInvalid,
		Base:      BaseEPUB3,
		Overrides: FileSet{PackageFile: opf3(name, mutate)},
	}
	for p, content := range extra {
		f.Overrides[p] = content
	}
	return f
}

// addManifestItem returns a mutation that appends a plain manifest item.
func addManifestItem(id, href, mediaType string) func(*etree.Document) {
	return func(doc *etree.Document) {
		item := mustFind(doc, "//manifest").CreateElement("item")
		item.CreateAttr("id", id)
		item.CreateAttr("href", href)
		item.CreateAttr("media-type", mediaType)
	}
}

// chapterStyledXHTML is the baseline chapter with a stylesheet link,
// shared by the CSS fixtures and the styled valid fixture.
const chapterStyledXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title>Chapter 1</title>
  <link rel="stylesheet" type="text/css" href="style.css"/>
</head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

// pngPixel is a well-formed 1x1 PNG for fixtures that need a real image.
var pngPixel = []byte{
	0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53, 0xde,
	0x00, 0x00, 0x00, 0x0c, 'I', 'D', 'A', 'T',
	0x78, 0x9c, 0x63, 0xf8, 0x0f, 0x00, 0x00, 0x01,
	0x01, 0x00, 0x05, 0x18, 0xd8, 0x4e,
	0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D',
	0xae, 0x42, 0x60, 0x82,
}
