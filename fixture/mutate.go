package fixture

import (
	"github.com/beevik/etree"
)

// Helpers for applying single defects to a baseline document. A path that
// no longer matches means the baseline itself changed underneath the
// catalog; that is a programming error, so the helpers panic instead of
// silently emitting a defect-free fixture.

func mustFind(doc *etree.Document, path string) *etree.Element {
	el := doc.FindElement(path)
	if el == nil {
		panic("fixture: element not found: " + path)
	}
	return el
}

func removeElement(doc *etree.Document, path string) {
	el := mustFind(doc, path)
	el.Parent().RemoveChild(el)
}

func setAttr(doc *etree.Document, path, key, value string) {
	mustFind(doc, path).CreateAttr(key, value)
}

func removeAttr(doc *etree.Document, path, key string) {
	mustFind(doc, path).RemoveAttr(key)
}

func setText(doc *etree.Document, path, text string) {
	mustFind(doc, path).SetText(text)
}

// renderDoc serializes with two-space indentation. Writing to the
// in-memory buffer cannot fail.
func renderDoc(doc *etree.Document) string {
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		panic(err)
	}
	return s
}

// opf3 builds the baseline EPUB 3 package document for name, applies
// mutate, and serializes the result.
func opf3(name string, mutate func(*etree.Document)) []byte {
	doc := packageEPUB3(name).Document()
	mutate(doc)
	return []byte(renderDoc(doc))
}

// opf2 is opf3 for the EPUB 2 baseline.
func opf2(name string, mutate func(*etree.Document)) []byte {
	doc := packageEPUB2(name).Document()
	mutate(doc)
	return []byte(renderDoc(doc))
}
