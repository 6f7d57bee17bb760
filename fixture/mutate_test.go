package fixture

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestMutationHelpers(t *testing.T) {
	doc := parseXML(t, []byte(packageEPUB3("mutate-check").XML()))

	setAttr(doc, "//package", "version", "4.0")
	if doc.FindElement("//package").SelectAttrValue("version", "") != "4.0" {
		t.Error("setAttr did not update the attribute")
	}

	removeAttr(doc, "//item[@id='chapter1']", "id")
	if doc.FindElement("//item[@id='chapter1']") != nil {
		t.Error("removeAttr did not drop the attribute")
	}

	setText(doc, "//dc:title", "")
	if doc.FindElement("//dc:title").Text() != "" {
		t.Error("setText did not clear the text")
	}

	removeElement(doc, "//spine")
	if doc.FindElement("//spine") != nil {
		t.Error("removeElement did not detach the element")
	}
}

func TestMustFind_PanicsOnMissingPath(t *testing.T) {
	doc := parseXML(t, []byte(packageEPUB3("panic-check").XML()))

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a path the baseline does not contain")
		}
	}()
	mustFind(doc, "//nonexistent")
}

func TestOPF3AppliesMutation(t *testing.T) {
	out := opf3("opf3-check", func(doc *etree.Document) {
		removeElement(doc, "//manifest")
	})

	if strings.Contains(string(out), "<manifest>") {
		t.Error("Mutation should have removed the manifest")
	}
	if !strings.Contains(string(out), "<spine>") {
		t.Error("Untouched elements should survive")
	}
}
