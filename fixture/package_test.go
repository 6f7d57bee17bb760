package fixture

import (
	"strings"
	"testing"
)

func TestPackageDocument(t *testing.T) {
	p := &Package{
		Version:          "3.0",
		UniqueIdentifier: "uid",
		Identifier:       Identifier{ID: "uid", Value: "urn:uuid:test"},
		Title:            "Structure Check",
		Language:         "en",
		Modified:         "2025-01-01T00:00:00Z",
		Metas: []Meta{
			{Property: "rendition:layout", Value: "pre-paginated"},
			{Name: "cover", Content: "cover-img"},
		},
		Items: []Item{
			{ID: "c1", Href: "c1.xhtml", MediaType: "application/xhtml+xml", Fallback: "c2"},
			{ID: "c2", Href: "c2.xhtml", MediaType: "application/xhtml+xml"},
		},
		Spine: Spine{Refs: []ItemRef{{IDRef: "c1", Linear: "no"}}},
	}

	doc := parseXML(t, []byte(p.XML()))

	meta := doc.FindElement("//meta[@property='rendition:layout']")
	if meta == nil || meta.Text() != "pre-paginated" {
		t.Error("Property-style meta missing or wrong")
	}
	named := doc.FindElement("//meta[@name='cover']")
	if named == nil || named.SelectAttrValue("content", "") != "cover-img" {
		t.Error("Name/content-style meta missing or wrong")
	}

	item := doc.FindElement("//item[@id='c1']")
	if item == nil {
		t.Fatal("No manifest item c1")
	}
	if item.SelectAttrValue("fallback", "") != "c2" {
		t.Error("Fallback attribute missing")
	}

	ref := doc.FindElement("//itemref[@idref='c1']")
	if ref == nil {
		t.Fatal("No spine itemref c1")
	}
	if ref.SelectAttrValue("linear", "") != "no" {
		t.Error("Linear attribute missing")
	}
}

func TestPackageDocument_GuideOnlyWhenSet(t *testing.T) {
	p := &Package{Version: "2.0", Identifier: Identifier{Value: "x"}, Title: "T", Language: "en"}
	if strings.Contains(p.XML(), "<guide>") {
		t.Error("Guide element should be absent when no references are set")
	}

	p.Guide = []Reference{{Type: "toc", Title: "Table of Contents", Href: "toc.xhtml"}}
	doc := parseXML(t, []byte(p.XML()))
	ref := doc.FindElement("//guide/reference")
	if ref == nil {
		t.Fatal("No guide reference")
	}
	if ref.SelectAttrValue("type", "") != "toc" {
		t.Error("Guide reference type missing")
	}
}

func TestPackageXMLDeclaredUTF8(t *testing.T) {
	p := packageEPUB3("decl-check")
	xml := p.XML()

	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("Package XML starts with %q", xml[:40])
	}
	if !strings.Contains(xml, `xmlns="http://www.idpf.org/2007/opf"`) {
		t.Error("Package element should carry the OPF namespace")
	}
	if !strings.Contains(xml, `xmlns:dc="http://purl.org/dc/elements/1.1/"`) {
		t.Error("Metadata should declare the dc prefix")
	}
}
