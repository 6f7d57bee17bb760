package fixture

import (
	"github.com/beevik/etree"
)

// Namespaces stamped into generated documents.
const (
	nsOPF = "http://www.idpf.org/2007/opf"
	nsDC  = "http://purl.org/dc/elements/1.1/"
)

// Package models the parts of a package document the generator varies.
// Serialization goes through etree so defect variants can mutate the
// document tree while keeping stable formatting and namespace prefixes.
type Package struct {
	Version          string
	UniqueIdentifier string
	Prefix           string

	Identifier Identifier
	Title      string
	Language   string
	Modified   string // dcterms:modified value, EPUB 3 only
	Metas      []Meta

	Items []Item
	Spine Spine
	Guide []Reference
}

// Identifier is the package's primary dc:identifier.
type Identifier struct {
	ID    string
	Value string
}

// Meta is one metadata meta element, either property-style (EPUB 3) or
// name/content-style (EPUB 2).
type Meta struct {
	Property string
	Refines  string
	Value    string

	Name    string
	Content string
}

// Item is one manifest item.
type Item struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
	Fallback   string
}

// Spine holds the reading order.
type Spine struct {
	Toc  string
	Refs []ItemRef
}

// ItemRef is one spine itemref.
type ItemRef struct {
	IDRef      string
	Linear     string
	Properties string
}

// Reference is one EPUB 2 guide reference.
type Reference struct {
	Type  string
	Title string
	Href  string
}

// Document builds the package document as an etree document.
func (p *Package) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("package")
	root.CreateAttr("xmlns", nsOPF)
	root.CreateAttr("version", p.Version)
	if p.UniqueIdentifier != "" {
		root.CreateAttr("unique-identifier", p.UniqueIdentifier)
	}
	if p.Prefix != "" {
		root.CreateAttr("prefix", p.Prefix)
	}

	metadata := root.CreateElement("metadata")
	metadata.CreateAttr("xmlns:dc", nsDC)
	metadata.CreateAttr("xmlns:opf", nsOPF)

	id := metadata.CreateElement("dc:identifier")
	if p.Identifier.ID != "" {
		id.CreateAttr("id", p.Identifier.ID)
	}
	id.SetText(p.Identifier.Value)

	metadata.CreateElement("dc:title").SetText(p.Title)
	metadata.CreateElement("dc:language").SetText(p.Language)

	if p.Modified != "" {
		m := metadata.CreateElement("meta")
		m.CreateAttr("property", "dcterms:modified")
		m.SetText(p.Modified)
	}

	for _, m := range p.Metas {
		el := metadata.CreateElement("meta")
		if m.Property != "" {
			el.CreateAttr("property", m.Property)
			if m.Refines != "" {
				el.CreateAttr("refines", m.Refines)
			}
			el.SetText(m.Value)
		} else if m.Name != "" {
			el.CreateAttr("name", m.Name)
			el.CreateAttr("content", m.Content)
		}
	}

	manifest := root.CreateElement("manifest")
	for _, item := range p.Items {
		el := manifest.CreateElement("item")
		if item.ID != "" {
			el.CreateAttr("id", item.ID)
		}
		el.CreateAttr("href", item.Href)
		if item.MediaType != "" {
			el.CreateAttr("media-type", item.MediaType)
		}
		if item.Properties != "" {
			el.CreateAttr("properties", item.Properties)
		}
		if item.Fallback != "" {
			el.CreateAttr("fallback", item.Fallback)
		}
	}

	spine := root.CreateElement("spine")
	if p.Spine.Toc != "" {
		spine.CreateAttr("toc", p.Spine.Toc)
	}
	for _, ref := range p.Spine.Refs {
		el := spine.CreateElement("itemref")
		el.CreateAttr("idref", ref.IDRef)
		if ref.Linear != "" {
			el.CreateAttr("linear", ref.Linear)
		}
		if ref.Properties != "" {
			el.CreateAttr("properties", ref.Properties)
		}
	}

	if len(p.Guide) > 0 {
		guide := root.CreateElement("guide")
		for _, ref := range p.Guide {
			el := guide.CreateElement("reference")
			el.CreateAttr("type", ref.Type)
			if ref.Title != "" {
				el.CreateAttr("title", ref.Title)
			}
			el.CreateAttr("href", ref.Href)
		}
	}

	return doc
}

// XML serializes the package document.
func (p *Package) XML() string {
	return renderDoc(p.Document())
}
