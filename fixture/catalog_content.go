package fixture

import (
	"github.com/beevik/etree"
	"golang.org/x/text/encoding/unicode"
)

// Content-document defects. These are literal chapter variants; the two
// manifest-side members (missing CSS file, fixed-layout metadata) mutate
// the package document instead.

const fragmentChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p><a href="chapter1.xhtml#nonexistent">Link to nowhere</a></p>
</body>
</html>`

const remoteImageChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p><img src="http://example.com/image.png" alt="remote"/></p>
</body>
</html>`

const noTitleChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

const obsoleteElementChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <center><p>This uses an obsolete element.</p></center>
</body>
</html>`

const scriptedChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
  <script type="text/javascript">alert('hello');</script>
</body>
</html>`

const baseElementChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title>Chapter 1</title>
  <base href="http://example.com/"/>
</head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

const wrongNamespaceChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.example.com/wrong-namespace">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

// latin1ChapterXHTML declares ISO-8859-1 and carries a genuine 0xE9 byte.
var latin1ChapterXHTML = []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Caf` + "\xe9" + `</p>
</body>
</html>
`)

const utf16ChapterSource = `<?xml version="1.0" encoding="UTF-16"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>
`

// utf16Bytes transcodes ASCII markup to UTF-16LE with a BOM. Encoding
// ASCII cannot fail.
func utf16Bytes(s string) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return out
}

func contentFixtures() []Fixture {
	return []Fixture{
		{
			Name:      "content-fragment-id-missing",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(fragmentChapterXHTML)},
		},
		{
			Name:      "content-remote-resource",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(remoteImageChapterXHTML)},
		},
		// style.css is declared in the manifest but deliberately absent
		// from the tree.
		opfFixture("content-css-file-missing", nil,
			addManifestItem("css", "style.css", "text/css")),
		{
			Name:     "content-resource-not-in-manifest",
			Category: CategoryInvalid,
			Base:     BaseEPUB3,
			Overrides: FileSet{
				ChapterFile: []byte(chapterStyledXHTML),
				StyleFile:   []byte("body { margin: 0; }"),
			},
		},
		{
			Name:      "content-no-title",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(noTitleChapterXHTML)},
		},
		{
			Name:      "content-base-element",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(baseElementChapterXHTML)},
		},
		{
			Name:      "content-obsolete-element",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(obsoleteElementChapterXHTML)},
		},
		{
			Name:      "content-scripted-undeclared",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(scriptedChapterXHTML)},
		},
		// Declares pre-paginated layout while the chapter has no
		// viewport meta.
		opfFixture("content-fxl-no-viewport", nil, func(doc *etree.Document) {
			m := mustFind(doc, "//metadata").CreateElement("meta")
			m.CreateAttr("property", "rendition:layout")
			m.SetText("pre-paginated")
		}),
		{
			Name:      "content-wrong-namespace",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: []byte(wrongNamespaceChapterXHTML)},
		},
		{
			Name:      "content-non-utf8-encoding",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: latin1ChapterXHTML},
		},
		{
			Name:      "content-utf16-encoding",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ChapterFile: utf16Bytes(utf16ChapterSource)},
		},
	}
}
