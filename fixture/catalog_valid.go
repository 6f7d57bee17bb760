package fixture

// Valid baselines plus two richer valid books: a fixed-layout EPUB 3 and
// a reflowable one with a stylesheet. These double as control fixtures
// for the expectation records.

const fxlChapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title>Chapter 1</title>
  <meta name="viewport" content="width=600, height=800"/>
</head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello, world.</p>
</body>
</html>`

func validFixtures() []Fixture {
	return []Fixture{
		{Name: "minimal-epub3", Category: CategoryValid, Base: BaseEPUB3},
		{Name: "minimal-epub2", Category: CategoryValid, Base: BaseEPUB2},
		fxlEPUB3(),
		epub3WithCSS(),
	}
}

func fxlEPUB3() Fixture {
	const name = "fxl-epub3"
	pkg := packageEPUB3(name)
	pkg.Title = "FXL Test Book"
	pkg.Metas = []Meta{
		{Property: "rendition:layout", Value: "pre-paginated"},
		{Property: "rendition:orientation", Value: "auto"},
		{Property: "rendition:spread", Value: "auto"},
	}
	return Fixture{
		Name:     name,
		Category: CategoryValid,
		Base:     BaseEPUB3,
		Overrides: FileSet{
			PackageFile: []byte(pkg.XML()),
			ChapterFile: []byte(fxlChapterXHTML),
		},
	}
}

func epub3WithCSS() Fixture {
	const name = "epub3-with-css"
	pkg := packageEPUB3(name)
	pkg.Title = "Test Book with CSS"
	pkg.Items = append(pkg.Items, Item{ID: "css", Href: "style.css", MediaType: "text/css"})
	return Fixture{
		Name:     name,
		Category: CategoryValid,
		Base:     BaseEPUB3,
		Overrides: FileSet{
			PackageFile: []byte(pkg.XML()),
			ChapterFile: []byte(chapterStyledXHTML),
			StyleFile:   []byte("body { margin: 1em; font-family: serif; }\nh1 { color: #333; }\np { line-height: 1.5; }\n"),
		},
	}
}
