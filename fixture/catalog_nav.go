package fixture

// Navigation-document defects, all literal variants of the baseline nav.

const brokenLinkNavXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Navigation</title></head>
<body>
  <nav epub:type="toc">
    <h1>Table of Contents</h1>
    <ol>
      <li><a href="chapter1.xhtml">Chapter 1</a></li>
      <li><a href="nonexistent.xhtml">Missing Chapter</a></li>
    </ol>
  </nav>
</body>
</html>`

const emptyLinkNavXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Navigation</title></head>
<body>
  <nav epub:type="toc">
    <h1>Table of Contents</h1>
    <ol>
      <li><a href="chapter1.xhtml"></a></li>
    </ol>
  </nav>
</body>
</html>`

const doubleTocNavXHTML = `<?xml version="1.0" encoding="UTF-8"?>
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
  <nav epub:type="toc">
    <h1>Another TOC</h1>
    <ol>
      <li><a href="chapter1.xhtml">Chapter 1 again</a></li>
    </ol>
  </nav>
</body>
</html>`

const brokenLandmarksNavXHTML = `<?xml version="1.0" encoding="UTF-8"?>
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
  <nav epub:type="landmarks">
    <h2>Landmarks</h2>
    <ol>
      <li><a epub:type="bodymatter" href="nonexistent.xhtml">Start</a></li>
    </ol>
  </nav>
</body>
</html>`

const noOlNavXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Navigation</title></head>
<body>
  <nav epub:type="toc">
    <h1>Table of Contents</h1>
    <ul>
      <li><a href="chapter1.xhtml">Chapter 1</a></li>
    </ul>
  </nav>
</body>
</html>`

func navFixtures() []Fixture {
	return []Fixture{
		{
			Name:      "nav-toc-broken-link",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{NavFile: []byte(brokenLinkNavXHTML)},
		},
		{
			Name:      "nav-toc-empty-link",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{NavFile: []byte(emptyLinkNavXHTML)},
		},
		{
			Name:      "nav-multiple-toc",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{NavFile: []byte(doubleTocNavXHTML)},
		},
		{
			Name:      "nav-landmarks-broken",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{NavFile: []byte(brokenLandmarksNavXHTML)},
		},
		{
			Name:      "nav-toc-no-ol",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{NavFile: []byte(noOlNavXHTML)},
		},
	}
}
