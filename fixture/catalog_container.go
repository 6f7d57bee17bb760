package fixture

// OCF container defects: missing or broken META-INF/container.xml and
// wrong mimetype content. The mimetype placement defects (not first,
// compressed, extra field) cannot be expressed as source trees; they are
// marked ArchiveOnly and built straight into defective archives.

const malformedContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf"
  <!-- missing closing tags -->`

const noRootfileContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
  </rootfiles>
</container>`

const missingRootfileContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/missing.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const multipleRootfilesContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
    <rootfile full-path="OEBPS/content2.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const encryptionXML = `<?xml version="1.0" encoding="UTF-8"?>
<encryption xmlns="urn:oasis:names:tc:opendocument:xmlns:container" xmlns:enc="http://www.w3.org/2001/04/xmlenc#">
</encryption>`

func containerFixtures() []Fixture {
	return []Fixture{
		{
			Name:     "ocf-container-missing",
			Category: CategoryInvalid,
			Base:     BaseEPUB3,
			Remove:   []string{ContainerFile},
		},
		{
			Name:      "ocf-container-malformed-xml",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ContainerFile: []byte(malformedContainerXML)},
		},
		{
			Name:      "ocf-container-no-rootfile",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ContainerFile: []byte(noRootfileContainerXML)},
		},
		{
			Name:      "ocf-container-rootfile-not-found",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ContainerFile: []byte(missingRootfileContainerXML)},
		},
		{
			Name:      "ocf-container-multiple-rootfiles",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{ContainerFile: []byte(multipleRootfilesContainerXML)},
		},
		{
			Name:     "ocf-mimetype-missing",
			Category: CategoryInvalid,
			Base:     BaseEPUB3,
			Remove:   []string{MimetypeFile},
		},
		{
			Name:      "ocf-mimetype-wrong-content",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{MimetypeFile: []byte("application/zip")},
		},
		{
			Name:      "ocf-mimetype-extra-whitespace",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{MimetypeFile: []byte("application/epub+zip\n")},
		},
		{
			Name:      "ocf-metainf-extra-files",
			Category:  CategoryInvalid,
			Base:      BaseEPUB3,
			Overrides: FileSet{"META-INF/encryption.xml": []byte(encryptionXML)},
		},
		{
			Name:        "ocf-mimetype-not-first",
			Category:    CategoryInvalid,
			Base:        BaseEPUB3,
			ArchiveOnly: true,
		},
		{
			Name:        "ocf-mimetype-compressed",
			Category:    CategoryInvalid,
			Base:        BaseEPUB3,
			ArchiveOnly: true,
		},
		{
			Name:        "ocf-mimetype-extra-field",
			Category:    CategoryInvalid,
			Base:        BaseEPUB3,
			ArchiveOnly: true,
		},
	}
}
