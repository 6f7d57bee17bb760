package expect

// Checks maps every invalid catalog fixture to its curated check.
// Check identifiers group by concern: OCF container rules, OPF package
// rules, RSC resource rules, HTM/ENC content rules, NAV navigation
// rules, E2 EPUB 2 rules, CSS and MED media rules. Message patterns are
// regexps over epubcheck 5.3.0 output.
var Checks = map[string]Check{
	// Container and mimetype.
	"ocf-mimetype-missing": {
		CheckID:        "OCF-001",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-006",
		MessagePattern: "Mimetype file entry is missing",
	},
	"ocf-mimetype-wrong-content": {
		CheckID:        "OCF-002",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-007",
		MessagePattern: "application/epub\\+zip",
	},
	"ocf-mimetype-extra-whitespace": {
		CheckID:        "OCF-002",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-007",
		MessagePattern: "Mimetype file should only contain the string",
	},
	"ocf-mimetype-not-first": {
		CheckID:        "OCF-003",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-006",
		MessagePattern: "not the first file in the archive",
	},
	"ocf-mimetype-compressed": {
		CheckID:        "OCF-004",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-007",
		MessagePattern: "should not be compressed",
	},
	"ocf-mimetype-extra-field": {
		CheckID:        "OCF-005",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-005",
		MessagePattern: "extra field",
	},
	"ocf-container-missing": {
		CheckID:        "OCF-006",
		Severity:       SeverityFatal,
		EpubcheckID:    "RSC-002",
		MessagePattern: "container\\.xml.*could not be found",
	},
	"ocf-container-malformed-xml": {
		CheckID:        "OCF-007",
		Severity:       SeverityFatal,
		EpubcheckID:    "RSC-016",
		MessagePattern: "XML document structures must start and end",
	},
	"ocf-container-no-rootfile": {
		CheckID:        "OCF-008",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-003",
		MessagePattern: "No rootfile tag with media type",
	},
	"ocf-container-rootfile-not-found": {
		CheckID:        "OCF-009",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-002",
		MessagePattern: "was not found",
	},
	"ocf-metainf-extra-files": {
		CheckID:        "OCF-010",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "encryption.*incomplete",
	},
	"ocf-container-multiple-rootfiles": {
		CheckID:        "OCF-011",
		Severity:       SeverityFatal,
		EpubcheckID:    "OPF-002",
		MessagePattern: "was not found",
	},

	// Package document structure.
	"opf-missing-dc-title": {
		CheckID:        "OPF-004",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element.*title",
	},
	"opf-missing-unique-identifier": {
		CheckID:        "OPF-007",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required attribute.*unique-identifier",
	},
	"opf-malformed-xml": {
		CheckID:        "OPF-011",
		Severity:       SeverityFatal,
		EpubcheckID:    "RSC-016",
		MessagePattern: "XML document structures must start and end",
	},
	"opf-missing-metadata": {
		CheckID:        "OPF-012",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element.*metadata",
		Note:           "Cascading errors from missing metadata element",
	},
	"opf-missing-manifest": {
		CheckID:        "OPF-013",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element.*manifest",
		Note:           "Cascading errors from missing manifest element",
	},
	"opf-missing-spine": {
		CheckID:        "OPF-014",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element.*spine",
		Note:           "Cascading errors from missing spine element",
	},
	"opf-wrong-version": {
		CheckID:        "OPF-015",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-001",
		MessagePattern: "version",
	},
	"opf-duplicate-manifest-href": {
		CheckID:        "OPF-016",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-074",
		MessagePattern: "declared in several manifest items",
	},
	"opf-duplicate-spine-idref": {
		CheckID:        "OPF-017",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "same manifest entry as a previous",
	},
	"opf-manifest-item-no-id": {
		CheckID:        "OPF-018",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required attribute.*id",
		Note:           "Cascading errors from missing id attribute",
	},
	"opf-dcterms-modified-invalid": {
		CheckID:        "OPF-019",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "dcterms:modified",
	},
	"opf-dc-language-invalid": {
		CheckID:        "OPF-020",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-092",
		MessagePattern: "not well-formed",
	},
	"opf-dc-identifier-empty": {
		CheckID:        "OPF-031",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "dc:identifier.*invalid",
	},

	// Fallbacks and media declarations in the package.
	"opf-fallback-ref-missing": {
		CheckID:        "OPF-021",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-040",
		MessagePattern: "could not be found",
	},
	"opf-fallback-cycle": {
		CheckID:        "OPF-022",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-045",
		MessagePattern: "circular reference",
	},
	"opf-spine-non-content-doc": {
		CheckID:        "OPF-023",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-043",
		MessagePattern: "non-standard media-type.*no fallback",
	},
	"opf-media-type-mismatch": {
		CheckID:        "OPF-024",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-029",
		MessagePattern: "does not appear to match the media type",
		Note:           "Cascading errors from media type mismatch",
	},
	"opf-cover-image-not-image": {
		CheckID:        "OPF-025",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-012",
		MessagePattern: "cover-image.*not defined for media type",
	},
	"opf-multiple-nav": {
		CheckID:        "OPF-026",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "Exactly one.*nav",
	},

	// Content documents.
	"content-fragment-id-missing": {
		CheckID:        "RSC-003",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-012",
		MessagePattern: "Fragment identifier is not defined",
	},
	"content-remote-resource": {
		CheckID:        "RSC-004",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-006",
		MessagePattern: "Remote resource reference is not allowed",
		Note:           "Also triggers OPF-014 for undeclared remote-resources property",
	},
	"content-css-file-missing": {
		CheckID:        "RSC-005",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-001",
		MessagePattern: "style\\.css.*could not be found",
	},
	"content-resource-not-in-manifest": {
		CheckID:        "RSC-006",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-008",
		MessagePattern: "not declared in the OPF manifest",
	},
	"content-no-title": {
		CheckID:        "HTM-002",
		Severity:       SeverityWarning,
		EpubcheckID:    "RSC-017",
		MessagePattern: "title",
		Note:           "epubcheck reports this as a WARNING, not an ERROR",
	},
	"content-base-element": {
		CheckID:       "HTM-010",
		Severity:      SeverityError,
		Note:          "epubcheck 5.3.0 does not flag base elements in content documents. Spec restricts their use.",
		ValidOverride: true,
	},
	"content-obsolete-element": {
		CheckID:        "HTM-004",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "center.*not allowed",
	},
	"content-scripted-undeclared": {
		CheckID:        "HTM-005",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-014",
		MessagePattern: "scripted.*should be declared",
	},
	"content-fxl-no-viewport": {
		CheckID:        "HTM-008",
		Severity:       SeverityError,
		EpubcheckID:    "HTM-046",
		MessagePattern: "no.*viewport",
	},
	"content-wrong-namespace": {
		CheckID:        "HTM-012",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "namespace.*wrong",
	},
	"content-non-utf8-encoding": {
		CheckID:        "ENC-001",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-028",
		MessagePattern: "must be encoded in UTF-8",
	},
	"content-utf16-encoding": {
		CheckID:        "ENC-002",
		Severity:       SeverityError,
		EpubcheckID:    "HTM_058",
		MessagePattern: "must be encoded in UTF-8",
	},

	// Navigation document.
	"nav-toc-broken-link": {
		CheckID:        "NAV-003",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-007",
		MessagePattern: "nonexistent\\.xhtml.*could not be found",
	},
	"nav-toc-empty-link": {
		CheckID:        "NAV-004",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "Anchors within nav.*must contain text",
	},
	"nav-multiple-toc": {
		CheckID:        "NAV-005",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "Exactly one.*toc",
	},
	"nav-landmarks-broken": {
		CheckID:        "NAV-006",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-007",
		MessagePattern: "nonexistent\\.xhtml.*could not be found",
	},
	"nav-toc-no-ol": {
		CheckID:        "NAV-008",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element.*ol",
	},

	// EPUB 2.
	"epub2-ncx-missing": {
		CheckID:        "E2-001",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-001",
		MessagePattern: "toc\\.ncx.*could not be found",
	},
	"epub2-ncx-malformed": {
		CheckID:        "E2-002",
		Severity:       SeverityFatal,
		EpubcheckID:    "RSC-016",
		MessagePattern: "XML document structures must start and end",
	},
	"epub2-ncx-no-navmap": {
		CheckID:        "E2-003",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required element",
	},
	"epub2-spine-no-toc": {
		CheckID:        "E2-004",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-005",
		MessagePattern: "missing required attribute.*toc",
	},
	"epub2-guide-broken-href": {
		CheckID:        "E2-009",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-031",
		MessagePattern: "guide.*not declared in OPF manifest",
	},
	"epub2-ncx-uid-mismatch": {
		CheckID:        "E2-010",
		Severity:       SeverityError,
		EpubcheckID:    "NCX-001",
		MessagePattern: "NCX identifier.*does not match OPF identifier",
	},

	// Stylesheets.
	"css-syntax-error": {
		CheckID:        "CSS-001",
		Severity:       SeverityError,
		EpubcheckID:    "CSS-008",
		MessagePattern: "error occurred while parsing the CSS",
	},
	"css-font-face-missing-file": {
		CheckID:        "CSS-006",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-007",
		MessagePattern: "could not be found",
	},
	"css-resource-not-in-manifest": {
		CheckID:        "CSS-008",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-008",
		MessagePattern: "not declared in the OPF manifest",
	},

	// Media resources.
	"image-media-type-wrong": {
		CheckID:        "MED-001",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-029",
		MessagePattern: "does not appear to match the media type",
	},
	"image-corrupted": {
		CheckID:        "MED-003",
		Severity:       SeverityError,
		EpubcheckID:    "PKG-021",
		MessagePattern: "Corrupted image",
	},
	"audio-non-core-media-type": {
		CheckID:        "MED-005",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-032",
		MessagePattern: "Fallback must be provided for foreign resources",
	},

	// Manifest path hygiene.
	"manifest-path-traversal": {
		CheckID:        "RSC-011",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-001",
		MessagePattern: "could not be found",
	},
	"manifest-duplicate-item-same-resource": {
		CheckID:        "RSC-012",
		Severity:       SeverityError,
		EpubcheckID:    "OPF-060",
		MessagePattern: "Duplicate entry in the ZIP",
	},
	"manifest-absolute-path": {
		CheckID:        "RSC-013",
		Severity:       SeverityError,
		EpubcheckID:    "RSC-026",
		MessagePattern: "leaks outside the container",
	},
}
