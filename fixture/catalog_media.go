package fixture

// Stylesheet and media-resource defects. The CSS fixtures share a chapter
// that links style.css; the media fixtures embed small real payloads so
// the archive contains genuine (or genuinely broken) binary data.

const chapterImageXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p><img src="cover.png" alt="Cover"/></p>
</body>
</html>`

const chapterAudioXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 1</title></head>
<body>
  <h1>Chapter 1</h1>
  <p><audio src="clip.wav">Audio</audio></p>
</body>
</html>`

// wavClip is an empty but structurally complete RIFF/WAVE file.
var wavClip = []byte{
	'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00,
	'W', 'A', 'V', 'E', 'f', 'm', 't', ' ',
	0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x44, 0xac, 0x00, 0x00, 0x88, 0x58, 0x01, 0x00,
	0x02, 0x00, 0x10, 0x00, 'd', 'a', 't', 'a',
	0x00, 0x00, 0x00, 0x00,
}

func styleFixtures() []Fixture {
	return []Fixture{
		opfFixture("css-syntax-error",
			FileSet{
				ChapterFile: []byte(chapterStyledXHTML),
				StyleFile:   []byte("body { color: ; }\np { font-size }\n"),
			},
			addManifestItem("css", "style.css", "text/css")),
		opfFixture("css-font-face-missing-file",
			FileSet{
				ChapterFile: []byte(chapterStyledXHTML),
				StyleFile:   []byte("@font-face {\n  font-family: 'MyFont';\n  src: url('fonts/nonexistent.woff');\n}\nbody { font-family: 'MyFont'; }\n"),
			},
			addManifestItem("css", "style.css", "text/css")),
		// bg.png exists in the tree but only the stylesheet references
		// it; nothing declares it in the manifest.
		opfFixture("css-resource-not-in-manifest",
			FileSet{
				ChapterFile:    []byte(chapterStyledXHTML),
				StyleFile:      []byte(".decorated { background-image: url('bg.png'); }\n"),
				"OEBPS/bg.png": pngPixel,
			},
			addManifestItem("css", "style.css", "text/css")),
	}
}

func mediaFixtures() []Fixture {
	return []Fixture{
		opfFixture("image-media-type-wrong",
			FileSet{
				ChapterFile:       []byte(chapterImageXHTML),
				"OEBPS/cover.png": pngPixel,
			},
			addManifestItem("img1", "cover.png", "image/jpeg")),
		opfFixture("image-corrupted",
			FileSet{
				ChapterFile:       []byte(chapterImageXHTML),
				"OEBPS/cover.png": []byte("NOT A VALID PNG FILE AT ALL"),
			},
			addManifestItem("img1", "cover.png", "image/png")),
		opfFixture("audio-non-core-media-type",
			FileSet{
				ChapterFile:      []byte(chapterAudioXHTML),
				"OEBPS/clip.wav": wavClip,
			},
			addManifestItem("audio1", "clip.wav", "audio/wav")),
	}
}
