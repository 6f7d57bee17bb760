package console

import (
	"bytes"
	"testing"
)

func TestConsoleOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewForTesting(&out, &errOut)

	c.Infof("Done: %d created", 3)
	c.Okf("Created", "valid/minimal-epub3 (%d files)", 5)
	c.Skipf("%s (no reference)", "opf-wrong-version")
	c.Errorf("pack failed: %v", "boom")

	want := "Done: 3 created\n" +
		"  Created: valid/minimal-epub3 (5 files)\n" +
		"  SKIP: opf-wrong-version (no reference)\n"
	if out.String() != want {
		t.Errorf("Out = %q, want %q", out.String(), want)
	}

	if errOut.String() != "Error: pack failed: boom\n" {
		t.Errorf("Err = %q", errOut.String())
	}
}
