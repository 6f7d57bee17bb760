package ocf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ZIP record layout constants used by the local-header patch.
const (
	localHeaderSig     = 0x04034b50
	centralHeaderSig   = 0x02014b50
	endOfCentralDirSig = 0x06054b50

	localHeaderLen     = 30
	centralHeaderLen   = 46
	endOfCentralDirLen = 22
)

// Synthetic extra-field block spliced into the mimetype local header:
// an unregistered tag, a little-endian payload length, and zero filler.
const (
	extraFieldTag        = 0xCAFE
	extraFieldPayloadLen = 4
)

// BuildExtraFieldMimetype assembles a conformant archive in memory, then
// splices a synthetic extra-field block into the mimetype entry's local
// header. The archive library has no API for local-header extra fields,
// so this is a deliberate two-phase byte patch of the finished buffer,
// not a general archive-editing facility.
func BuildExtraFieldMimetype(srcDir, outPath string) error {
	if _, err := requireMimetype(srcDir); err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := newZipWriter(&buf)
	if err := writeConformant(zw, srcDir); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip writer: %w", err)
	}

	patched, err := injectExtraField(buf.Bytes())
	if err != nil {
		return fmt.Errorf("patch %s: %w", outPath, err)
	}

	return saveBytes(outPath, patched)
}

// injectExtraField returns a copy of archive with the synthetic block
// spliced into the first local file header, its extra-field length updated,
// and every offset the insertion shifts (later local headers, the central
// directory start) rewritten so the archive stays structurally valid.
// The first entry must sit at offset 0; anything else means the writer
// layout changed and the offset arithmetic would corrupt the archive.
func injectExtraField(archive []byte) ([]byte, error) {
	if len(archive) < localHeaderLen {
		return nil, fmt.Errorf("archive too short for a local file header: %d bytes", len(archive))
	}
	if sig := binary.LittleEndian.Uint32(archive[0:4]); sig != localHeaderSig {
		return nil, fmt.Errorf("want local file header signature %#08x at offset 0, got %#08x", uint32(localHeaderSig), sig)
	}

	nameLen := int(binary.LittleEndian.Uint16(archive[26:28]))
	extraLen := int(binary.LittleEndian.Uint16(archive[28:30]))
	insertAt := localHeaderLen + nameLen + extraLen
	if insertAt > len(archive) {
		return nil, fmt.Errorf("first local header spans past end of archive (offset %d of %d)", insertAt, len(archive))
	}

	block := make([]byte, 4+extraFieldPayloadLen)
	binary.LittleEndian.PutUint16(block[0:2], extraFieldTag)
	binary.LittleEndian.PutUint16(block[2:4], extraFieldPayloadLen)
	// payload stays zero filler

	out := make([]byte, 0, len(archive)+len(block))
	out = append(out, archive[:insertAt]...)
	out = append(out, block...)
	out = append(out, archive[insertAt:]...)

	binary.LittleEndian.PutUint16(out[28:30], uint16(extraLen+len(block)))

	if err := shiftCentralDirectory(out, insertAt, len(block)); err != nil {
		return nil, err
	}
	return out, nil
}

// shiftCentralDirectory rewrites the offsets invalidated by inserting n
// bytes at insertAt: local-header offsets recorded in central directory
// entries, and the directory's own start offset in the end record. It
// operates on the already-spliced buffer, where the directory itself sits
// n bytes past its recorded position.
func shiftCentralDirectory(archive []byte, insertAt, n int) error {
	eocd := len(archive) - endOfCentralDirLen
	if eocd < 0 || binary.LittleEndian.Uint32(archive[eocd:eocd+4]) != endOfCentralDirSig {
		return fmt.Errorf("end of central directory record not found")
	}

	entries := int(binary.LittleEndian.Uint16(archive[eocd+10 : eocd+12]))
	dirOffset := int(binary.LittleEndian.Uint32(archive[eocd+16 : eocd+20]))

	pos := dirOffset + n
	for i := 0; i < entries; i++ {
		if pos+centralHeaderLen > len(archive) {
			return fmt.Errorf("central directory entry %d out of bounds", i)
		}
		if sig := binary.LittleEndian.Uint32(archive[pos : pos+4]); sig != centralHeaderSig {
			return fmt.Errorf("central directory entry %d: bad signature %#08x", i, sig)
		}

		headerOffset := binary.LittleEndian.Uint32(archive[pos+42 : pos+46])
		if int(headerOffset) >= insertAt {
			binary.LittleEndian.PutUint32(archive[pos+42:pos+46], headerOffset+uint32(n))
		}

		nameLen := int(binary.LittleEndian.Uint16(archive[pos+28 : pos+30]))
		extraLen := int(binary.LittleEndian.Uint16(archive[pos+30 : pos+32]))
		commentLen := int(binary.LittleEndian.Uint16(archive[pos+32 : pos+34]))
		pos += centralHeaderLen + nameLen + extraLen + commentLen
	}

	binary.LittleEndian.PutUint32(archive[eocd+16:eocd+20], uint32(dirOffset+n))
	return nil
}
