package unityfs

import (
	"bytes"
	"fmt"
	"io"
)

const bundleMagic = "UnityFS"

// Archive/block-info flag bits named in spec.md §4.5. Kept as named
// constants rather than inlined magic numbers, even though this codec does
// not need to interpret most of them beyond round-tripping.
const (
	ArchiveFlagBlocksAndDirectoryInfoCombined uint32 = 1 << 6
	ArchiveFlagBlockInfoNeedPaddingAtStart    uint32 = 1 << 7
	ArchiveFlagsBase                          uint32 = 3
)

// DefaultArchiveFlags matches the bit-exact value spec.md §4.5 step 4 names.
const DefaultArchiveFlags = ArchiveFlagBlocksAndDirectoryInfoCombined | ArchiveFlagBlockInfoNeedPaddingAtStart | ArchiveFlagsBase

// DefaultBlockInfoFlags is the block-info flags value named in spec.md §4.5.
const DefaultBlockInfoFlags uint32 = 64

// BundleEntry is one named file inside a bundle archive (a sharedAssets file
// or a scene file).
type BundleEntry struct {
	Name string
	File *SerializedFile
}

// Bundle is the UnityFS archive envelope (spec.md §3), an ordered mapping
// from internal file name to SerializedFile plus the envelope metadata
// spec.md §4.5/§6 name bit-exactly.
type Bundle struct {
	Signature     string
	Version       uint32
	VersionPlayer string
	VersionEngine string
	ArchiveFlags  uint32
	BlockInfoFlags uint32
	Compression   CompressionType
	Files         []BundleEntry
}

// NewBundle returns an envelope pre-populated with the bit-exact values
// spec.md §4.5 step 4 and §6 specify.
func NewBundle() *Bundle {
	return &Bundle{
		Signature:      bundleMagic,
		Version:        8,
		VersionPlayer:  "5.x.x",
		VersionEngine:  "2022.3.18f1",
		ArchiveFlags:   DefaultArchiveFlags,
		BlockInfoFlags: DefaultBlockInfoFlags,
		Compression:    CompressionLZ4,
	}
}

// File returns the named entry's SerializedFile, or nil if absent.
func (b *Bundle) File(name string) *SerializedFile {
	for _, e := range b.Files {
		if e.Name == name {
			return e.File
		}
	}
	return nil
}

// Append adds a named entry, preserving insertion order (spec.md §6: "Files,
// in insertion order").
func (b *Bundle) Append(name string, f *SerializedFile) {
	b.Files = append(b.Files, BundleEntry{Name: name, File: f})
}

// Load parses a bundle envelope previously written by Save.
func Load(r io.Reader) (*Bundle, error) {
	br := newByteReader(r)

	sigBytes := br.bytes()
	if br.err != nil {
		return nil, br.err
	}
	sig := string(sigBytes)
	if sig != bundleMagic {
		return nil, decodeErrorf("Bundle", "bad signature %q", sig)
	}

	b := &Bundle{Signature: sig}
	b.Version = br.u32()
	b.VersionPlayer = br.str()
	b.VersionEngine = br.str()
	b.ArchiveFlags = br.u32()
	b.BlockInfoFlags = br.u32()
	b.Compression = CompressionType(br.u8())

	fileCount := br.u32()
	for i := uint32(0); i < fileCount; i++ {
		name := br.str()
		entryCompression := CompressionType(br.u8())
		uncompressedSize := br.u32()
		payload := br.bytes()
		if br.err != nil {
			return nil, br.err
		}

		var raw []byte
		switch entryCompression {
		case CompressionNone:
			raw = payload
		case CompressionLZ4:
			var err error
			raw, err = decompressLZ4Block(payload, int(uncompressedSize))
			if err != nil {
				return nil, fmt.Errorf("bundle entry %q: %w", name, err)
			}
		default:
			return nil, decodeErrorf("Bundle", "unknown compression type %d", entryCompression)
		}

		sf, err := ReadSerializedFile(raw)
		if err != nil {
			return nil, fmt.Errorf("bundle entry %q: %w", name, err)
		}
		b.Append(name, sf)
	}
	return b, nil
}

// Save serializes the bundle: each entry's SerializedFile is written and,
// unless Compression is CompressionNone, LZ4-block-compressed
// (spec.md §4.5 step 5). Incompressible blocks fall back to storing
// uncompressed rather than failing the whole archive.
func (b *Bundle) Save(w io.Writer) error {
	bw := newByteWriter(w)
	bw.strField(b.Signature)
	bw.u32(b.Version)
	bw.strField(b.VersionPlayer)
	bw.strField(b.VersionEngine)
	bw.u32(b.ArchiveFlags)
	bw.u32(b.BlockInfoFlags)
	bw.u8(uint8(b.Compression))
	bw.u32(uint32(len(b.Files)))

	for _, entry := range b.Files {
		raw, err := entry.File.Bytes()
		if err != nil {
			return fmt.Errorf("bundle entry %q: %w", entry.Name, err)
		}

		payload := raw
		entryCompression := b.Compression
		if entryCompression == CompressionLZ4 {
			if compressed, err := compressLZ4Block(raw); err == nil {
				payload = compressed
			} else {
				entryCompression = CompressionNone
			}
		}

		bw.strField(entry.Name)
		bw.u8(uint8(entryCompression))
		bw.u32(uint32(len(raw)))
		bw.bytesField(payload)
	}
	return bw.flush()
}

// Bytes is a convenience wrapper around Save.
func (b *Bundle) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
