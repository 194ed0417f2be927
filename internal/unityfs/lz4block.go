package unityfs

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// CompressionType selects how a bundle's file payloads are stored.
// Unity's UnityFS directory info tags each block with a small compression
// type; this tool only ever needs none or LZ4 block (spec.md §4.5 step 5,
// "optionally with lz4 block compression").
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionLZ4  CompressionType = 3
)

// compressLZ4Block compresses src using the LZ4 *block* format (no frame
// header/checksum), which is what Unity's per-block compression expects.
// github.com/pierrec/lz4/v4 exposes exactly that shape via CompressBlock.
func compressLZ4Block(src []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(src)))
	var c lz4.Compressor
	n, err := c.CompressBlock(src, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 && len(src) > 0 {
		// Incompressible input: CompressBlock reports n==0 rather than growing
		// the output. Store uncompressed in that case, caller must fall back
		// to CompressionNone for this block.
		return nil, errIncompressible
	}
	return buf[:n], nil
}

var errIncompressible = fmt.Errorf("input not compressible")

func decompressLZ4Block(src []byte, uncompressedSize int) ([]byte, error) {
	dst := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return dst[:n], nil
}
