package unityfs

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// byteReader and byteWriter are the low-level primitives every record shape
// in this package is built from: fixed-width ints, length-prefixed byte
// strings, and PPtrs. Modeled on the bufio.Reader-wrapping style
// ktkr.us/pkg/sound/flac uses for its own binary chunk parsing.
type byteReader struct {
	r   *bufio.Reader
	err error
}

func newByteReader(r io.Reader) *byteReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &byteReader{r: br}
	}
	return &byteReader{r: bufio.NewReader(r)}
}

func (b *byteReader) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *byteReader) u8() uint8 {
	if b.err != nil {
		return 0
	}
	v, err := b.r.ReadByte()
	if err != nil {
		b.fail(err)
		return 0
	}
	return v
}

func (b *byteReader) u32() uint32 {
	var buf [4]byte
	b.readFull(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (b *byteReader) i32() int32 {
	return int32(b.u32())
}

func (b *byteReader) u64() uint64 {
	var buf [8]byte
	b.readFull(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (b *byteReader) i64() int64 {
	return int64(b.u64())
}

func (b *byteReader) readFull(buf []byte) {
	if b.err != nil {
		return
	}
	if _, err := io.ReadFull(b.r, buf); err != nil {
		b.fail(err)
	}
}

func (b *byteReader) bytes() []byte {
	n := b.u32()
	if b.err != nil || n == 0 {
		return nil
	}
	buf := make([]byte, n)
	b.readFull(buf)
	return buf
}

func (b *byteReader) str() string {
	return string(b.bytes())
}

func (b *byteReader) pptr() PPtr {
	fileID := FileID(b.i32())
	pathID := PathID(b.i64())
	return PPtr{FileID: fileID, PathID: pathID}
}

func (b *byteReader) pptrSlice() []PPtr {
	n := b.u32()
	if b.err != nil {
		return nil
	}
	out := make([]PPtr, n)
	for i := range out {
		out[i] = b.pptr()
	}
	return out
}

type byteWriter struct {
	w   *bufio.Writer
	err error
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{w: bufio.NewWriter(w)}
}

func (b *byteWriter) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *byteWriter) write(buf []byte) {
	if b.err != nil {
		return
	}
	if _, err := b.w.Write(buf); err != nil {
		b.fail(err)
	}
}

func (b *byteWriter) u8(v uint8) {
	b.write([]byte{v})
}

func (b *byteWriter) u32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.write(buf[:])
}

func (b *byteWriter) i32(v int32) {
	b.u32(uint32(v))
}

func (b *byteWriter) u64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	b.write(buf[:])
}

func (b *byteWriter) i64(v int64) {
	b.u64(uint64(v))
}

func (b *byteWriter) bytesField(data []byte) {
	b.u32(uint32(len(data)))
	b.write(data)
}

func (b *byteWriter) strField(s string) {
	b.bytesField([]byte(s))
}

func (b *byteWriter) pptr(p PPtr) {
	b.i32(int32(p.FileID))
	b.i64(int64(p.PathID))
}

func (b *byteWriter) pptrSlice(ps []PPtr) {
	b.u32(uint32(len(ps)))
	for _, p := range ps {
		b.pptr(p)
	}
}

func (b *byteWriter) flush() error {
	if b.err != nil {
		return b.err
	}
	return b.w.Flush()
}

// decodeErrorf formats a TypetreeDecodeError-shaped error (spec.md §7).
func decodeErrorf(class string, format string, args ...any) error {
	return &TypetreeDecodeError{Class: class, Msg: fmt.Sprintf(format, args...)}
}
