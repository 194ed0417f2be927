package unityfs

import "bytes"

// SpriteAtlasFields is the decoded shape of a class-687078895 SpriteAtlas
// payload this tool cares about: m_PackedSprites, the atlas packing entries
// that are "not discoverable via the GameObject component tree but are
// required to keep UI sprites intact" (spec.md §4.3).
type SpriteAtlasFields struct {
	PackedSprites []PPtr
}

// DecodeSpriteAtlas reads a SpriteAtlas payload. SpriteAtlas objects are
// never mutated by this tool (spec.md §9: the only payload mutations are
// m_Father, m_Name/m_IsActive, and the AssetBundle manifest); the pipeline
// only ever decodes them.
func DecodeSpriteAtlas(data []byte) (SpriteAtlasFields, error) {
	r := newByteReader(bytes.NewReader(data))
	f := SpriteAtlasFields{PackedSprites: r.pptrSlice()}
	if r.err != nil {
		return SpriteAtlasFields{}, decodeErrorf("SpriteAtlas", "%v", r.err)
	}
	return f, nil
}

// EncodeSpriteAtlas is provided only to build test fixtures; production code
// never writes a SpriteAtlas payload.
func EncodeSpriteAtlas(f SpriteAtlasFields) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	w.pptrSlice(f.PackedSprites)
	if err := w.flush(); err != nil {
		return nil, encodeErrorf("SpriteAtlas", "%v", err)
	}
	return buf.Bytes(), nil
}
