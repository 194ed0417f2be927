package unityfs

import "bytes"

// TransformFields is the decoded shape shared by class-4 Transform and
// class-224 RectTransform payloads: spec.md §3 names m_GameObject (the
// back-pointer to the owning GameObject), m_Father (null at scene root),
// and m_Children. RectTransform carries additional anchor/rect fields this
// tool never reads or writes; Extra preserves them byte-for-byte across a
// decode/encode round trip so touching m_Father doesn't lose them.
type TransformFields struct {
	GameObject PPtr
	Father     PPtr
	Children   []PPtr
	Extra      []byte
}

// DecodeTransform reads a Transform/RectTransform payload. Used by the
// navigator (to walk m_Children) and the reachability walker (spec.md §4.3:
// "m_GameObject, then each of m_Children").
func DecodeTransform(data []byte) (TransformFields, error) {
	r := newByteReader(bytes.NewReader(data))
	f := TransformFields{
		GameObject: r.pptr(),
		Father:     r.pptr(),
		Children:   r.pptrSlice(),
	}
	if r.err != nil {
		return TransformFields{}, decodeErrorf("Transform", "%v", r.err)
	}
	f.Extra = r.bytes()
	return f, nil
}

// EncodeTransform re-serializes a Transform/RectTransform payload. Used by
// the rewriter's reparenting step (spec.md §4.4 step 3: "set m_Father =
// {file_id: 0, path_id: 0}, and re-encode").
func EncodeTransform(f TransformFields) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	w.pptr(f.GameObject)
	w.pptr(f.Father)
	w.pptrSlice(f.Children)
	w.bytesField(f.Extra)
	if err := w.flush(); err != nil {
		return nil, encodeErrorf("Transform", "%v", err)
	}
	return buf.Bytes(), nil
}

// IsTransformClass reports whether a class id is Transform or RectTransform,
// the two classes spec.md §3 and §4.3 treat identically for tree-walking
// purposes.
func IsTransformClass(c ClassID) bool {
	return c == ClassTransform || c == ClassRectTransform
}
