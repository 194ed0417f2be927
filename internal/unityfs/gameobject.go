package unityfs

import "bytes"

// GameObjectFields is the decoded shape of a class-1 GameObject payload:
// spec.md §3 names m_Name, m_IsActive, and m_Components (PPtrs to the
// object's components, exactly one of which is its Transform/RectTransform).
type GameObjectFields struct {
	Name       string
	IsActive   bool
	Components []PPtr
}

// DecodeGameObject reads a GameObject's payload. Used by the reachability
// walker (spec.md §4.3, GameObject's outgoing edges are "all m_Components
// PPtrs") and by the navigator (matching m_Name against path segments).
func DecodeGameObject(data []byte) (GameObjectFields, error) {
	r := newByteReader(bytes.NewReader(data))
	f := GameObjectFields{
		Components: r.pptrSlice(),
		Name:       r.str(),
		IsActive:   r.u8() != 0,
	}
	if r.err != nil {
		return GameObjectFields{}, decodeErrorf("GameObject", "%v", r.err)
	}
	return f, nil
}

// EncodeGameObject re-serializes a GameObject payload. Used by the rewriter
// for the per-root cosmetics step (spec.md §4.4 step 4: canonicalize m_Name,
// optionally clear m_IsActive).
func EncodeGameObject(f GameObjectFields) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	w.pptrSlice(f.Components)
	w.strField(f.Name)
	active := uint8(0)
	if f.IsActive {
		active = 1
	}
	w.u8(active)
	if err := w.flush(); err != nil {
		return nil, encodeErrorf("GameObject", "%v", err)
	}
	return buf.Bytes(), nil
}
