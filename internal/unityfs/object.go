package unityfs

// ObjectRecord is the tuple spec.md §3 describes: a PathID-addressed object
// with a type index, a well-known class id, and an opaque typetree-encoded
// payload. Only the five class shapes this pipeline actually touches
// (GameObject, Transform/RectTransform, SpriteAtlas, BuildSettings,
// AssetBundle) are ever decoded; everything else passes through as Data.
type ObjectRecord struct {
	PathID  PathID
	TypeID  int32
	ClassID ClassID
	Data    []byte
}

func readObjectRecord(r *byteReader) *ObjectRecord {
	obj := &ObjectRecord{
		PathID:  PathID(r.i64()),
		TypeID:  r.i32(),
		ClassID: ClassID(r.i32()),
	}
	obj.Data = r.bytes()
	return obj
}

func (o *ObjectRecord) write(w *byteWriter) {
	w.i64(int64(o.PathID))
	w.i32(o.TypeID)
	w.i32(int32(o.ClassID))
	w.bytesField(o.Data)
}

// Clone returns a copy of the record that does not alias the receiver's Data
// buffer, so a caller can mutate the clone's payload independently.
func (o *ObjectRecord) Clone() *ObjectRecord {
	data := make([]byte, len(o.Data))
	copy(data, o.Data)
	return &ObjectRecord{PathID: o.PathID, TypeID: o.TypeID, ClassID: o.ClassID, Data: data}
}
