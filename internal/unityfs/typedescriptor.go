package unityfs

// TypeDescriptor is the schema entry every ObjectRecord's TypeID indexes
// into. spec.md §3 describes it as carrying enough information to decode an
// object's typetree-encoded payload; this codec only needs the class id to
// dispatch to the right typed facade (or treat the object as opaque).
type TypeDescriptor struct {
	ClassID ClassID
	// ScriptID distinguishes MonoBehaviour subtypes sharing ClassMonoBehaviour.
	// Opaque to this tool: MonoBehaviours are never decoded (spec.md §4.3,
	// "the walker deliberately does not chase MonoBehaviour").
	ScriptID int16
}

func readTypeDescriptor(r *byteReader) TypeDescriptor {
	return TypeDescriptor{
		ClassID:  ClassID(r.i32()),
		ScriptID: int16(r.i32()),
	}
}

func (t TypeDescriptor) write(w *byteWriter) {
	w.i32(int32(t.ClassID))
	w.i32(int32(t.ScriptID))
}
