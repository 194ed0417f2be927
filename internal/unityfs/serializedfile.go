package unityfs

import (
	"bytes"
	"io"
	"sort"
)

const serializedFileMagic = "USFv1"

// SerializedFile holds the type table and PathID-keyed object table
// spec.md §3 describes. Objects is the source of truth; OrderedPathIDs
// always derives insertion order by ascending PathID, which is both how
// this codec writes files and what spec.md §4.4 step 2 requires after
// pruning ("insertion order = ascending path_id").
type SerializedFile struct {
	Types   []TypeDescriptor
	Objects map[PathID]*ObjectRecord
	Flags   uint32
}

// NewSerializedFile returns an empty file ready to be populated.
func NewSerializedFile() *SerializedFile {
	return &SerializedFile{Objects: make(map[PathID]*ObjectRecord)}
}

// OrderedPathIDs returns every PathID in the object table, ascending.
func (f *SerializedFile) OrderedPathIDs() []PathID {
	ids := make([]PathID, 0, len(f.Objects))
	for id := range f.Objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// OrderedObjects returns every object in the table, ordered by ascending PathID.
func (f *SerializedFile) OrderedObjects() []*ObjectRecord {
	ids := f.OrderedPathIDs()
	out := make([]*ObjectRecord, len(ids))
	for i, id := range ids {
		out[i] = f.Objects[id]
	}
	return out
}

// Get looks up an object by path id, following nothing (PPtr resolution is
// the caller's job; this is a direct map lookup).
func (f *SerializedFile) Get(id PathID) (*ObjectRecord, bool) {
	obj, ok := f.Objects[id]
	return obj, ok
}

// Clone makes a shallow copy of the file: a new Objects map and a new Types
// slice, but the same underlying *ObjectRecord pointers. spec.md §9 requires
// this specifically so that a bundle repacker can drop one entry (the
// AssetBundle manifest, path id 2) from a cloned sharedAssets file without
// the drop being visible through the original's map.
func (f *SerializedFile) Clone() *SerializedFile {
	clone := &SerializedFile{
		Flags: f.Flags,
		Types: append([]TypeDescriptor(nil), f.Types...),
		Objects: make(map[PathID]*ObjectRecord, len(f.Objects)),
	}
	for id, obj := range f.Objects {
		clone.Objects[id] = obj
	}
	return clone
}

// ReadSerializedFile parses this codec's on-disk SerializedFile shape.
func ReadSerializedFile(data []byte) (*SerializedFile, error) {
	r := newByteReader(bytes.NewReader(data))
	var magic [5]byte
	r.readFull(magic[:])
	if r.err != nil {
		return nil, r.err
	}
	if string(magic[:]) != serializedFileMagic {
		return nil, decodeErrorf("SerializedFile", "bad magic %q", magic[:])
	}

	f := NewSerializedFile()
	f.Flags = r.u32()

	typeCount := r.u32()
	f.Types = make([]TypeDescriptor, typeCount)
	for i := range f.Types {
		f.Types[i] = readTypeDescriptor(r)
	}

	objectCount := r.u32()
	for i := uint32(0); i < objectCount; i++ {
		obj := readObjectRecord(r)
		if r.err != nil {
			return nil, r.err
		}
		f.Objects[obj.PathID] = obj
	}
	if r.err != nil && r.err != io.EOF {
		return nil, r.err
	}
	return f, nil
}

// Write serializes the file in ascending-PathID order (spec.md §4.4 step 2).
func (f *SerializedFile) Write(w io.Writer) error {
	bw := newByteWriter(w)
	bw.write([]byte(serializedFileMagic))
	bw.u32(f.Flags)

	bw.u32(uint32(len(f.Types)))
	for _, t := range f.Types {
		t.write(bw)
	}

	objs := f.OrderedObjects()
	bw.u32(uint32(len(objs)))
	for _, obj := range objs {
		obj.write(bw)
	}
	return bw.flush()
}

// Bytes is a convenience wrapper around Write.
func (f *SerializedFile) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
