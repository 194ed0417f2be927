package unityfs

// FileID identifies which file in a bundle's resolution scope a PPtr targets.
// Zero means the same file the PPtr is stored in.
type FileID int32

// PathID uniquely identifies an object within a SerializedFile. Unity
// assigns these (often including negative values); this tool never
// renumbers them.
type PathID int64

// PPtr is a persistent pointer: a reference to an object, either in the same
// file (FileID == 0) or an external file in the bundle's resolution scope
// (FileID != 0). A PathID of zero denotes a null reference.
type PPtr struct {
	FileID FileID
	PathID PathID
}

// Null is the canonical zero-value PPtr, used both for "no reference" and,
// after rewriting, for "promoted to root" (spec.md's Open Question about
// null-vs-dangling fathers: this codec always encodes null explicitly, so
// there is no separate dangling encoding to reconcile).
var Null = PPtr{}

// IsNull reports whether the pointer denotes no object.
func (p PPtr) IsNull() bool {
	return p.PathID == 0
}

// External reports whether the pointer targets a file other than the one it
// was read from. The reachability walker ignores these (spec.md §4.3).
func (p PPtr) External() bool {
	return p.FileID != 0
}

// ClassID is Unity's well-known per-object class enum. Only the values this
// tool's pipeline actually inspects are named; any other numeric class id is
// a valid ObjectRecord.ClassID and is treated as an opaque leaf.
type ClassID int32

const (
	ClassGameObject    ClassID = 1
	ClassTransform     ClassID = 4
	ClassMaterial      ClassID = 21
	ClassRenderSettings ClassID = 104
	ClassMonoBehaviour ClassID = 114
	ClassBuildSettings ClassID = 141
	ClassAssetBundle   ClassID = 142
	ClassCanvas        ClassID = 223
	ClassRectTransform ClassID = 224
	ClassSpriteAtlas   ClassID = 687078895
)

// SceneFileFlags is the flags value this tool stamps on every scene
// SerializedFile it emits. spec.md §9 calls this "undocumented Unity
// behavior and assumed by observation"; it is kept as opaque magic here too,
// not re-derived from first principles.
const SceneFileFlags uint32 = 4
