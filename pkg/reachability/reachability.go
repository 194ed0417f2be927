package reachability

import (
	"fmt"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

// Set is the surviving path_id set a Walk produces.
type Set map[unityfs.PathID]struct{}

// Contains reports whether id survived.
func (s Set) Contains(id unityfs.PathID) bool {
	_, ok := s[id]
	return ok
}

// Walk performs a breadth-first traversal from seeds over the
// class-specific visible-edge table in spec.md §4.3, then unions in every
// object whose class is in alwaysInclude (retained regardless of
// reachability, e.g. RenderSettings; spec.md §4.4 step 1). Matching
// prune.py's include.update(...) applied after its own BFS, alwaysInclude
// ids are added to the surviving set directly without having their own
// outgoing edges walked. The walker visits each id at most once.
func Walk(file *unityfs.SerializedFile, seeds []unityfs.PathID, alwaysInclude map[unityfs.ClassID]bool) (Set, error) {
	surviving := make(Set)

	queue := append([]unityfs.PathID(nil), seeds...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if surviving.Contains(id) {
			continue
		}
		obj, ok := file.Get(id)
		if !ok {
			continue
		}
		surviving[id] = struct{}{}

		edges, err := VisibleEdges(obj)
		if err != nil {
			return nil, err
		}
		for _, ptr := range edges {
			if ptr.IsNull() || ptr.External() {
				continue
			}
			if !surviving.Contains(ptr.PathID) {
				queue = append(queue, ptr.PathID)
			}
		}
	}

	for _, obj := range file.OrderedObjects() {
		if alwaysInclude[obj.ClassID] {
			surviving[obj.PathID] = struct{}{}
		}
	}

	return surviving, nil
}

// VisibleEdges implements the class-polymorphic outgoing-edge table from
// spec.md §4.3 as a closed type switch, matching the "tagged sum over
// relevant classes" design note in spec.md §9. Exported so pkg/invariants
// can reuse the same edge definitions for closure-completeness checking.
func VisibleEdges(obj *unityfs.ObjectRecord) ([]unityfs.PPtr, error) {
	switch obj.ClassID {
	case unityfs.ClassGameObject:
		fields, err := unityfs.DecodeGameObject(obj.Data)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", obj.PathID, err)
		}
		return fields.Components, nil

	case unityfs.ClassTransform, unityfs.ClassRectTransform:
		fields, err := unityfs.DecodeTransform(obj.Data)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", obj.PathID, err)
		}
		edges := make([]unityfs.PPtr, 0, len(fields.Children)+1)
		edges = append(edges, fields.GameObject)
		edges = append(edges, fields.Children...)
		return edges, nil

	case unityfs.ClassSpriteAtlas:
		fields, err := unityfs.DecodeSpriteAtlas(obj.Data)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", obj.PathID, err)
		}
		return fields.PackedSprites, nil

	case unityfs.ClassCanvas:
		return nil, nil

	default:
		return nil, nil
	}
}
