package invariants

import (
	"fmt"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/reachability"
)

// CheckClosureCompleteness verifies that every class-specific visible edge
// from a surviving object targets something null, external, or also
// surviving (spec.md §8, "Closure completeness").
func CheckClosureCompleteness(file *unityfs.SerializedFile) PropertyResult {
	for _, obj := range file.OrderedObjects() {
		edges, err := reachability.VisibleEdges(obj)
		if err != nil {
			return PropertyResult{Name: "closure completeness", Details: err.Error()}
		}
		for _, ptr := range edges {
			if ptr.IsNull() || ptr.External() {
				continue
			}
			if _, ok := file.Get(ptr.PathID); !ok {
				return PropertyResult{
					Name:    "closure completeness",
					Details: fmt.Sprintf("object %d has a dangling edge to %d", obj.PathID, ptr.PathID),
				}
			}
		}
	}
	return PropertyResult{Name: "closure completeness", Satisfied: true}
}

// CheckTriangularPairing verifies that every surviving GameObject has
// exactly one surviving Transform/RectTransform whose m_GameObject points
// back to it and which is listed in its m_Components (spec.md §8,
// "Triangular pairing").
func CheckTriangularPairing(file *unityfs.SerializedFile) PropertyResult {
	for _, obj := range file.OrderedObjects() {
		if obj.ClassID != unityfs.ClassGameObject {
			continue
		}
		fields, err := unityfs.DecodeGameObject(obj.Data)
		if err != nil {
			return PropertyResult{Name: "triangular pairing", Details: err.Error()}
		}

		matches := 0
		for _, ptr := range fields.Components {
			if ptr.IsNull() || ptr.External() {
				continue
			}
			comp, ok := file.Get(ptr.PathID)
			if !ok || !unityfs.IsTransformClass(comp.ClassID) {
				continue
			}
			tfields, err := unityfs.DecodeTransform(comp.Data)
			if err != nil {
				return PropertyResult{Name: "triangular pairing", Details: err.Error()}
			}
			if !tfields.GameObject.External() && tfields.GameObject.PathID == obj.PathID {
				matches++
			}
		}
		if matches != 1 {
			return PropertyResult{
				Name:    "triangular pairing",
				Details: fmt.Sprintf("game object %d has %d paired transforms, want 1", obj.PathID, matches),
			}
		}
	}
	return PropertyResult{Name: "triangular pairing", Satisfied: true}
}

// CheckNewRoots verifies every seed's m_Father is the null PPtr after
// rewrite (spec.md §8, "New roots").
func CheckNewRoots(file *unityfs.SerializedFile, seeds []unityfs.PathID) PropertyResult {
	for _, id := range seeds {
		obj, ok := file.Get(id)
		if !ok {
			return PropertyResult{Name: "new roots", Details: fmt.Sprintf("seed %d did not survive", id)}
		}
		fields, err := unityfs.DecodeTransform(obj.Data)
		if err != nil {
			return PropertyResult{Name: "new roots", Details: err.Error()}
		}
		if fields.Father != unityfs.Null {
			return PropertyResult{
				Name:    "new roots",
				Details: fmt.Sprintf("seed %d has non-null father %+v", id, fields.Father),
			}
		}
	}
	return PropertyResult{Name: "new roots", Satisfied: true}
}

// CheckTypeTableDensity verifies the type table is exactly as large as the
// number of distinct type ids in use, and every type id is in range
// (spec.md §8, "Type-table density").
func CheckTypeTableDensity(file *unityfs.SerializedFile) PropertyResult {
	used := make(map[int32]struct{})
	for _, obj := range file.OrderedObjects() {
		if obj.TypeID < 0 || int(obj.TypeID) >= len(file.Types) {
			return PropertyResult{
				Name:    "type-table density",
				Details: fmt.Sprintf("object %d has out-of-range type id %d (table has %d entries)", obj.PathID, obj.TypeID, len(file.Types)),
			}
		}
		used[obj.TypeID] = struct{}{}
	}
	if len(used) != len(file.Types) {
		return PropertyResult{
			Name:    "type-table density",
			Details: fmt.Sprintf("%d distinct type ids in use but table has %d entries", len(used), len(file.Types)),
		}
	}
	return PropertyResult{Name: "type-table density", Satisfied: true}
}

// CheckManifestShape verifies the assembled bundle contains exactly one
// AssetBundle object whose m_Container has one entry per scene, in scene
// order (spec.md §8, "Manifest shape").
func CheckManifestShape(bundle *unityfs.Bundle, sceneNames []string) PropertyResult {
	var manifest *unityfs.AssetBundleManifest
	count := 0
	for _, entry := range bundle.Files {
		for _, obj := range entry.File.OrderedObjects() {
			if obj.ClassID != unityfs.ClassAssetBundle {
				continue
			}
			count++
			m, err := unityfs.DecodeAssetBundle(obj.Data)
			if err != nil {
				return PropertyResult{Name: "manifest shape", Details: err.Error()}
			}
			manifest = &m
		}
	}
	if count != 1 {
		return PropertyResult{Name: "manifest shape", Details: fmt.Sprintf("found %d AssetBundle objects, want 1", count)}
	}
	if len(manifest.Container) != len(sceneNames) {
		return PropertyResult{
			Name:    "manifest shape",
			Details: fmt.Sprintf("manifest has %d container entries, want %d", len(manifest.Container), len(sceneNames)),
		}
	}
	for i, name := range sceneNames {
		want := fmt.Sprintf("Assets/SceneBundle/%s.unity", name)
		if manifest.Container[i].Key != want {
			return PropertyResult{
				Name:    "manifest shape",
				Details: fmt.Sprintf("container[%d].Key = %q, want %q", i, manifest.Container[i].Key, want),
			}
		}
	}
	return PropertyResult{Name: "manifest shape", Satisfied: true}
}

// CheckScene runs every per-scene property against a rewritten file.
func CheckScene(file *unityfs.SerializedFile, seeds []unityfs.PathID) *Report {
	report := NewReport()
	report.add(CheckClosureCompleteness(file))
	report.add(CheckTriangularPairing(file))
	report.add(CheckNewRoots(file, seeds))
	report.add(CheckTypeTableDensity(file))
	return report
}

// CheckBundle runs the bundle-level manifest-shape property.
func CheckBundle(bundle *unityfs.Bundle, sceneNames []string) *Report {
	report := NewReport()
	report.add(CheckManifestShape(bundle, sceneNames))
	return report
}
