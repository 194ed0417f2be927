package rewriter

import (
	"fmt"
	"strings"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/navigator"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/reachability"
)

// Options controls the per-root cosmetics step (spec.md §4.4 step 4).
type Options struct {
	// Disable, when true, clears m_IsActive on every new root.
	Disable bool
}

// Rewrite applies the five steps of spec.md §4.4, in order, to file in
// place: object-table replacement against surviving, reparenting of seeds
// to root, per-root name/activity cosmetics, and type-table compaction.
//
// surviving must already include any always_include classes (this repo's
// reachability.Walk unions those ids into the surviving set after its BFS,
// so step 1 of spec.md §4.4 is satisfied by construction rather than
// repeated here).
func Rewrite(file *unityfs.SerializedFile, surviving reachability.Set, seeds []unityfs.PathID, opts Options) error {
	pruneObjectTable(file, surviving)

	if err := reparentSeeds(file, seeds); err != nil {
		return err
	}

	if err := applyRootCosmetics(file, opts); err != nil {
		return err
	}

	compactTypeTable(file)
	return nil
}

// pruneObjectTable implements spec.md §4.4 step 2: replace the object map
// with the surviving subset. Insertion order is ascending path_id by
// construction of SerializedFile.OrderedObjects, so nothing further is
// needed to satisfy that requirement.
func pruneObjectTable(file *unityfs.SerializedFile, surviving reachability.Set) {
	for id := range file.Objects {
		if !surviving.Contains(id) {
			delete(file.Objects, id)
		}
	}
}

// reparentSeeds implements spec.md §4.4 step 3: each seed's m_Father is set
// to the null PPtr so it becomes a root.
func reparentSeeds(file *unityfs.SerializedFile, seeds []unityfs.PathID) error {
	for _, id := range seeds {
		obj, ok := file.Get(id)
		if !ok {
			continue
		}
		fields, err := unityfs.DecodeTransform(obj.Data)
		if err != nil {
			return fmt.Errorf("reparenting seed %d: %w", id, err)
		}
		fields.Father = unityfs.Null

		data, err := unityfs.EncodeTransform(fields)
		if err != nil {
			return fmt.Errorf("reparenting seed %d: %w", id, err)
		}
		obj.Data = data
	}
	return nil
}

// applyRootCosmetics implements spec.md §4.4 step 4: for every root
// transform after reparenting, canonicalize its GameObject's name and
// optionally clear m_IsActive.
func applyRootCosmetics(file *unityfs.SerializedFile, opts Options) error {
	roots, err := navigator.NewResolver(file).Roots()
	if err != nil {
		return err
	}

	for _, root := range roots {
		goPtr := root.Fields.GameObject
		if goPtr.IsNull() || goPtr.External() {
			continue
		}
		obj, ok := file.Get(goPtr.PathID)
		if !ok || obj.ClassID != unityfs.ClassGameObject {
			continue
		}

		fields, err := unityfs.DecodeGameObject(obj.Data)
		if err != nil {
			return fmt.Errorf("applying cosmetics to root %d: %w", goPtr.PathID, err)
		}

		fields.Name = canonicalizeName(fields.Name)
		if opts.Disable {
			fields.IsActive = false
		}

		data, err := unityfs.EncodeGameObject(fields)
		if err != nil {
			return fmt.Errorf("applying cosmetics to root %d: %w", goPtr.PathID, err)
		}
		obj.Data = data
	}
	return nil
}

// canonicalizeName strips Unity's clone suffix: "Enemy (Clone)" -> "Enemy".
func canonicalizeName(name string) string {
	if idx := strings.Index(name, " ("); idx >= 0 {
		return name[:idx]
	}
	return name
}

// compactTypeTable implements spec.md §4.4 step 5: dense-renumber type ids
// in order of first appearance over the surviving object map, and drop
// unused TypeDescriptors.
func compactTypeTable(file *unityfs.SerializedFile) {
	newIndex := make(map[int32]int32)
	var newTypes []unityfs.TypeDescriptor

	for _, obj := range file.OrderedObjects() {
		if _, ok := newIndex[obj.TypeID]; ok {
			continue
		}
		newIndex[obj.TypeID] = int32(len(newTypes))
		if obj.TypeID >= 0 && int(obj.TypeID) < len(file.Types) {
			newTypes = append(newTypes, file.Types[obj.TypeID])
		} else {
			newTypes = append(newTypes, unityfs.TypeDescriptor{ClassID: obj.ClassID, ScriptID: -1})
		}
	}

	for _, obj := range file.OrderedObjects() {
		obj.TypeID = newIndex[obj.TypeID]
	}
	file.Types = newTypes
}
