package reachability

import (
	"testing"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

func addGameObject(t *testing.T, file *unityfs.SerializedFile, goID, transformID, father unityfs.PathID, name string, children ...unityfs.PathID) {
	t.Helper()

	goData, err := unityfs.EncodeGameObject(unityfs.GameObjectFields{
		Name:       name,
		IsActive:   true,
		Components: []unityfs.PPtr{{PathID: transformID}},
	})
	if err != nil {
		t.Fatalf("EncodeGameObject: %v", err)
	}
	file.Objects[goID] = &unityfs.ObjectRecord{PathID: goID, ClassID: unityfs.ClassGameObject, Data: goData}

	childPtrs := make([]unityfs.PPtr, len(children))
	for i, c := range children {
		childPtrs[i] = unityfs.PPtr{PathID: c}
	}

	transformData, err := unityfs.EncodeTransform(unityfs.TransformFields{
		GameObject: unityfs.PPtr{PathID: goID},
		Father:     unityfs.PPtr{PathID: father},
		Children:   childPtrs,
	})
	if err != nil {
		t.Fatalf("EncodeTransform: %v", err)
	}
	file.Objects[transformID] = &unityfs.ObjectRecord{PathID: transformID, ClassID: unityfs.ClassTransform, Data: transformData}
}

func TestWalkClosureFromSeed(t *testing.T) {
	file := unityfs.NewSerializedFile()
	addGameObject(t, file, 1, 2, 0, "Root", 4, 8)
	addGameObject(t, file, 3, 4, 2, "Keep")
	addGameObject(t, file, 7, 8, 2, "Dropped")

	surviving, err := Walk(file, []unityfs.PathID{4}, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	for _, want := range []unityfs.PathID{3, 4} {
		if !surviving.Contains(want) {
			t.Errorf("expected %d to survive", want)
		}
	}
	for _, notWant := range []unityfs.PathID{1, 2, 7, 8} {
		if surviving.Contains(notWant) {
			t.Errorf("expected %d not to survive", notWant)
		}
	}
}

func TestWalkAlwaysIncludeRetainsUnreachableClass(t *testing.T) {
	file := unityfs.NewSerializedFile()
	addGameObject(t, file, 1, 2, 0, "Root", 4)
	addGameObject(t, file, 3, 4, 2, "Keep")
	file.Objects[100] = &unityfs.ObjectRecord{PathID: 100, ClassID: unityfs.ClassRenderSettings, Data: []byte("opaque")}

	surviving, err := Walk(file, []unityfs.PathID{4}, map[unityfs.ClassID]bool{unityfs.ClassRenderSettings: true})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !surviving.Contains(100) {
		t.Errorf("expected always_include RenderSettings object to survive")
	}
}

func TestWalkAlwaysIncludeDoesNotTraverseItsOwnEdges(t *testing.T) {
	file := unityfs.NewSerializedFile()
	addGameObject(t, file, 1, 2, 0, "Root", 4)
	addGameObject(t, file, 3, 4, 2, "Keep")
	// An unreachable GameObject/Transform pair, only reachable if
	// alwaysInclude's own edges were (wrongly) walked.
	addGameObject(t, file, 5, 6, 0, "AlwaysIncludedButLeafOnly")

	surviving, err := Walk(file, []unityfs.PathID{4}, map[unityfs.ClassID]bool{unityfs.ClassGameObject: true})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !surviving.Contains(5) {
		t.Errorf("expected the always_include GameObject itself to survive")
	}
	if surviving.Contains(6) {
		t.Errorf("always_include must not traverse its own edges: transform 6 should not survive via GameObject 5's m_Components")
	}
}

func TestWalkSpriteAtlasPullsPackedSprites(t *testing.T) {
	file := unityfs.NewSerializedFile()
	atlasData, err := unityfs.EncodeSpriteAtlas(unityfs.SpriteAtlasFields{
		PackedSprites: []unityfs.PPtr{{PathID: 50}},
	})
	if err != nil {
		t.Fatalf("EncodeSpriteAtlas: %v", err)
	}
	file.Objects[10] = &unityfs.ObjectRecord{PathID: 10, ClassID: unityfs.ClassSpriteAtlas, Data: atlasData}
	file.Objects[50] = &unityfs.ObjectRecord{PathID: 50, ClassID: unityfs.ClassMaterial, Data: []byte("sprite")}

	surviving, err := Walk(file, []unityfs.PathID{10}, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !surviving.Contains(50) {
		t.Errorf("expected packed sprite 50 to survive via the atlas seed")
	}
}

func TestWalkIgnoresExternalAndNullPPtrs(t *testing.T) {
	file := unityfs.NewSerializedFile()
	goData, _ := unityfs.EncodeGameObject(unityfs.GameObjectFields{
		Name: "Root",
		Components: []unityfs.PPtr{
			{PathID: 2},
			{FileID: 1, PathID: 99}, // external, must be ignored
			{},                      // null, must be ignored
		},
	})
	file.Objects[1] = &unityfs.ObjectRecord{PathID: 1, ClassID: unityfs.ClassGameObject, Data: goData}
	transformData, _ := unityfs.EncodeTransform(unityfs.TransformFields{GameObject: unityfs.PPtr{PathID: 1}})
	file.Objects[2] = &unityfs.ObjectRecord{PathID: 2, ClassID: unityfs.ClassTransform, Data: transformData}

	surviving, err := Walk(file, []unityfs.PathID{1}, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if surviving.Contains(99) {
		t.Errorf("external pptr should not have been enqueued")
	}
}
