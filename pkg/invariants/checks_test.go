package invariants

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
	file.Objects[transformID] = &unityfs.ObjectRecord{PathID: transformID, TypeID: 1, ClassID: unityfs.ClassTransform, Data: transformData}
}

func buildValidRoot(t *testing.T) *unityfs.SerializedFile {
	t.Helper()
	file := unityfs.NewSerializedFile()
	file.Types = []unityfs.TypeDescriptor{
		{ClassID: unityfs.ClassGameObject, ScriptID: -1},
		{ClassID: unityfs.ClassTransform, ScriptID: -1},
	}
	addGameObject(t, file, 1, 2, 0, "Root")
	return file
}

func TestCheckClosureCompletenessPassesOnValidScene(t *testing.T) {
	file := buildValidRoot(t)
	result := CheckClosureCompleteness(file)
	if !result.Satisfied {
		t.Errorf("expected closure completeness to pass, got: %s", result.Details)
	}
}

func TestCheckClosureCompletenessDetectsDanglingEdge(t *testing.T) {
	file := buildValidRoot(t)
	obj, _ := file.Get(1)
	fields, _ := unityfs.DecodeGameObject(obj.Data)
	fields.Components = append(fields.Components, unityfs.PPtr{PathID: 999})
	data, err := unityfs.EncodeGameObject(fields)
	if err != nil {
		t.Fatalf("EncodeGameObject: %v", err)
	}
	obj.Data = data

	result := CheckClosureCompleteness(file)
	if result.Satisfied {
		t.Errorf("expected closure completeness to fail on a dangling edge")
	}
}

func TestCheckTriangularPairingPassesOnValidScene(t *testing.T) {
	file := buildValidRoot(t)
	result := CheckTriangularPairing(file)
	if !result.Satisfied {
		t.Errorf("expected triangular pairing to pass, got: %s", result.Details)
	}
}

func TestCheckTriangularPairingDetectsMissingTransform(t *testing.T) {
	file := buildValidRoot(t)
	delete(file.Objects, 2)

	result := CheckTriangularPairing(file)
	if result.Satisfied {
		t.Errorf("expected triangular pairing to fail when the transform is missing")
	}
}

func TestCheckNewRootsPassesWhenFatherIsNull(t *testing.T) {
	file := buildValidRoot(t)
	result := CheckNewRoots(file, []unityfs.PathID{2})
	if !result.Satisfied {
		t.Errorf("expected new roots to pass, got: %s", result.Details)
	}
}

func TestCheckNewRootsFailsWhenFatherIsSet(t *testing.T) {
	file := buildValidRoot(t)
	addGameObject(t, file, 3, 4, 2, "Child")

	result := CheckNewRoots(file, []unityfs.PathID{4})
	if result.Satisfied {
		t.Errorf("expected new roots to fail when seed still has a father")
	}
}

func TestCheckTypeTableDensityPassesWhenDense(t *testing.T) {
	file := buildValidRoot(t)
	result := CheckTypeTableDensity(file)
	if !result.Satisfied {
		t.Errorf("expected type-table density to pass, got: %s", result.Details)
	}
}

func TestCheckTypeTableDensityFailsOnUnusedType(t *testing.T) {
	file := buildValidRoot(t)
	file.Types = append(file.Types, unityfs.TypeDescriptor{ClassID: unityfs.ClassMaterial, ScriptID: -1})

	result := CheckTypeTableDensity(file)
	if result.Satisfied {
		t.Errorf("expected type-table density to fail with an unused type descriptor")
	}
}

func TestCheckManifestShapeMatchesSceneOrder(t *testing.T) {
	scenes := []struct {
		name string
	}{{"SceneA"}, {"SceneB"}}

	manifest := unityfs.AssetBundleManifest{
		Name: "bundle",
		Container: []unityfs.ContainerEntry{
			{Key: "Assets/SceneBundle/SceneA.unity", Value: unityfs.AssetInfo{Asset: unityfs.Null}},
			{Key: "Assets/SceneBundle/SceneB.unity", Value: unityfs.AssetInfo{Asset: unityfs.Null}},
		},
	}
	payload, err := unityfs.EncodeAssetBundle(manifest)
	if err != nil {
		t.Fatalf("EncodeAssetBundle: %v", err)
	}

	shared := unityfs.NewSerializedFile()
	shared.Objects[unityfs.EmptyScenePathID] = &unityfs.ObjectRecord{
		PathID: unityfs.EmptyScenePathID, ClassID: unityfs.ClassAssetBundle, Data: payload,
	}

	bundle := unityfs.NewBundle()
	bundle.Append("shared", shared)

	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.name
	}

	result := CheckManifestShape(bundle, names)
	if !result.Satisfied {
		t.Errorf("expected manifest shape to pass, got: %s", result.Details)
	}
}

func TestReportSummaryMarksFailure(t *testing.T) {
	report := NewReport()
	report.add(PropertyResult{Name: "x", Satisfied: false, Details: "broken"})

	if report.Passed {
		t.Errorf("Passed = true, want false")
	}
	if len(report.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(report.Errors))
	}
}
