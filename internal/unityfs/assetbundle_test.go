package unityfs

import "testing"

func TestAssetBundleRoundTrip(t *testing.T) {
	want := AssetBundleManifest{
		Name: "scenebundle",
		Container: []ContainerEntry{
			{Key: "Assets/SceneBundle/SceneA.unity", Value: AssetInfo{Asset: Null}},
			{Key: "Assets/SceneBundle/SceneB.unity", Value: AssetInfo{Asset: Null}},
		},
		MainAsset:                  AssetInfo{Asset: Null},
		RuntimeCompatibility:       1,
		IsStreamedSceneAssetBundle: true,
		PathFlags:                  7,
	}

	data, err := EncodeAssetBundle(want)
	if err != nil {
		t.Fatalf("EncodeAssetBundle: %v", err)
	}

	got, err := DecodeAssetBundle(data)
	if err != nil {
		t.Fatalf("DecodeAssetBundle: %v", err)
	}

	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if len(got.Container) != len(want.Container) {
		t.Fatalf("len(Container) = %d, want %d", len(got.Container), len(want.Container))
	}
	for i := range want.Container {
		if got.Container[i].Key != want.Container[i].Key {
			t.Errorf("Container[%d].Key = %q, want %q", i, got.Container[i].Key, want.Container[i].Key)
		}
	}
	if got.IsStreamedSceneAssetBundle != want.IsStreamedSceneAssetBundle {
		t.Errorf("IsStreamedSceneAssetBundle = %v, want %v", got.IsStreamedSceneAssetBundle, want.IsStreamedSceneAssetBundle)
	}
	if got.PathFlags != want.PathFlags {
		t.Errorf("PathFlags = %d, want %d", got.PathFlags, want.PathFlags)
	}
}
