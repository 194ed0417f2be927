package unityfs

// EmptyScenePathID is the path_id the synthesized AssetBundle manifest
// object occupies in a scene's sharedAssets file (spec.md §4.5 step 1,
// §9's "manifest object, path_id=2" note).
const EmptyScenePathID PathID = 2

// NewEmptyTemplate builds the in-memory equivalent of the "empty scene
// bundle" template spec.md §4.5 and §9 describe as an embedded resource:
// one scene file named "EmptyScene" plus one sharedAssets file holding a
// single AssetBundle object at path_id 2.
//
// Real Unity tooling ships this as a prebuilt .unity3d fixture on disk.
// This module carries no such file: this function constructs the
// equivalent *Bundle value directly from the same field values the real
// template would contain, and the bundler only ever calls this function,
// never reading a template from a file path or an embedded resource.
func NewEmptyTemplate() *Bundle {
	b := NewBundle()

	scene := NewSerializedFile()
	scene.Flags = uint32(SceneFileFlags)
	b.Append("EmptyScene", scene)

	shared := NewSerializedFile()
	manifest := AssetBundleManifest{
		Name:                       "emptyscenebundle",
		PreloadTable:               nil,
		Container:                  nil,
		MainAsset:                  AssetInfo{PreloadIndex: 0, PreloadSize: 0, Asset: Null},
		RuntimeCompatibility:       1,
		AssetBundleName:            "",
		Dependencies:               nil,
		IsStreamedSceneAssetBundle: true,
		ExplicitDataLayout:         0,
		PathFlags:                  0,
		SceneHashes:                nil,
	}
	payload, err := EncodeAssetBundle(manifest)
	if err != nil {
		// EncodeAssetBundle only fails on writer I/O errors, which a
		// bytes.Buffer-backed writer never produces.
		panic("unityfs: template AssetBundle encode: " + err.Error())
	}
	shared.Objects[EmptyScenePathID] = &ObjectRecord{
		PathID:  EmptyScenePathID,
		TypeID:  0,
		ClassID: ClassAssetBundle,
		Data:    payload,
	}
	shared.Types = []TypeDescriptor{{ClassID: ClassAssetBundle, ScriptID: -1}}
	b.Append("EmptyScene.sharedAssets", shared)

	return b
}
