package unityfs

import "bytes"

// AssetInfo is Unity's AssetInfo struct: a preload range plus the PPtr the
// entry resolves to.
type AssetInfo struct {
	PreloadIndex int32
	PreloadSize  int32
	Asset        PPtr
}

func (a AssetInfo) write(w *byteWriter) {
	w.i32(a.PreloadIndex)
	w.i32(a.PreloadSize)
	w.pptr(a.Asset)
}

func readAssetInfo(r *byteReader) AssetInfo {
	return AssetInfo{
		PreloadIndex: r.i32(),
		PreloadSize:  r.i32(),
		Asset:        r.pptr(),
	}
}

// ContainerEntry is one key/value pair of AssetBundleManifest.Container
// (m_Container), keyed by the asset path inside the bundle.
type ContainerEntry struct {
	Key   string
	Value AssetInfo
}

// AssetBundleManifest is the decoded shape of the single class-142
// AssetBundle object every bundle carries (spec.md §3 invariant 5, §6
// "AssetBundle manifest shape"). Field names match spec.md §6 bit-exactly.
type AssetBundleManifest struct {
	Name                       string
	PreloadTable               []PPtr
	Container                  []ContainerEntry
	MainAsset                  AssetInfo
	RuntimeCompatibility       int32
	AssetBundleName            string
	Dependencies               []string
	IsStreamedSceneAssetBundle bool
	ExplicitDataLayout         int32
	PathFlags                  int32
	SceneHashes                []string
}

// EncodeAssetBundle serializes the manifest. Used by the bundle repacker
// (spec.md §4.5 step 2) to synthesize the single AssetBundle object the
// output bundle carries.
func EncodeAssetBundle(m AssetBundleManifest) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	w.strField(m.Name)
	w.pptrSlice(m.PreloadTable)

	w.u32(uint32(len(m.Container)))
	for _, c := range m.Container {
		w.strField(c.Key)
		c.Value.write(w)
	}

	m.MainAsset.write(w)
	w.i32(m.RuntimeCompatibility)
	w.strField(m.AssetBundleName)

	w.u32(uint32(len(m.Dependencies)))
	for _, d := range m.Dependencies {
		w.strField(d)
	}

	active := uint8(0)
	if m.IsStreamedSceneAssetBundle {
		active = 1
	}
	w.u8(active)
	w.i32(m.ExplicitDataLayout)
	w.i32(m.PathFlags)

	w.u32(uint32(len(m.SceneHashes)))
	for _, h := range m.SceneHashes {
		w.strField(h)
	}

	if err := w.flush(); err != nil {
		return nil, encodeErrorf("AssetBundle", "%v", err)
	}
	return buf.Bytes(), nil
}

// DecodeAssetBundle reads the manifest back. Provided for round-trip tests
// and for tools inspecting an already-built bundle.
func DecodeAssetBundle(data []byte) (AssetBundleManifest, error) {
	r := newByteReader(bytes.NewReader(data))
	var m AssetBundleManifest
	m.Name = r.str()
	m.PreloadTable = r.pptrSlice()

	containerCount := r.u32()
	m.Container = make([]ContainerEntry, containerCount)
	for i := range m.Container {
		m.Container[i] = ContainerEntry{Key: r.str(), Value: readAssetInfo(r)}
	}

	m.MainAsset = readAssetInfo(r)
	m.RuntimeCompatibility = r.i32()
	m.AssetBundleName = r.str()

	depCount := r.u32()
	m.Dependencies = make([]string, depCount)
	for i := range m.Dependencies {
		m.Dependencies[i] = r.str()
	}

	m.IsStreamedSceneAssetBundle = r.u8() != 0
	m.ExplicitDataLayout = r.i32()
	m.PathFlags = r.i32()

	hashCount := r.u32()
	m.SceneHashes = make([]string, hashCount)
	for i := range m.SceneHashes {
		m.SceneHashes[i] = r.str()
	}

	if r.err != nil {
		return AssetBundleManifest{}, decodeErrorf("AssetBundle", "%v", r.err)
	}
	return m, nil
}
