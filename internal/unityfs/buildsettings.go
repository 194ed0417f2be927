package unityfs

import "bytes"

// BuildSettingsFields is the decoded shape of the single class-141
// BuildSettings object every globalgamemanagers file carries: its Scenes
// list is an ordered list of asset paths whose basenames are scene names
// (spec.md §4.1).
type BuildSettingsFields struct {
	Scenes []string
}

// DecodeBuildSettings reads the BuildSettings payload. Read-only: this tool
// never writes globalgamemanagers.
func DecodeBuildSettings(data []byte) (BuildSettingsFields, error) {
	r := newByteReader(bytes.NewReader(data))
	count := r.u32()
	scenes := make([]string, count)
	for i := range scenes {
		scenes[i] = r.str()
	}
	if r.err != nil {
		return BuildSettingsFields{}, decodeErrorf("BuildSettings", "%v", r.err)
	}
	return BuildSettingsFields{Scenes: scenes}, nil
}

// EncodeBuildSettings is provided only to build test fixtures.
func EncodeBuildSettings(f BuildSettingsFields) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	w.u32(uint32(len(f.Scenes)))
	for _, s := range f.Scenes {
		w.strField(s)
	}
	if err := w.flush(); err != nil {
		return nil, encodeErrorf("BuildSettings", "%v", err)
	}
	return buf.Bytes(), nil
}
