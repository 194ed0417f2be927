package bundler

import (
	"fmt"
	"io"
	"os"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

// SceneInput is one rewritten scene to pack, in the order it should appear
// in the output bundle and the AssetBundle manifest's m_Container.
type SceneInput struct {
	Name string
	File *unityfs.SerializedFile
}

// Build implements spec.md §4.5: build the empty-scene template in memory
// (unityfs.NewEmptyTemplate; no template file is embedded or read),
// rewrite its AssetBundle manifest to describe scenes, clone its
// sharedAssets file for every scene after the first, and assemble the
// output bundle envelope.
func Build(scenes []SceneInput, compression unityfs.CompressionType) (*unityfs.Bundle, error) {
	template := unityfs.NewEmptyTemplate()
	shared0 := template.File("EmptyScene.sharedAssets")
	if shared0 == nil {
		return nil, fmt.Errorf("embedded template missing sharedAssets file")
	}

	manifestObj, ok := shared0.Get(unityfs.EmptyScenePathID)
	if !ok {
		return nil, fmt.Errorf("embedded template missing AssetBundle manifest object")
	}
	manifest, err := unityfs.DecodeAssetBundle(manifestObj.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding template manifest: %w", err)
	}

	container := make([]unityfs.ContainerEntry, len(scenes))
	for i, s := range scenes {
		container[i] = unityfs.ContainerEntry{
			Key: fmt.Sprintf("Assets/SceneBundle/%s.unity", s.Name),
			Value: unityfs.AssetInfo{
				PreloadIndex: 0,
				PreloadSize:  0,
				Asset:        unityfs.Null,
			},
		}
	}
	manifest.Container = container
	manifest.MainAsset = unityfs.AssetInfo{Asset: unityfs.Null}
	manifest.RuntimeCompatibility = 1
	manifest.IsStreamedSceneAssetBundle = true
	manifest.PathFlags = 7
	manifest.Dependencies = nil
	manifest.SceneHashes = nil
	manifest.PreloadTable = nil

	payload, err := unityfs.EncodeAssetBundle(manifest)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	manifestObj.Data = payload

	bundle := unityfs.NewBundle()
	bundle.Compression = compression

	for i, s := range scenes {
		var shared *unityfs.SerializedFile
		if i == 0 {
			shared = shared0
		} else {
			shared = shared0.Clone()
			delete(shared.Objects, unityfs.EmptyScenePathID)
		}

		s.File.Flags = uint32(unityfs.SceneFileFlags)

		bundle.Append(fmt.Sprintf("BuildPlayer-%s.sharedAssets", s.Name), shared)
		bundle.Append(fmt.Sprintf("BuildPlayer-%s", s.Name), s.File)
	}

	return bundle, nil
}

// WriteFile assembles and serializes scenes directly to path, matching the
// teacher's "write then close" resource discipline (spec.md §5): no
// crash-safety beyond that.
func WriteFile(path string, scenes []SceneInput, compression unityfs.CompressionType) error {
	bundle, err := Build(scenes, compression)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer f.Close()

	if err := bundle.Save(f); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteTo assembles and writes scenes to an arbitrary writer, used by tests
// that don't want to touch the filesystem.
func WriteTo(w io.Writer, scenes []SceneInput, compression unityfs.CompressionType) error {
	bundle, err := Build(scenes, compression)
	if err != nil {
		return err
	}
	if err := bundle.Save(w); err != nil {
		return &WriteError{Path: "<writer>", Err: err}
	}
	return nil
}
