package sceneenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

// Env is an opened game installation: the scene-name-to-level-index mapping
// derived from globalgamemanagers, plus a lazy cache of loaded scene files
// (spec.md §4.1).
type Env struct {
	gameDir     string
	sceneIndex  map[string]int
	sceneOrder  []string
	loaded      map[string]*unityfs.SerializedFile
}

// SceneNames returns every scene name known to this environment, in the
// order they appear in the build settings scene list.
func (e *Env) SceneNames() []string {
	return append([]string(nil), e.sceneOrder...)
}

// OpenEnv reads globalgamemanagers in gameDir and builds the scene index.
// Fails with ErrGameDirInvalid if the file is missing or unreadable, or
// ErrBuildSettingsMissing if it contains no class-141 BuildSettings object.
func OpenEnv(gameDir string) (*Env, error) {
	path := filepath.Join(gameDir, "globalgamemanagers")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGameDirInvalid, err)
	}

	file, err := unityfs.ReadSerializedFile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGameDirInvalid, err)
	}

	var settings *unityfs.BuildSettingsFields
	for _, obj := range file.OrderedObjects() {
		if obj.ClassID != unityfs.ClassBuildSettings {
			continue
		}
		fields, err := unityfs.DecodeBuildSettings(obj.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding BuildSettings: %w", err)
		}
		settings = &fields
		break
	}
	if settings == nil {
		return nil, ErrBuildSettingsMissing
	}

	env := &Env{
		gameDir:    gameDir,
		sceneIndex: make(map[string]int, len(settings.Scenes)),
		sceneOrder: make([]string, 0, len(settings.Scenes)),
		loaded:     make(map[string]*unityfs.SerializedFile),
	}
	for i, scenePath := range settings.Scenes {
		name := sceneNameFromPath(scenePath)
		if _, exists := env.sceneIndex[name]; exists {
			continue
		}
		env.sceneIndex[name] = i
		env.sceneOrder = append(env.sceneOrder, name)
	}
	return env, nil
}

// sceneNameFromPath extracts a scene's basename without extension from its
// build-settings asset path, e.g. "Assets/Scenes/Main.unity" -> "Main".
func sceneNameFromPath(assetPath string) string {
	base := filepath.Base(assetPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadScene returns the parsed level file for name, loading and caching it
// on first request. Fails with *UnknownSceneError if name is not in the
// build settings scene list.
func (e *Env) LoadScene(ctx context.Context, name string) (*unityfs.SerializedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cached, ok := e.loaded[name]; ok {
		return cached, nil
	}

	index, ok := e.sceneIndex[name]
	if !ok {
		return nil, &UnknownSceneError{Name: name}
	}

	path := filepath.Join(e.gameDir, fmt.Sprintf("level%d", index))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %q: %w", name, err)
	}

	file, err := unityfs.ReadSerializedFile(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %q: %w", name, err)
	}

	e.loaded[name] = file
	return file, nil
}
