package sceneenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

func writeGameDir(t *testing.T, scenes []string) string {
	t.Helper()
	dir := t.TempDir()

	ggm := unityfs.NewSerializedFile()
	data, err := unityfs.EncodeBuildSettings(unityfs.BuildSettingsFields{Scenes: scenes})
	if err != nil {
		t.Fatalf("EncodeBuildSettings: %v", err)
	}
	ggm.Objects[1] = &unityfs.ObjectRecord{PathID: 1, ClassID: unityfs.ClassBuildSettings, Data: data}

	ggmBytes, err := ggm.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "globalgamemanagers"), ggmBytes, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for i := range scenes {
		level := unityfs.NewSerializedFile()
		levelBytes, err := level.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}
		path := filepath.Join(dir, "level"+string(rune('0'+i)))
		if err := os.WriteFile(path, levelBytes, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	return dir
}

func TestOpenEnvListsScenesInBuildSettingsOrder(t *testing.T) {
	dir := writeGameDir(t, []string{"Assets/Scenes/Main.unity", "Assets/Scenes/Level1.unity"})

	env, err := OpenEnv(dir)
	if err != nil {
		t.Fatalf("OpenEnv: %v", err)
	}
	want := []string{"Main", "Level1"}
	got := env.SceneNames()
	if len(got) != len(want) {
		t.Fatalf("SceneNames() = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("SceneNames()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestOpenEnvMissingGameDirIsErrGameDirInvalid(t *testing.T) {
	_, err := OpenEnv(t.TempDir())
	if !errors.Is(err, ErrGameDirInvalid) {
		t.Fatalf("error = %v, want ErrGameDirInvalid", err)
	}
}

func TestOpenEnvMissingBuildSettingsIsErrBuildSettingsMissing(t *testing.T) {
	dir := t.TempDir()
	empty := unityfs.NewSerializedFile()
	data, err := empty.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "globalgamemanagers"), data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = OpenEnv(dir)
	if !errors.Is(err, ErrBuildSettingsMissing) {
		t.Fatalf("error = %v, want ErrBuildSettingsMissing", err)
	}
}

func TestLoadSceneCachesAndRejectsUnknownNames(t *testing.T) {
	dir := writeGameDir(t, []string{"Assets/Scenes/Main.unity"})
	env, err := OpenEnv(dir)
	if err != nil {
		t.Fatalf("OpenEnv: %v", err)
	}

	first, err := env.LoadScene(context.Background(), "Main")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	second, err := env.LoadScene(context.Background(), "Main")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if first != second {
		t.Errorf("LoadScene should return the cached pointer on the second call")
	}

	_, err = env.LoadScene(context.Background(), "Nope")
	var unknown *UnknownSceneError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownSceneError", err)
	}
}
