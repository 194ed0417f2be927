package repack

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigParsesFields(t *testing.T) {
	path := writeConfig(t, "gameDir: ./Game\nobjects: objects.json\noutput: out.unity3d\ndisable: false\ncompression: lz4\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GameDir != "./Game" || cfg.Objects != "objects.json" || cfg.Output != "out.unity3d" {
		t.Errorf("unexpected fields: %+v", cfg)
	}
	if cfg.Disable == nil || *cfg.Disable != false {
		t.Errorf("Disable = %v, want explicit false", cfg.Disable)
	}
	if cfg.Compression != "lz4" {
		t.Errorf("Compression = %q, want %q", cfg.Compression, "lz4")
	}
}

func TestLoadConfigDisableOmittedStaysNil(t *testing.T) {
	path := writeConfig(t, "gameDir: ./Game\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Disable != nil {
		t.Errorf("Disable = %v, want nil when omitted from YAML", *cfg.Disable)
	}
}

func TestLoadConfigRejectsUnknownCompression(t *testing.T) {
	path := writeConfig(t, "compression: gzip\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("expected an error for an unsupported compression name")
	}
}

func TestValidateAcceptsEmptyCompression(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v, want nil for an empty Compression field", err)
	}
}
