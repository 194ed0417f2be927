package repack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ManifestScene is one entry of the input manifest: a scene name and the
// object paths to keep within it.
type ManifestScene struct {
	Name  string
	Paths []string
}

// Manifest is the parsed --objects input: scene name -> kept object paths,
// in the order scenes appeared in the JSON file. spec.md §8's "Manifest
// shape" and "Multi-scene" scenarios are order-sensitive, so this is decoded
// with json.Decoder's token stream rather than into a map (whose iteration
// order Go deliberately does not guarantee) to preserve that order.
type Manifest struct {
	Scenes []ManifestScene
}

// LoadManifest reads and parses the scene_name -> []path JSON object at
// path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}
	m, err := parseManifest(data)
	if err != nil {
		return nil, &RepackError{Kind: KindManifestInvalid, Err: fmt.Errorf("manifest %q: %w", path, err)}
	}
	return m, nil
}

func parseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object at the top level")
	}

	var m Manifest
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var paths []string
		if err := dec.Decode(&paths); err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		m.Scenes = append(m.Scenes, ManifestScene{Name: name, Paths: paths})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return &m, nil
}
