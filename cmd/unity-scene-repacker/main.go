package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/repack"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/sceneenv"
)

const version = "0.1.0"

var (
	gameDir      = flag.String("game-dir", "", "Directory containing globalgamemanagers and level{i} files (required)")
	objectsPath  = flag.String("objects", "", "JSON manifest: scene name -> array of object paths to keep (required)")
	outputShort  = flag.String("o", "out.unity3d", "Output bundle path")
	outputLong   = flag.String("output", "", "Output bundle path (alias for -o)")
	disable      = flag.Bool("disable", true, "Clear m_IsActive on kept roots")
	noDisable    = flag.Bool("no-disable", false, "Keep m_IsActive as-is on kept roots")
	configPath   = flag.String("config", "", "YAML file supplying defaults for any flag above")
	dumpGraphDir = flag.String("dump-graph", "", "Directory to write one SVG per scene showing the kept hierarchy")
	verify       = flag.Bool("verify", false, "Check spec invariants after rewriting each scene and after bundling")
	compression  = flag.String("compression", "lz4", "Bundle block compression: none or lz4")
	versionFlag  = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("unity-scene-repacker version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "unity-scene-repacker --game-dir <dir> --objects <manifest.json> [-o out.unity3d]")
	flag.PrintDefaults()
}

func run() error {
	ctx := context.Background()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		cfg, err := repack.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyConfigDefaults(cfg, explicit)
	}

	output := *outputShort
	if *outputLong != "" {
		output = *outputLong
	}

	if *gameDir == "" {
		return fmt.Errorf("-game-dir is required")
	}
	if *objectsPath == "" {
		return fmt.Errorf("-objects is required")
	}

	disableFlag := *disable
	if explicit["no-disable"] {
		disableFlag = !*noDisable
	}

	comp, err := parseCompression(*compression)
	if err != nil {
		return err
	}

	manifest, err := repack.LoadManifest(*objectsPath)
	if err != nil {
		return err
	}

	env, err := sceneenv.OpenEnv(*gameDir)
	if err != nil {
		return err
	}

	if *dumpGraphDir != "" {
		if err := os.MkdirAll(*dumpGraphDir, 0o755); err != nil {
			return fmt.Errorf("creating dump-graph directory: %w", err)
		}
	}

	opts := repack.Options{
		Disable:       disableFlag,
		Compression:   comp,
		AlwaysInclude: map[unityfs.ClassID]bool{unityfs.ClassRenderSettings: true},
		DumpGraphDir:  *dumpGraphDir,
		Verify:        *verify,
		Progress:      os.Stderr,
	}

	_, err = repack.Run(ctx, env, manifest, output, opts)
	return err
}

// applyConfigDefaults fills in any flag the user didn't pass explicitly with
// the config file's value, mirroring the teacher's "explicit flags still
// win" behavior for --config.
func applyConfigDefaults(cfg *repack.Config, explicit map[string]bool) {
	if !explicit["game-dir"] && cfg.GameDir != "" {
		*gameDir = cfg.GameDir
	}
	if !explicit["objects"] && cfg.Objects != "" {
		*objectsPath = cfg.Objects
	}
	if !explicit["o"] && !explicit["output"] && cfg.Output != "" {
		*outputShort = cfg.Output
	}
	if !explicit["disable"] && !explicit["no-disable"] && cfg.Disable != nil {
		*disable = *cfg.Disable
	}
	if !explicit["compression"] && cfg.Compression != "" {
		*compression = cfg.Compression
	}
}

func parseCompression(s string) (unityfs.CompressionType, error) {
	switch s {
	case "none":
		return unityfs.CompressionNone, nil
	case "lz4":
		return unityfs.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("invalid -compression %q: must be \"none\" or \"lz4\"", s)
	}
}
