package repack

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/bundler"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/invariants"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/navigator"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/reachability"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/rewriter"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/scenegraphviz"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/sceneenv"
)

// Options controls a Run invocation. Zero-value Options is usable except
// Progress, which falls back to os.Stderr when nil.
type Options struct {
	// Disable clears m_IsActive on kept roots (spec.md §6 --disable).
	Disable bool
	// Compression selects how output bundle blocks are stored.
	Compression unityfs.CompressionType
	// AlwaysInclude retains whole classes regardless of reachability
	// (spec.md §4.3's always_include parameter).
	AlwaysInclude map[unityfs.ClassID]bool
	// DumpGraphDir, if non-empty, writes one SVG per scene there.
	DumpGraphDir string
	// Verify runs pkg/invariants after each scene and after bundling.
	Verify bool
	// Progress receives per-scene progress output; defaults to os.Stderr.
	Progress io.Writer
}

// SceneResult reports one scene's before/after object counts (spec.md §4.6:
// "Prints before/after object counts").
type SceneResult struct {
	Name         string
	ObjectsBefore int
	ObjectsAfter  int
}

// Result summarizes a completed Run.
type Result struct {
	Scenes    []SceneResult
	OutputSize int64
}

// bundlePrefix matches the original CLI's dict(zip([f"{prefix}_{name}"...]))
// naming (original_source/src/unity_scene_repacker/cli.py: prefix = "bundle"):
// every scene's bundle file name and manifest container key get this prefix.
const bundlePrefix = "bundle_"

// Run composes C2 through C5 for every scene named in manifest, in manifest
// order, then writes the assembled bundle to outputPath (spec.md §4.6).
func Run(ctx context.Context, env *sceneenv.Env, manifest *Manifest, outputPath string, opts Options) (*Result, error) {
	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	var sceneInputs []bundler.SceneInput
	var sceneResults []SceneResult
	var sceneNames []string

	for _, entry := range manifest.Scenes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := env.LoadScene(ctx, entry.Name)
		if err != nil {
			return nil, classify(entry.Name, err)
		}
		before := len(file.Objects)

		resolver := navigator.NewResolver(file)
		roots, err := resolver.Roots()
		if err != nil {
			return nil, classify(entry.Name, err)
		}

		seeds := make([]unityfs.PathID, 0, len(entry.Paths))
		for _, path := range entry.Paths {
			node, err := resolver.ResolvePath(path, roots)
			if err != nil {
				return nil, classify(entry.Name, err)
			}
			seeds = append(seeds, node.PathID)
		}

		surviving, err := reachability.Walk(file, seeds, opts.AlwaysInclude)
		if err != nil {
			return nil, classify(entry.Name, err)
		}

		if err := rewriter.Rewrite(file, surviving, seeds, rewriter.Options{Disable: opts.Disable}); err != nil {
			return nil, classify(entry.Name, err)
		}

		if opts.Verify {
			report := invariants.CheckScene(file, seeds)
			if !report.Passed {
				return nil, classify(entry.Name, fmt.Errorf("invariant check failed:\n%s", report.Summary()))
			}
		}

		if opts.DumpGraphDir != "" {
			dumpRoots, err := navigator.NewResolver(file).Roots()
			if err != nil {
				return nil, classify(entry.Name, err)
			}
			svgPath := filepath.Join(opts.DumpGraphDir, entry.Name+".svg")
			if err := scenegraphviz.SaveFile(svgPath, file, dumpRoots, scenegraphviz.DefaultOptions()); err != nil {
				return nil, classify(entry.Name, fmt.Errorf("dumping graph: %w", err))
			}
		}

		after := len(file.Objects)
		fmt.Fprintf(progress, "\r%s: %d -> %d objects", entry.Name, before, after)

		bundleName := bundlePrefix + entry.Name
		sceneResults = append(sceneResults, SceneResult{Name: entry.Name, ObjectsBefore: before, ObjectsAfter: after})
		sceneNames = append(sceneNames, bundleName)
		sceneInputs = append(sceneInputs, bundler.SceneInput{Name: bundleName, File: file})
	}
	fmt.Fprintln(progress)

	bundle, err := bundler.Build(sceneInputs, opts.Compression)
	if err != nil {
		return nil, classify("", err)
	}

	if opts.Verify {
		report := invariants.CheckBundle(bundle, sceneNames)
		if !report.Passed {
			return nil, classify("", fmt.Errorf("bundle invariant check failed:\n%s", report.Summary()))
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, classify("", &bundler.WriteError{Path: outputPath, Err: err})
	}
	defer f.Close()

	if err := bundle.Save(f); err != nil {
		return nil, classify("", &bundler.WriteError{Path: outputPath, Err: err})
	}

	info, err := f.Stat()
	if err != nil {
		return nil, classify("", &bundler.WriteError{Path: outputPath, Err: err})
	}

	fmt.Fprintf(progress, "wrote %s (%s)\n", outputPath, humanize.Bytes(uint64(info.Size())))

	return &Result{Scenes: sceneResults, OutputSize: info.Size()}, nil
}
