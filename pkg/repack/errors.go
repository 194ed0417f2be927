package repack

import (
	"errors"
	"fmt"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/bundler"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/navigator"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/sceneenv"
)

// Kind names one of the fatal error categories in spec.md §7.
type Kind string

const (
	KindGameDirInvalid      Kind = "GameDirInvalid"
	KindBuildSettingsMissing Kind = "BuildSettingsMissing"
	KindUnknownScene        Kind = "UnknownScene"
	KindPathNotFound        Kind = "PathNotFound"
	KindTypetreeDecodeError Kind = "TypetreeDecodeError"
	KindTypetreeEncodeError Kind = "TypetreeEncodeError"
	KindBundleWriteError    Kind = "BundleWriteError"
	KindManifestInvalid     Kind = "ManifestInvalid"
	KindInternal            Kind = "Internal"
)

// RepackError is the typed sentinel error this pipeline surfaces at its
// boundary, following the teacher's PacingError pattern
// (pkg/synthesis/pacing.go: one struct, distinguished by field value rather
// than distinct types).
type RepackError struct {
	Kind  Kind
	Scene string
	Err   error
}

func (e *RepackError) Error() string {
	if e.Scene != "" {
		return fmt.Sprintf("%s (scene %q): %v", e.Kind, e.Scene, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RepackError) Unwrap() error {
	return e.Err
}

// classify wraps err into a *RepackError, inferring Kind from the concrete
// error types each component returns. An already-classified error is
// returned as-is.
func classify(scene string, err error) error {
	if err == nil {
		return nil
	}

	var repackErr *RepackError
	if errors.As(err, &repackErr) {
		return repackErr
	}

	kind := KindInternal
	switch {
	case errors.Is(err, sceneenv.ErrGameDirInvalid):
		kind = KindGameDirInvalid
	case errors.Is(err, sceneenv.ErrBuildSettingsMissing):
		kind = KindBuildSettingsMissing
	case isType[*sceneenv.UnknownSceneError](err):
		kind = KindUnknownScene
	case isType[*navigator.PathNotFoundError](err):
		kind = KindPathNotFound
	case isType[*unityfs.TypetreeDecodeError](err):
		kind = KindTypetreeDecodeError
	case isType[*unityfs.TypetreeEncodeError](err):
		kind = KindTypetreeEncodeError
	case isType[*bundler.WriteError](err):
		kind = KindBundleWriteError
	}

	return &RepackError{Kind: kind, Scene: scene, Err: err}
}

func isType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
