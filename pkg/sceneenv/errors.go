package sceneenv

import "fmt"

// Error represents a failure opening or navigating a game environment.
// Following the teacher's PacingError pattern (pkg/synthesis/pacing.go in
// the teacher repo): a single struct type, distinguished sentinel values.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Sentinel errors for the fatal cases named in spec.md §7.
var (
	// ErrGameDirInvalid means globalgamemanagers is missing or unreadable.
	ErrGameDirInvalid = &Error{Message: "game directory invalid: globalgamemanagers missing or unreadable"}

	// ErrBuildSettingsMissing means no class-141 BuildSettings object was
	// found in globalgamemanagers.
	ErrBuildSettingsMissing = &Error{Message: "no BuildSettings object in globalgamemanagers"}
)

// UnknownSceneError reports a scene name absent from the build-settings
// scene list.
type UnknownSceneError struct {
	Name string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("unknown scene %q", e.Name)
}
