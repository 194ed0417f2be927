package unityfs

import "fmt"

// TypetreeDecodeError is returned when a typed facade (GameObject, Transform,
// SpriteAtlas, BuildSettings, AssetBundle) cannot decode an object's payload
// into its expected shape. spec.md §7 treats this as fatal for the scene
// being processed.
type TypetreeDecodeError struct {
	Class string
	Msg   string
}

func (e *TypetreeDecodeError) Error() string {
	return fmt.Sprintf("typetree decode error in %s: %s", e.Class, e.Msg)
}

// TypetreeEncodeError is the write-side counterpart of TypetreeDecodeError.
type TypetreeEncodeError struct {
	Class string
	Msg   string
}

func (e *TypetreeEncodeError) Error() string {
	return fmt.Sprintf("typetree encode error in %s: %s", e.Class, e.Msg)
}

func encodeErrorf(class string, format string, args ...any) error {
	return &TypetreeEncodeError{Class: class, Msg: fmt.Sprintf(format, args...)}
}
