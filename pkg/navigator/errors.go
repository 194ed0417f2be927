package navigator

import "fmt"

// PathNotFoundError reports that no child matched a path segment.
type PathNotFoundError struct {
	Path    string
	Segment string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %q: no match for segment %q", e.Path, e.Segment)
}
