package navigator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
)

// Node is a resolved Transform/RectTransform: its own path id, the decoded
// transform payload, and its owning GameObject's name.
type Node struct {
	PathID  unityfs.PathID
	ClassID unityfs.ClassID
	Fields  unityfs.TransformFields
	Name    string
}

// Resolver walks a single scene's transform tree.
type Resolver struct {
	file        *unityfs.SerializedFile
	diagnostics io.Writer
}

// NewResolver returns a Resolver over file, writing ambiguity diagnostics to
// os.Stderr by default.
func NewResolver(file *unityfs.SerializedFile) *Resolver {
	return &Resolver{file: file, diagnostics: os.Stderr}
}

// SetDiagnostics redirects where ambiguity diagnostics are printed.
func (r *Resolver) SetDiagnostics(w io.Writer) {
	r.diagnostics = w
}

// Roots returns every Transform/RectTransform whose m_Father is null or
// dangling (spec.md §4.2): a father path id that is nonzero but absent from
// the current object map, which happens after repeated pruning before the
// father field is actually rewritten.
func (r *Resolver) Roots() ([]Node, error) {
	var roots []Node
	for _, obj := range r.file.OrderedObjects() {
		if !unityfs.IsTransformClass(obj.ClassID) {
			continue
		}
		node, err := r.nodeFromObject(obj)
		if err != nil {
			return nil, err
		}
		if r.isRootFather(node.Fields.Father) {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

func (r *Resolver) isRootFather(father unityfs.PPtr) bool {
	if father.IsNull() {
		return true
	}
	if father.External() {
		return false
	}
	_, ok := r.file.Get(father.PathID)
	return !ok
}

// nodeFromObject decodes a Transform/RectTransform ObjectRecord and its
// owning GameObject's name into a Node.
func (r *Resolver) nodeFromObject(obj *unityfs.ObjectRecord) (Node, error) {
	fields, err := unityfs.DecodeTransform(obj.Data)
	if err != nil {
		return Node{}, fmt.Errorf("decoding transform %d: %w", obj.PathID, err)
	}

	name, err := r.gameObjectName(fields.GameObject)
	if err != nil {
		return Node{}, err
	}

	return Node{PathID: obj.PathID, ClassID: obj.ClassID, Fields: fields, Name: name}, nil
}

func (r *Resolver) nodeFromPathID(id unityfs.PathID) (Node, bool, error) {
	obj, ok := r.file.Get(id)
	if !ok || !unityfs.IsTransformClass(obj.ClassID) {
		return Node{}, false, nil
	}
	node, err := r.nodeFromObject(obj)
	if err != nil {
		return Node{}, false, err
	}
	return node, true, nil
}

func (r *Resolver) gameObjectName(ptr unityfs.PPtr) (string, error) {
	if ptr.IsNull() || ptr.External() {
		return "", nil
	}
	obj, ok := r.file.Get(ptr.PathID)
	if !ok || obj.ClassID != unityfs.ClassGameObject {
		return "", nil
	}
	fields, err := unityfs.DecodeGameObject(obj.Data)
	if err != nil {
		return "", fmt.Errorf("decoding game object %d: %w", obj.PathID, err)
	}
	return fields.Name, nil
}

// ResolvePath splits path on "/" and descends the transform tree segment by
// segment, per the ambiguity policy in spec.md §4.2. Fails with
// *PathNotFoundError if no candidate matches the failing segment.
func (r *Resolver) ResolvePath(path string, roots []Node) (Node, error) {
	segments := strings.Split(path, "/")
	if len(segments) == 0 {
		return Node{}, &PathNotFoundError{Path: path, Segment: path}
	}

	candidates := filterByName(roots, segments[0])
	if len(candidates) == 0 {
		return Node{}, &PathNotFoundError{Path: path, Segment: segments[0]}
	}
	return r.resolveAmbiguous(path, segments[1:], candidates)
}

// resolveAmbiguous implements the three-step policy: speculative descent
// when more than one candidate matches and path segments remain, a unique
// speculative success winning outright, and otherwise logging a diagnostic
// and choosing the first candidate at the current level, from which any
// remaining segments are then resolved.
func (r *Resolver) resolveAmbiguous(path string, remaining []string, candidates []Node) (Node, error) {
	if len(candidates) == 1 {
		if len(remaining) == 0 {
			return candidates[0], nil
		}
		return r.descend(path, remaining, candidates[0])
	}

	if len(remaining) > 0 {
		var successes []Node
		for _, c := range candidates {
			node, err := r.descend(path, remaining, c)
			if err == nil {
				successes = append(successes, node)
			}
		}
		if len(successes) == 1 {
			return successes[0], nil
		}
	}

	fmt.Fprintf(r.diagnostics, "found %d candidates for %q, choosing first\n", len(candidates), path)
	if len(remaining) > 0 {
		return r.descend(path, remaining, candidates[0])
	}
	return candidates[0], nil
}

// descend resolves remaining against from's children, recursing through
// resolveAmbiguous for the next segment.
func (r *Resolver) descend(path string, remaining []string, from Node) (Node, error) {
	var children []Node
	for _, childPtr := range from.Fields.Children {
		if childPtr.IsNull() || childPtr.External() {
			continue
		}
		child, ok, err := r.nodeFromPathID(childPtr.PathID)
		if err != nil {
			return Node{}, err
		}
		if ok {
			children = append(children, child)
		}
	}

	candidates := filterByName(children, remaining[0])
	if len(candidates) == 0 {
		return Node{}, &PathNotFoundError{Path: path, Segment: remaining[0]}
	}
	return r.resolveAmbiguous(path, remaining[1:], candidates)
}

func filterByName(nodes []Node, name string) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}
