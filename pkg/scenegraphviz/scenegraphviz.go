package scenegraphviz

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/jakobhellermann/unity-scene-repacker/internal/unityfs"
	"github.com/jakobhellermann/unity-scene-repacker/pkg/navigator"
)

// Options configures the rendered SVG, following the teacher's
// Options/DefaultOptions shape (pkg/export/svg.go's SVGOptions/
// DefaultSVGOptions in the teacher repo).
type Options struct {
	Width      int
	Height     int
	NodeRadius int
	RowHeight  int
	ColWidth   int
	Margin     int
	Title      string
}

// DefaultOptions returns sensible rendering defaults.
func DefaultOptions() Options {
	return Options{
		Width:      1600,
		Height:     1200,
		NodeRadius: 8,
		RowHeight:  24,
		ColWidth:   160,
		Margin:     40,
		Title:      "kept scene hierarchy",
	}
}

type treeNode struct {
	name     string
	children []*treeNode
	x, y     int
}

// Render draws every surviving transform reachable from roots (depth-first,
// indented by nesting depth) as an SVG tree and returns the document bytes.
func Render(file *unityfs.SerializedFile, roots []navigator.Node, opts Options) ([]byte, error) {
	if opts.Width <= 0 {
		opts = DefaultOptions()
	}

	var forest []*treeNode
	y := opts.Margin
	for _, root := range roots {
		node, nextY, err := buildTree(file, root.PathID, 0, y, opts)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
		y = nextY
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin/2, opts.Title, "font-size:16px;font-family:sans-serif")
	}

	for _, root := range forest {
		drawTree(canvas, root, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// buildTree walks the transform hierarchy rooted at id depth-first,
// assigning each node a grid position (depth determines x, visit order
// determines y), and returns the next free y coordinate.
func buildTree(file *unityfs.SerializedFile, id unityfs.PathID, depth, y int, opts Options) (*treeNode, int, error) {
	obj, ok := file.Get(id)
	if !ok {
		return nil, y, fmt.Errorf("scenegraphviz: transform %d not found", id)
	}
	fields, err := unityfs.DecodeTransform(obj.Data)
	if err != nil {
		return nil, y, fmt.Errorf("scenegraphviz: %w", err)
	}

	name := transformLabel(file, fields)
	node := &treeNode{
		name: name,
		x:    opts.Margin + depth*opts.ColWidth,
		y:    y,
	}
	nextY := y + opts.RowHeight

	for _, childPtr := range fields.Children {
		if childPtr.IsNull() || childPtr.External() {
			continue
		}
		childObj, ok := file.Get(childPtr.PathID)
		if !ok || !unityfs.IsTransformClass(childObj.ClassID) {
			continue
		}
		child, y2, err := buildTree(file, childPtr.PathID, depth+1, nextY, opts)
		if err != nil {
			return nil, y, err
		}
		node.children = append(node.children, child)
		nextY = y2
	}

	return node, nextY, nil
}

func transformLabel(file *unityfs.SerializedFile, fields unityfs.TransformFields) string {
	if fields.GameObject.IsNull() || fields.GameObject.External() {
		return "<no game object>"
	}
	obj, ok := file.Get(fields.GameObject.PathID)
	if !ok {
		return "<missing game object>"
	}
	goFields, err := unityfs.DecodeGameObject(obj.Data)
	if err != nil {
		return "<undecodable>"
	}
	return goFields.Name
}

func drawTree(canvas *svg.SVG, node *treeNode, opts Options) {
	for _, child := range node.children {
		canvas.Line(node.x, node.y, child.x, child.y, "stroke:#888888;stroke-width:1")
	}
	canvas.Circle(node.x, node.y, opts.NodeRadius, "fill:#3a7bd5")
	canvas.Text(node.x+opts.NodeRadius+4, node.y+4, node.name, "font-size:12px;font-family:sans-serif")

	for _, child := range node.children {
		drawTree(canvas, child, opts)
	}
}

// SaveFile renders and writes the SVG to path.
func SaveFile(path string, file *unityfs.SerializedFile, roots []navigator.Node, opts Options) error {
	data, err := Render(file, roots, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
