// Package scenegraphviz renders the kept transform hierarchy of a rewritten
// scene as an SVG, for inspecting what the pruning pipeline kept.
package scenegraphviz
