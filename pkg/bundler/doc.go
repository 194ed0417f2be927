// Package bundler assembles a set of rewritten scene files into a single
// Unity bundle: it synthesizes the AssetBundle manifest, clones the shared
// sharedAssets sidecar per scene, and emits the resulting archive.
package bundler
