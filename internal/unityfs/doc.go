// Package unityfs is the bundle/serialized-file codec this repacker builds
// on. spec.md treats this layer as an external collaborator ("a low-level
// Unity bundle/serialized-file codec ... is assumed to exist as a
// dependency"); no such Go package exists in the wider ecosystem, so it is
// implemented here, scoped to exactly the subset of the UnityFS format this
// tool touches: a bundle envelope wrapping named serialized files, each
// holding a type table and a PathID-keyed object table, plus typed
// decode/encode facades for the handful of object shapes the pipeline reads
// or mutates (GameObject, Transform/RectTransform, SpriteAtlas,
// BuildSettings, AssetBundle). Every other class is kept as an opaque byte
// blob and copied verbatim.
package unityfs
