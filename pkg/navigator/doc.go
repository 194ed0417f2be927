// Package navigator enumerates a scene's root transforms and resolves
// slash-delimited object paths against the transform tree, with the
// ambiguity-handling policy required for scenes containing sibling
// GameObjects that share a name.
package navigator
