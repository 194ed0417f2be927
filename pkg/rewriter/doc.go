// Package rewriter applies a surviving-object-id set to a scene: it replaces
// the object table, reparents the kept seed transforms to root, applies
// per-root name/activity cosmetics, and compacts the type table.
package rewriter
