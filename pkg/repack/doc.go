// Package repack composes the scene loader, navigator, reachability walker,
// rewriter, and bundler into the single end-to-end pipeline described by
// spec.md §4.6: load every referenced scene, prune and rewrite each one,
// then assemble the output bundle.
package repack
