// Package reachability computes the transitive closure of a set of seed
// objects over a scene's class-specific visible-edge graph, optionally
// retaining whole classes of object regardless of reachability.
package reachability
