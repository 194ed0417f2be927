// Package sceneenv resolves scene names to level indices via a game
// installation's global build-settings object, and loads the corresponding
// serialized scene files lazily.
package sceneenv
