// Package component defines the building blocks the atlas orchestrator
// manages: component definitions, the containers that hold their lifecycle
// state, and the catalog that keeps one ordered registry per component kind.
//
// A component is registered as a Definition under an alias. The container
// wrapping it moves through registered, prepared, started and stopped, and
// the catalog preserves registration order so the orchestrator can start
// services forward and stop them in reverse.
package component
