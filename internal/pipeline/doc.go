// Package pipeline walks reference files in order, resolves each one's
// layer-pair columns against the bench table, and hands per-file Reports to
// a visit callback.
//
// The only contract to implement is Comparer (Compare).
// This keeps the pipeline swappable and testable.
package pipeline
