// Package planner holds the pure planning logic for smart concatenation:
// aspect classification, canonical resolution selection, key=value parameter
// parsing, and filter-graph construction. Nothing in this package spawns a
// process; plans are rendered to strings for the executor.
package planner
